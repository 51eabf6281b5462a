package search

import (
	"testing"

	"go.uber.org/goleak"
)

// Debounce timers must not leak goroutines past teardown.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
