package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable_View(t *testing.T) {
	table := NewSimpleTable("Results", []string{"ID", "Store", "Payment"})
	table.AddRow("ORD-0003", "Walmart", "$200.00")
	table.AddRow("ORD-0001", "Walmart", "$120.00")

	out := table.View(DefaultStyles())

	for _, want := range []string{"Results", "ID", "Store", "Payment", "ORD-0003", "$120.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q", want)
		}
	}

	idIdx := strings.Index(out, "ORD-0003")
	secondIdx := strings.Index(out, "ORD-0001")
	if idIdx == -1 || secondIdx == -1 || idIdx > secondIdx {
		t.Error("Rows should render in insertion order")
	}
}

func TestSimpleTable_EmptyRendersNothing(t *testing.T) {
	table := NewSimpleTable("Empty", []string{"ID"})
	if got := table.View(DefaultStyles()); got != "" {
		t.Errorf("Expected empty output for a rowless table, got %q", got)
	}
}
