package order

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type storeCatalog struct {
	Stores []string `yaml:"stores"`
}

// Catalog returns the fixed set of store names mock orders draw from.
func Catalog() ([]string, error) {
	var c storeCatalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse store catalog: %w", err)
	}
	if len(c.Stores) == 0 {
		return nil, fmt.Errorf("store catalog is empty")
	}
	return c.Stores, nil
}

// Generate produces n mock orders. The same seed yields the same orders, so
// a session is reproducible end to end. Randomness lives only here; the
// search pipeline itself is deterministic.
func Generate(n int, seed int64) ([]Order, error) {
	if n < 0 {
		return nil, fmt.Errorf("order count %d below 0", n)
	}
	stores, err := Catalog()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	statuses := AllStatuses()
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	orders := make([]Order, 0, n)
	for i := 0; i < n; i++ {
		// Currency keeps 2 decimal places.
		amount := math.Round(rng.Float64()*50000) / 100

		orders = append(orders, Order{
			ID:            fmt.Sprintf("ORD-%04d", i+1),
			StoreName:     stores[rng.Intn(len(stores))],
			Status:        statuses[rng.Intn(len(statuses))],
			PaymentAmount: amount,
			ClientCount:   1 + rng.Intn(4),
			Items:         1 + rng.Intn(12),
			Timestamp:     base.Add(time.Duration(rng.Intn(30*24)) * time.Hour),
		})
	}
	return orders, nil
}
