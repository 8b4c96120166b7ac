package catalog

import (
	"fmt"

	"github.com/louisbranch/ordnance/internal/services/armory/data"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

// defaultStore is built during package initialization, before any code can
// query it. A defect in the fixed tables panics here instead of surfacing
// from a query.
var defaultStore = mustBuildDefault()

// Default returns the process-wide catalog built from the embedded tables.
func Default() *Store {
	return defaultStore
}

// Build runs the full lifecycle for a record table: register bases, derive
// families, build the index.
func Build(records []munition.Record, families []data.Family) (*Store, error) {
	store := NewStore()
	if err := store.RegisterBaseRecords(records); err != nil {
		return nil, fmt.Errorf("register base records: %w", err)
	}
	if err := store.DeriveFamilies(families); err != nil {
		return nil, fmt.Errorf("derive families: %w", err)
	}
	if err := store.BuildIndex(); err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	return store, nil
}

func mustBuildDefault() *Store {
	records, err := data.BaseRecords()
	if err != nil {
		panic(err)
	}
	store, err := Build(records, data.Families())
	if err != nil {
		panic(err)
	}
	return store
}
