// Package catalog owns the ammunition registry: base and derived record
// registration, the one-time category index build, and read-only queries.
//
// A Store has two phases. During the build phase records are appended in a
// single goroutine. BuildIndex ends that phase; afterwards the store never
// changes and every query is safe for concurrent use without locking.
package catalog

import (
	"fmt"

	apperrors "github.com/louisbranch/ordnance/internal/platform/errors"
	"github.com/louisbranch/ordnance/internal/services/armory/data"
	"github.com/louisbranch/ordnance/internal/services/armory/domain/munition"
)

// Store is an append-only ammunition registry.
type Store struct {
	records []munition.Record
	byKey   map[string]munition.Ref

	index      map[munition.Category][]munition.Ref
	categories []munition.Category
	built      bool
}

// NewStore returns an empty store in its build phase.
func NewStore() *Store {
	return &Store{byKey: map[string]munition.Ref{}}
}

// RegisterBaseRecords inserts fixed base records in order.
func (s *Store) RegisterBaseRecords(records []munition.Record) error {
	for _, rec := range records {
		if rec.IsDerived() {
			return invalidRecord(rec, "base records cannot reference another record")
		}
		if _, err := s.register(rec); err != nil {
			return err
		}
	}
	return nil
}

// DeriveAndRegister derives one record for every (base, descriptor) pair and
// appends it. Order is base-major: all descriptors of the first base, then
// the next base. Every base must already be registered in this store.
func (s *Store) DeriveAndRegister(bases []munition.Record, descriptors []munition.Descriptor) error {
	if s.built {
		return ErrRegistryFrozen
	}
	for _, base := range bases {
		registered, ok := s.Resolve(base.Ref)
		if !ok || registered.Key != base.Key {
			return apperrors.WithMetadata(
				apperrors.CodeUnregisteredBase,
				fmt.Sprintf("derive from %q: base is not registered", base.Key),
				map[string]string{"Key": base.Key},
			)
		}
		for _, d := range descriptors {
			derived, err := munition.Mutate(registered, d)
			if err != nil {
				return fmt.Errorf("derive %s from %s: %w", d.Tag, base.Key, err)
			}
			if _, err := s.register(derived); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeriveFamilies derives every family against its base family. Base
// families are the registered records the family matches, in registration
// order, so families must be derived after RegisterBaseRecords.
func (s *Store) DeriveFamilies(families []data.Family) error {
	for _, family := range families {
		var bases []munition.Record
		for _, rec := range s.records {
			if family.Matches(rec) {
				bases = append(bases, rec)
			}
		}
		if err := s.DeriveAndRegister(bases, family.Descriptors); err != nil {
			return fmt.Errorf("family %s: %w", family.Name, err)
		}
	}
	return nil
}

func (s *Store) register(rec munition.Record) (munition.Ref, error) {
	if s.built {
		return 0, ErrRegistryFrozen
	}
	if rec.Key == "" {
		return 0, invalidRecord(rec, "key is required")
	}
	if !rec.Category.Known() {
		return 0, invalidRecord(rec, fmt.Sprintf("unknown category %q", rec.Category))
	}
	if rec.Shots <= 0 {
		return 0, invalidRecord(rec, "shots must be positive")
	}
	if _, exists := s.byKey[rec.Key]; exists {
		return 0, apperrors.WithMetadata(
			apperrors.CodeDuplicateKey,
			fmt.Sprintf("key %q already registered", rec.Key),
			map[string]string{"Key": rec.Key},
		)
	}

	rec.Tags = rec.Tags.Clone()
	if len(rec.Tags) == 0 {
		rec.Tags = munition.StandardTags()
	}
	rec.Flags = rec.Flags.Clone()
	rec.Ref = munition.Ref(len(s.records) + 1)
	s.records = append(s.records, rec)
	s.byKey[rec.Key] = rec.Ref
	return rec.Ref, nil
}

func invalidRecord(rec munition.Record, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidRecord,
		fmt.Sprintf("record %q: %s", rec.Key, reason),
		map[string]string{"Key": rec.Key, "Reason": reason},
	)
}

// ByKey returns the record registered under key.
func (s *Store) ByKey(key string) (munition.Record, bool) {
	ref, ok := s.byKey[key]
	if !ok {
		return munition.Record{}, false
	}
	return s.Resolve(ref)
}

// Resolve returns the record a handle refers to.
func (s *Store) Resolve(ref munition.Ref) (munition.Record, bool) {
	if !ref.Valid() || int(ref) > len(s.records) {
		return munition.Record{}, false
	}
	return detach(s.records[ref-1]), true
}

// BaseOf returns the base record rec was derived from.
func (s *Store) BaseOf(rec munition.Record) (munition.Record, bool) {
	return s.Resolve(rec.Base)
}

// All returns every record in registration order.
func (s *Store) All() []munition.Record {
	out := make([]munition.Record, len(s.records))
	for i, rec := range s.records {
		out[i] = detach(rec)
	}
	return out
}

// Len returns the number of registered records.
func (s *Store) Len() int {
	return len(s.records)
}

// detach copies the record's sets so callers cannot alter registry state.
func detach(rec munition.Record) munition.Record {
	rec.Tags = rec.Tags.Clone()
	rec.Flags = rec.Flags.Clone()
	return rec
}
