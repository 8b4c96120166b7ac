package catalog

import "github.com/louisbranch/ordnance/internal/services/armory/domain/munition"

// BuildIndex groups the registry by category and ends the build phase.
// It runs exactly once; afterwards registration fails with ErrRegistryFrozen.
func (s *Store) BuildIndex() error {
	if s.built {
		return ErrRegistryFrozen
	}
	s.index = make(map[munition.Category][]munition.Ref)
	for _, rec := range s.records {
		if _, seen := s.index[rec.Category]; !seen {
			s.categories = append(s.categories, rec.Category)
		}
		s.index[rec.Category] = append(s.index[rec.Category], rec.Ref)
	}
	s.built = true
	return nil
}

// Built reports whether BuildIndex has run.
func (s *Store) Built() bool {
	return s.built
}

// ByCategory returns the records of category c in registration order. A
// category without records yields an empty list.
func (s *Store) ByCategory(c munition.Category) ([]munition.Record, error) {
	if !s.built {
		return nil, ErrIndexNotBuilt
	}
	refs := s.index[c]
	out := make([]munition.Record, 0, len(refs))
	for _, ref := range refs {
		rec, _ := s.Resolve(ref)
		out = append(out, rec)
	}
	return out, nil
}

// Categories returns the indexed categories in order of first registration.
func (s *Store) Categories() ([]munition.Category, error) {
	if !s.built {
		return nil, ErrIndexNotBuilt
	}
	out := make([]munition.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
