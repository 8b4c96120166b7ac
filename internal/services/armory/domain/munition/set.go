package munition

import "sort"

// Set is a set of enum values.
type Set[T ~string] map[T]struct{}

// NewSet returns a set holding values.
func NewSet[T ~string](values ...T) Set[T] {
	out := make(Set[T], len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Equal reports whether both sets hold the same values.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Intersects reports whether the sets share at least one value.
func (s Set[T]) Intersects(other Set[T]) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for v := range small {
		if large.Has(v) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Sorted returns the values in lexical order.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TagSet is the set of semantic markers on a record.
type TagSet = Set[Tag]

// FlagSet is the set of capability flags on a record.
type FlagSet = Set[Flag]
