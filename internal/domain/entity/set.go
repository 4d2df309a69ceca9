package entity

// Set is an unordered collection of distinct values.
// Items returns values in no particular order; callers must not depend on it.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet returns a set holding the given values.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v. Adding a value already present is a no-op.
func (s *Set[T]) Add(v T) {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}
	s.items[v] = struct{}{}
}

// Contains reports whether v is in the set. A nil set contains nothing.
func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[v]
	return ok
}

// Len returns the number of distinct values. A nil set has length zero.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the values as a new slice.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	return out
}
