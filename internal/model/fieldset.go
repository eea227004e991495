package model

// FieldSet is a set of fields that remembers insertion order, so output
// derived from it is deterministic.
type FieldSet struct {
	order   []Field
	members map[Field]struct{}
}

// NewFieldSet returns a set holding fields, duplicates dropped.
func NewFieldSet(fields ...Field) *FieldSet {
	s := &FieldSet{members: make(map[Field]struct{}, len(fields))}
	for _, f := range fields {
		s.Add(f)
	}

	return s
}

// Add inserts f and reports whether it was not already present.
func (s *FieldSet) Add(f Field) bool {
	if s.members == nil {
		s.members = make(map[Field]struct{})
	}

	if _, ok := s.members[f]; ok {
		return false
	}

	s.members[f] = struct{}{}
	s.order = append(s.order, f)

	return true
}

// Contains reports whether f is in the set.
func (s *FieldSet) Contains(f Field) bool {
	if s == nil {
		return false
	}

	_, ok := s.members[f]

	return ok
}

// Len returns the number of fields in the set.
func (s *FieldSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Fields returns the members in insertion order.
func (s *FieldSet) Fields() []Field {
	if s == nil {
		return nil
	}

	out := make([]Field, len(s.order))
	copy(out, s.order)

	return out
}

// Intersect returns the fields of s that are also in other, in s's order.
func (s *FieldSet) Intersect(other *FieldSet) *FieldSet {
	out := NewFieldSet()

	for _, f := range s.Fields() {
		if other.Contains(f) {
			out.Add(f)
		}
	}

	return out
}

// Union returns s followed by the fields of other not already in s.
func (s *FieldSet) Union(other *FieldSet) *FieldSet {
	out := NewFieldSet(s.Fields()...)
	for _, f := range other.Fields() {
		out.Add(f)
	}

	return out
}
