package status

import "strings"

// SetKind tags the variant held by an OutcomeSet.
type SetKind int

const (
	// KindEnumerated is a finite, ordered set of outcome names.
	KindEnumerated SetKind = iota
	// KindUniversal contains every outcome.
	KindUniversal
	// KindEmpty contains nothing.
	KindEmpty
)

func (k SetKind) String() string {
	switch k {
	case KindEnumerated:
		return "enumerated"
	case KindUniversal:
		return "universal"
	case KindEmpty:
		return "empty"
	}

	return "unknown"
}

// OutcomeSet is the value domain of outcome expressions.
// The zero value is an empty enumerated set.
type OutcomeSet struct {
	kind  SetKind
	elems []string
}

// Enumerated returns a set holding the distinct elems in first-seen order.
func Enumerated(elems ...string) OutcomeSet {
	set := OutcomeSet{kind: KindEnumerated, elems: make([]string, 0, len(elems))}
	for _, e := range elems {
		if !set.Contains(e) {
			set.elems = append(set.elems, e)
		}
	}

	return set
}

// Universal returns the set of all outcomes.
func Universal() OutcomeSet {
	return OutcomeSet{kind: KindUniversal}
}

// Empty returns the empty set.
func Empty() OutcomeSet {
	return OutcomeSet{kind: KindEmpty}
}

// Kind reports which variant s is.
func (s OutcomeSet) Kind() SetKind {
	return s.kind
}

// Elements returns a copy of the members of an enumerated set; nil otherwise.
func (s OutcomeSet) Elements() []string {
	if s.kind != KindEnumerated {
		return nil
	}

	return append([]string(nil), s.elems...)
}

// Contains reports membership of name.
func (s OutcomeSet) Contains(name string) bool {
	switch s.kind {
	case KindUniversal:
		return true
	case KindEmpty:
		return false
	}

	for _, e := range s.elems {
		if e == name {
			return true
		}
	}

	return false
}

// IsEmpty reports whether s has no members.
func (s OutcomeSet) IsEmpty() bool {
	switch s.kind {
	case KindUniversal:
		return false
	case KindEmpty:
		return true
	}

	return len(s.elems) == 0
}

// Union returns s ∪ other.
func (s OutcomeSet) Union(other OutcomeSet) OutcomeSet {
	switch {
	case s.kind == KindUniversal || other.kind == KindUniversal:
		return Universal()
	case s.kind == KindEmpty:
		return other
	case other.kind == KindEmpty:
		return s
	}

	merged := make([]string, 0, len(s.elems)+len(other.elems))
	merged = append(merged, s.elems...)
	merged = append(merged, other.elems...)

	return Enumerated(merged...)
}

// Intersect returns s ∩ other.
func (s OutcomeSet) Intersect(other OutcomeSet) OutcomeSet {
	switch {
	case s.kind == KindEmpty || other.kind == KindEmpty:
		return Empty()
	case s.kind == KindUniversal:
		return other
	case other.kind == KindUniversal:
		return s
	}

	common := make([]string, 0, len(s.elems))
	for _, e := range s.elems {
		if other.Contains(e) {
			common = append(common, e)
		}
	}

	return Enumerated(common...)
}

func (s OutcomeSet) String() string {
	switch s.kind {
	case KindUniversal:
		return "Universal"
	case KindEmpty:
		return "Empty"
	}

	return "{" + strings.Join(s.elems, ", ") + "}"
}
