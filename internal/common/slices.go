package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool { return len(s) == 0 }

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool { return len(s) == 1 }

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool { return len(s) > 1 }

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	var zero E
	if IsEmpty(s) {
		return zero, false
	}

	return s[0], true
}

// AppendUnique appends v unless s already holds it.
func AppendUnique[S ~[]E, E comparable](s S, v E) S {
	for _, e := range s {
		if e == v {
			return s
		}
	}

	return append(s, v)
}
