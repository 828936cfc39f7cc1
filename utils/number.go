package utils

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type number interface {
	integer | ~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// AlignUp rounds n up to a multiple of align. Alignments below 2 leave n as is.
func AlignUp[T integer](n, align T) T {
	if align <= 1 {
		return n
	}

	return (n + align - 1) / align * align
}
