package core

// growBy returns s with room for unit more elements. The backing array
// grows by a fixed increment rather than doubling.
func growBy[T any](s []T, unit int) []T {
	if unit <= 0 {
		unit = 1
	}
	grown := make([]T, len(s), cap(s)+unit)
	copy(grown, s)
	return grown
}
