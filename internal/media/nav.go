package media

// Next returns the index after i in a collection of n items, wrapping to 0
// after the last one. With n == 0 it returns i unchanged.
func Next(i, n int) int {
	if n <= 0 {
		return i
	}
	return (i + 1) % n
}

// Prev returns the index before i, wrapping to the last item after 0.
// With n == 0 it returns i unchanged.
func Prev(i, n int) int {
	if n <= 0 {
		return i
	}
	return (i - 1 + n) % n
}

// InRange reports whether i is a valid index for n items
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

// Clamp pins i into [0, n-1], or 0 for an empty collection
func Clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
