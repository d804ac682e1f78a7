package carousel

// DefaultWindowSize is the number of items shown per slide when the caller
// does not configure one.
const DefaultWindowSize = 4

// normalizeWindow maps non-positive window sizes to DefaultWindowSize.
func normalizeWindow(window int) int {
	if window <= 0 {
		return DefaultWindowSize
	}
	return window
}

// ceilDiv returns ceil(a / b) for non-negative a and positive b. A
// non-positive b yields 0.
func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Extend returns items followed by the first min(window, len(items)) items.
// The duplicated prefix lets the track scroll past the last slide and land
// on content identical to slide zero before the index snaps back.
func Extend[T any](items []T, window int) []T {
	if len(items) == 0 {
		return nil
	}
	window = normalizeWindow(window)
	prefix := min(window, len(items))
	out := make([]T, 0, len(items)+prefix)
	out = append(out, items...)
	out = append(out, items[:prefix]...)
	return out
}

// SlideCount returns the number of slides needed to show n items plus their
// wrap prefix, window items at a time.
func SlideCount(n, window int) int {
	if n <= 0 {
		return 0
	}
	window = normalizeWindow(window)
	return ceilDiv(n+min(window, n), window)
}

// DotCount returns how many indicator dots represent distinct slides. The
// synthetic wrap slide never gets a dot.
func DotCount(n, window int) int {
	return min(SlideCount(n, window), ceilDiv(n, normalizeWindow(window)))
}

// ActiveDot maps a slide index onto the dot that should be highlighted.
// Near the wrap boundary several slides share a dot because the divisor is
// the rounded-up count of distinct windows.
func ActiveDot(index, n, window int) int {
	divisor := ceilDiv(n, normalizeWindow(window))
	if divisor == 0 || index < 0 {
		return 0
	}
	return index % divisor
}

// windowAt slices extended for slide index, clipped to bounds.
func windowAt[T any](extended []T, index, window int) []T {
	if index < 0 || len(extended) == 0 {
		return nil
	}
	start := index * window
	if start >= len(extended) {
		return nil
	}
	end := min(start+window, len(extended))
	return extended[start:end:end]
}
