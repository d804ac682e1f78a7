package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSlideCountMatchesExtendedLength(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for w := 1; w <= 6; w++ {
			want := ceilDiv(n+min(w, n), w)
			assert.Equal(t, want, SlideCount(n, w), "n=%d w=%d", n, w)

			s := NewState(seq(n), w)
			assert.Equal(t, want, s.TotalSlides(), "n=%d w=%d", n, w)
			assert.Len(t, s.Extended(), n+min(w, n), "n=%d w=%d", n, w)
		}
	}
}

func TestExtendDuplicatesPrefix(t *testing.T) {
	got := Extend([]string{"a", "b", "c", "d", "e", "f"}, 4)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "a", "b", "c", "d"}, got)

	got = Extend([]string{"a", "b"}, 4)
	assert.Equal(t, []string{"a", "b", "a", "b"}, got)

	assert.Nil(t, Extend[string](nil, 4))
}

func TestExtendDoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	ext := Extend(items, 2)
	ext[0] = 99
	assert.Equal(t, 1, items[0])
}

func TestSixItemsWindowFourWrapsThroughSyntheticSlide(t *testing.T) {
	s := NewState(seq(6), 4)
	require.Len(t, s.Extended(), 10)
	require.Equal(t, 3, s.TotalSlides())

	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.Advance())
	assert.Equal(t, 2, s.Index())
	assert.True(t, s.Advance(), "advancing off the last slide should enter the wrap")
	assert.Equal(t, 3, s.Index())
	assert.True(t, s.InWrap())

	assert.True(t, s.ResetWrap())
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.ResetWrap())
}

func TestTwoItemsWindowFourIsSingleSlide(t *testing.T) {
	s := NewState(seq(2), 4)
	require.Len(t, s.Extended(), 4)
	require.Equal(t, 1, s.TotalSlides())

	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Index())
	s.Retreat()
	assert.Equal(t, 0, s.Index())
}

func TestEmptyItemsAreNoOps(t *testing.T) {
	var s State[string]
	s.SetItems(nil)

	assert.NotPanics(t, func() {
		s.Advance()
		s.Retreat()
		s.GoTo(5)
		s.ResetWrap()
	})
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.TotalSlides())
	assert.Equal(t, 0, s.DotCount())
	assert.Equal(t, 0, s.ActiveDot())
	assert.Empty(t, s.VisibleWindow())
}

func TestNonPositiveWindowUsesDefault(t *testing.T) {
	for _, w := range []int{0, -3} {
		s := NewState(seq(6), w)
		assert.Equal(t, DefaultWindowSize, s.WindowSize())
		assert.Equal(t, 3, s.TotalSlides())
	}
}

func TestRetreatThenAdvanceRestoresIndex(t *testing.T) {
	s := NewState(seq(11), 3)
	total := s.TotalSlides()
	require.Equal(t, 5, total)

	for start := 1; start < total; start++ {
		s.GoTo(start)
		s.Retreat()
		s.Advance()
		assert.Equal(t, start, s.Index(), "start=%d", start)
	}
}

func TestRetreatThenAdvanceFromZeroLandsOnWrap(t *testing.T) {
	// From slide zero, retreat jumps to the last slide and advance moves onto
	// the synthetic slide, which is visually slide zero until the reset.
	s := NewState(seq(6), 4)
	s.Retreat()
	assert.Equal(t, 2, s.Index())
	assert.True(t, s.Advance())
	assert.True(t, s.InWrap())
	s.ResetWrap()
	assert.Equal(t, 0, s.Index())
}

func TestRetreatFromSyntheticSlide(t *testing.T) {
	s := NewState(seq(6), 4)
	s.GoTo(2)
	require.True(t, s.Advance())
	s.Retreat()
	assert.Equal(t, 2, s.Index())
}

func TestGoToClamps(t *testing.T) {
	s := NewState(seq(6), 4)
	cases := []struct {
		in, want int
	}{
		{-10, 0},
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{100, 2},
	}
	for _, tc := range cases {
		s.GoTo(tc.in)
		assert.Equal(t, tc.want, s.Index(), "GoTo(%d)", tc.in)
	}
}

func TestPauseResumeKeepsIndex(t *testing.T) {
	s := NewState(seq(6), 4)
	s.GoTo(1)
	s.Pause()
	assert.True(t, s.Paused())
	assert.Equal(t, 1, s.Index())
	s.Resume()
	assert.False(t, s.Paused())
	assert.Equal(t, 1, s.Index())
}

func TestVisibleWindow(t *testing.T) {
	s := NewState([]string{"a", "b", "c", "d", "e", "f"}, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.VisibleWindow())
	s.GoTo(1)
	assert.Equal(t, []string{"e", "f", "a", "b"}, s.VisibleWindow())
	s.GoTo(2)
	assert.Equal(t, []string{"c", "d"}, s.VisibleWindow())
	s.Advance()
	assert.Empty(t, s.VisibleWindow(), "synthetic slide starts past the extended sequence")
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.WindowAt(0))
}

func TestDots(t *testing.T) {
	cases := []struct {
		name   string
		n, w   int
		dots   int
		active []int // indexed by slide, including the synthetic one
	}{
		{"exact multiple", 8, 4, 2, []int{0, 1, 0, 1}},
		{"remainder rounds up", 6, 4, 2, []int{0, 1, 0, 1}},
		{"single slide", 2, 4, 1, []int{0}},
		{"window one", 3, 1, 3, []int{0, 1, 2, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.dots, DotCount(tc.n, tc.w))
			for idx, want := range tc.active {
				assert.Equal(t, want, ActiveDot(idx, tc.n, tc.w), "index %d", idx)
			}
		})
	}
}

func TestSetItemsClampsIndex(t *testing.T) {
	s := NewState(seq(12), 4) // 4 slides
	s.GoTo(3)
	require.Equal(t, 3, s.Index())

	s.SetItems(seq(6)) // 3 slides
	assert.Equal(t, 2, s.Index())

	s.SetItems(nil)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.TotalSlides())

	s.SetItems(seq(6))
	assert.Equal(t, 0, s.Index())
}

func TestSetItemsMidWrapSnapsToZero(t *testing.T) {
	s := NewState(seq(6), 4)
	s.GoTo(2)
	require.True(t, s.Advance())

	s.SetItems(seq(20))
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.InWrap())
}

func TestSetWindowRecomputes(t *testing.T) {
	s := NewState(seq(6), 4)
	s.GoTo(2)
	s.SetWindow(2)
	assert.Equal(t, 2, s.WindowSize())
	assert.Equal(t, 4, s.TotalSlides())
	assert.Equal(t, 2, s.Index())

	s.SetWindow(6)
	assert.Equal(t, 2, s.TotalSlides())
	assert.Equal(t, 1, s.Index())
}
