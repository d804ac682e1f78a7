package carousel

// State is the slide-index state machine behind a carousel. It has no
// timers; Model drives it from Bubble Tea messages. The zero value is an
// empty carousel with the default window size.
type State[T any] struct {
	items    []T
	window   int
	extended []T
	total    int
	index    int
	paused   bool
}

// NewState builds a State over items showing window items per slide.
func NewState[T any](items []T, window int) State[T] {
	s := State[T]{window: normalizeWindow(window)}
	s.SetItems(items)
	return s
}

// SetItems replaces the item sequence and recomputes the derived slide
// data. The index is clamped into the new range; a carousel caught mid-wrap
// snaps to the first slide.
func (s *State[T]) SetItems(items []T) {
	wrapping := s.InWrap()
	s.items = items
	s.recompute(wrapping)
}

// SetWindow changes the number of items shown per slide.
func (s *State[T]) SetWindow(window int) {
	window = normalizeWindow(window)
	if window == s.window {
		return
	}
	wrapping := s.InWrap()
	s.window = window
	s.recompute(wrapping)
}

func (s *State[T]) recompute(wrapping bool) {
	s.window = normalizeWindow(s.window)
	s.extended = Extend(s.items, s.window)
	s.total = ceilDiv(len(s.extended), s.window)

	switch {
	case s.total == 0, wrapping:
		s.index = 0
	case s.index > s.total-1:
		s.index = s.total - 1
	case s.index < 0:
		s.index = 0
	}
}

// Advance moves one slide forward. From the last real slide it steps onto
// the synthetic wrap slide and reports true; the caller must then schedule
// ResetWrap. With one slide or none it does nothing.
func (s *State[T]) Advance() (wrapped bool) {
	if s.total <= 1 {
		return false
	}
	if s.index >= s.total {
		// Already on the synthetic slide; the pending reset owns the next move.
		return false
	}
	s.index++
	return s.index == s.total
}

// Retreat moves one slide back, jumping from the first slide to the last
// real one.
func (s *State[T]) Retreat() {
	if s.total == 0 {
		return
	}
	if s.index <= 0 {
		s.index = s.total - 1
		return
	}
	s.index--
}

// GoTo jumps to slide index, clamped into the real slide range.
func (s *State[T]) GoTo(index int) {
	if s.total == 0 {
		s.index = 0
		return
	}
	s.index = max(0, min(index, s.total-1))
}

// ResetWrap snaps the synthetic wrap slide back to slide zero. It reports
// whether the index changed.
func (s *State[T]) ResetWrap() bool {
	if !s.InWrap() {
		return false
	}
	s.index = 0
	return true
}

// Pause stops auto-advance without touching the index.
func (s *State[T]) Pause() { s.paused = true }

// Resume re-enables auto-advance without touching the index.
func (s *State[T]) Resume() { s.paused = false }

// Paused reports whether auto-advance is suspended.
func (s State[T]) Paused() bool { return s.paused }

// InWrap reports whether the index sits on the synthetic wrap slide.
func (s State[T]) InWrap() bool { return s.total > 0 && s.index >= s.total }

func (s State[T]) Index() int       { return s.index }
func (s State[T]) TotalSlides() int { return s.total }
func (s State[T]) WindowSize() int  { return normalizeWindow(s.window) }
func (s State[T]) Len() int         { return len(s.items) }

// Items returns the current item sequence. Callers must not modify it.
func (s State[T]) Items() []T { return s.items }

// Extended returns items plus the wrap prefix. Callers must not modify it.
func (s State[T]) Extended() []T { return s.extended }

// VisibleWindow returns the items for the current slide. It is empty on the
// synthetic wrap slide, which starts past the end of the extended sequence.
func (s State[T]) VisibleWindow() []T {
	return windowAt(s.extended, s.index, s.WindowSize())
}

// WindowAt returns the items for an arbitrary slide index.
func (s State[T]) WindowAt(index int) []T {
	return windowAt(s.extended, index, s.WindowSize())
}

// DotCount returns the number of indicator dots.
func (s State[T]) DotCount() int { return DotCount(len(s.items), s.WindowSize()) }

// ActiveDot returns the highlighted dot for the current index.
func (s State[T]) ActiveDot() int { return ActiveDot(s.index, len(s.items), s.WindowSize()) }
