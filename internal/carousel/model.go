package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultInterval is the auto-advance period.
	DefaultInterval = 2 * time.Second
	// DefaultWrapDelay is how long the synthetic wrap slide stays on screen
	// before the index snaps back to zero.
	DefaultWrapDelay = 50 * time.Millisecond
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// AdvanceMsg is delivered when the auto-advance timer fires.
type AdvanceMsg struct {
	ID  int
	tag int
}

// WrapResetMsg is delivered when the deferred wrap reset fires.
type WrapResetMsg struct {
	ID  int
	tag int
}

// Options configure a carousel Model.
type Options struct {
	WindowSize int
	Interval   time.Duration
	WrapDelay  time.Duration
}

// Model is a Bubble Tea component that drives a State with an auto-advance
// timer and a deferred wrap reset. Timers are tea.Tick commands tagged with
// the model id and a generation counter; bumping the counter cancels them.
//
// A Model does nothing until Start is called and stops reacting to its
// timers once Stop is called.
type Model[T any] struct {
	id        int
	state     State[T]
	interval  time.Duration
	wrapDelay time.Duration

	mounted  bool
	tickTag  int
	resetTag int

	// Pointer hover and an explicit pin pause independently.
	hovered bool
	pinned  bool
}

// New creates a carousel over items.
func New[T any](items []T, opts Options) Model[T] {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	wrapDelay := opts.WrapDelay
	if wrapDelay <= 0 {
		wrapDelay = DefaultWrapDelay
	}
	return Model[T]{
		id:        nextID(),
		state:     NewState(items, opts.WindowSize),
		interval:  interval,
		wrapDelay: wrapDelay,
	}
}

// ID returns the identifier carried by this model's timer messages.
func (m Model[T]) ID() int { return m.id }

// Start mounts the carousel and arms the auto-advance timer. A carousel left
// on the wrap slide by an earlier Stop resumes from slide zero.
func (m *Model[T]) Start() tea.Cmd {
	m.mounted = true
	m.resetTag++
	m.state.ResetWrap()
	return m.rearm()
}

// Stop unmounts the carousel. Pending advance and wrap-reset timers are
// cancelled unconditionally.
func (m *Model[T]) Stop() {
	m.mounted = false
	m.tickTag++
	m.resetTag++
}

// Running reports whether the carousel is mounted.
func (m Model[T]) Running() bool { return m.mounted }

// Update handles timer messages addressed to this model.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case AdvanceMsg:
		if msg.ID != m.id || msg.tag != m.tickTag || !m.mounted || m.state.Paused() {
			return m, nil
		}
		return m, m.step()

	case WrapResetMsg:
		if msg.ID != m.id || msg.tag != m.resetTag || !m.mounted {
			return m, nil
		}
		m.state.ResetWrap()
		return m, m.rearm()
	}
	return m, nil
}

// Next advances one slide, the same way the timer does.
func (m *Model[T]) Next() tea.Cmd {
	return m.step()
}

// Prev moves back one slide and cancels a pending wrap reset.
func (m *Model[T]) Prev() tea.Cmd {
	m.resetTag++
	m.state.Retreat()
	return m.rearm()
}

// GoTo jumps to a slide and cancels a pending wrap reset.
func (m *Model[T]) GoTo(index int) tea.Cmd {
	m.resetTag++
	m.state.GoTo(index)
	return m.rearm()
}

// Pause suspends auto-advance while the pointer is over the carousel or its
// controls.
func (m *Model[T]) Pause() tea.Cmd {
	m.hovered = true
	return m.syncPause()
}

// Resume lifts the hover pause.
func (m *Model[T]) Resume() tea.Cmd {
	m.hovered = false
	return m.syncPause()
}

// TogglePin pins or unpins the carousel. A pinned carousel stays paused
// regardless of hover.
func (m *Model[T]) TogglePin() tea.Cmd {
	m.pinned = !m.pinned
	return m.syncPause()
}

// Pinned reports whether the carousel is pinned.
func (m Model[T]) Pinned() bool { return m.pinned }

// Hovered reports whether the hover pause is active.
func (m Model[T]) Hovered() bool { return m.hovered }

// SetItems replaces the items. A pending wrap reset is dropped because the
// index has already been re-homed.
func (m *Model[T]) SetItems(items []T) tea.Cmd {
	before := m.state.Index()
	if m.state.InWrap() {
		m.resetTag++
	}
	m.state.SetItems(items)
	if m.state.Index() == before {
		return nil
	}
	return m.rearm()
}

// SetWindow changes the number of items per slide.
func (m *Model[T]) SetWindow(window int) tea.Cmd {
	before := m.state.Index()
	if m.state.InWrap() {
		m.resetTag++
	}
	m.state.SetWindow(window)
	if m.state.Index() == before {
		return nil
	}
	return m.rearm()
}

// State returns a copy of the underlying slide state.
func (m Model[T]) State() State[T] { return m.state }

func (m Model[T]) Index() int         { return m.state.Index() }
func (m Model[T]) TotalSlides() int   { return m.state.TotalSlides() }
func (m Model[T]) WindowSize() int    { return m.state.WindowSize() }
func (m Model[T]) Paused() bool       { return m.state.Paused() }
func (m Model[T]) InWrap() bool       { return m.state.InWrap() }
func (m Model[T]) DotCount() int      { return m.state.DotCount() }
func (m Model[T]) ActiveDot() int     { return m.state.ActiveDot() }
func (m Model[T]) VisibleWindow() []T { return m.state.VisibleWindow() }

// Display returns the items a renderer should draw. On the synthetic wrap
// slide that is the duplicated prefix, which matches slide zero.
func (m Model[T]) Display() []T {
	if m.state.InWrap() {
		return m.state.WindowAt(0)
	}
	return m.state.VisibleWindow()
}

func (m *Model[T]) step() tea.Cmd {
	if !m.state.Advance() {
		return m.rearm()
	}
	if !m.mounted {
		// No timer can land the reset, so wrap straight to slide zero.
		m.state.ResetWrap()
		return nil
	}
	// The tick is re-armed once the reset lands on slide zero.
	m.tickTag++
	m.resetTag++
	return wrapResetCmd(m.id, m.resetTag, m.wrapDelay)
}

func (m *Model[T]) syncPause() tea.Cmd {
	paused := m.hovered || m.pinned
	if paused == m.state.Paused() {
		return nil
	}
	if paused {
		m.state.Pause()
	} else {
		m.state.Resume()
	}
	return m.rearm()
}

// rearm invalidates any outstanding advance timer and, when the carousel is
// mounted and running, schedules a fresh one.
func (m *Model[T]) rearm() tea.Cmd {
	m.tickTag++
	if !m.mounted || m.state.Paused() {
		return nil
	}
	return advanceCmd(m.id, m.tickTag, m.interval)
}

func advanceCmd(id, tag int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return AdvanceMsg{ID: id, tag: tag}
	})
}

func wrapResetCmd(id, tag int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return WrapResetMsg{ID: id, tag: tag}
	})
}
