// Package carousel implements an auto-advancing, wrap-around slide index.
//
// # Slides and windows
//
// A carousel shows WindowSize consecutive items per slide. To loop without a
// visible jump-cut the item sequence is extended with a copy of its first
// min(WindowSize, len(items)) items:
//
//	items:    A B C D E F            (6 items, window 4)
//	extended: A B C D E F A B C D    (10 items)
//	slides:   [A B C D] [E F A B] [C D]   -> TotalSlides = 3
//
// The extended sequence is cached and only rebuilt when the items or the
// window size change.
//
// # Index policy
//
// The index normally lives in [0, TotalSlides-1]. Advancing from the last
// slide moves to TotalSlides, the synthetic wrap slide, and a short one-shot
// timer snaps it back to zero. Retreating from zero jumps straight to the
// last slide. GoTo clamps its argument. With no items every operation is a
// no-op and the index stays at zero; with a single slide Advance does
// nothing.
//
// # Dots
//
// Dot indicators cover only distinct slides:
//
//	DotCount  = min(TotalSlides, ceil(len(items) / WindowSize))
//	ActiveDot = Index mod ceil(len(items) / WindowSize)
//
// Integer ceiling division is used throughout, so with 6 items and a
// window of 4 there are 2 dots and slides 0..3 light dots 0,1,0,1.
//
// # Timers
//
// Model wraps State for Bubble Tea. Start arms the auto-advance tick, Stop
// cancels every pending timer. Each timer message carries the model id and a
// generation tag, and any change to the index or the pause flag bumps the
// tag, so the advance period restarts and stale timers are ignored. Manual
// navigation (Prev, GoTo) also cancels a pending wrap reset so it cannot
// overwrite the user's choice.
//
// Pause and Resume model pointer hover. TogglePin holds the carousel paused
// independently of hover.
package carousel
