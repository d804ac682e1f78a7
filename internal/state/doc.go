// Package state provides thread-safe state management for showcase.
//
// # Overview
//
// The Store is the hand-off point between whichever catalog source is active
// (HTTP feed poller, file watcher, or the built-in sample) and the Bubble Tea
// UI:
//
//	Producer (source):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ fetch / reload │            │ tick            │
//	│      ↓         │            │      ↓          │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│                │  (mutex)   │      ↓          │
//	│                │            │ carousel items  │
//	└────────────────┘            └─────────────────┘
//
// # Snapshots
//
// Snapshot returns a defensive copy. Version increases on every successful
// Update, which lets the UI skip rebuilding carousel state when nothing
// changed between ticks. Failed updates keep the previous listings, record
// the error and count consecutive failures; IsStale reports two or more in a
// row.
package state
