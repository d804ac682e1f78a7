// Package app provides the orchestration layer for showcase.
//
// # Overview
//
// This package wires together configuration, the listing source, state
// management, and the UI. It is the composition root where dependencies are
// initialized and connected.
//
// # Sources
//
// Exactly one source feeds the shared state.Store, chosen in this order:
//
//  1. The HTTP listings feed, when feed_url is set. A background poller
//     fetches featured listings every feed_poll and backs off on failure.
//  2. The YAML catalog at listings_path, when the file exists. An fsnotify
//     watcher reloads it after edits.
//  3. The built-in sample catalog.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml, apply flag overrides
//	       ├─────> prefs.Load()       Theme and remembered window size
//	       ├─────> logging.New()      zap logger writing to the log dir
//	       ├─────> startSource()      Seed the store, start poller or watcher
//	       └─────> ui.Run()           Start TUI (blocks)
//
// The UI reads store snapshots once a second and only hands listings to the
// carousel when the snapshot version changed.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Malformed config file or duration
//   - Invalid feed URL
//   - Watcher setup failure for an existing catalog
//
// Recoverable errors (recorded in the store and shown in the header):
//   - Feed fetch failures and timeouts
//   - Catalog parse errors after an edit
package app
