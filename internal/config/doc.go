// Package config loads the showcase TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/showcase/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - Title: "Featured Properties"
//   - Window size: 4 listings per slide (capped at 8)
//   - Advance interval: 2s
//   - Wrap delay: 50ms
//   - Listings file: ~/.local/share/showcase/listings.yaml
//   - Feed poll: 30s (only used when feed_url is set)
//   - Log directory: ~/.local/state/showcase
//
// # TOML Format
//
//	title = "Featured Properties"
//	window_size = 4
//	advance_interval = "2s"
//	wrap_delay = "50ms"
//	listings_path = "~/.local/share/showcase/listings.yaml"
//	feed_url = "https://listings.example.ae"
//	feed_poll = "30s"
//	log_dir = "~/.local/state/showcase"
//	debug = false
//
// Durations use time.ParseDuration syntax. Zero or negative durations fall
// back to the default; unparsable ones are an error.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and malformed durations. A missing file
// is not an error.
package config
