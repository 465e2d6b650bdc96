// Package app provides the orchestration layer for cardsearch.
//
// # Overview
//
// This package wires configuration, logging, the record client, the record
// store and the UI together. It is the composition root: every dependency is
// created here and handed down.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml (defaults when missing)
//	       ├─────> logging.Open()       slog text handler on the log file
//	       ├─────> prefs.Load()         Theme and mouse preference
//	       ├─────> records.NewClient()  HTTP or file source
//	       ├─────> NewLoader()          One-shot fetch into state.Store
//	       └─────> ui.Run()             Bubble Tea program (blocks)
//
// The UI calls Loader.Load from its Init command, so the fetch runs on a
// Bubble Tea command goroutine while the first frame is already on screen.
//
// # Loading
//
// Loader.Load fetches at most once for the life of the process. A failure is
// recorded on the store, logged at error level with the source, and otherwise
// ignored: the UI behaves as if the collection were empty. There is no retry.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Log file cannot be opened
//   - Source URL invalid or using an unsupported scheme
//   - Bubble Tea program failure
//
// Recoverable errors (logged, Run continues):
//   - Record fetch failure
//   - Unreadable preferences file
package app
