// Package ui provides the terminal user interface for cardsearch.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all interface state and is only
// touched from the Bubble Tea update loop. Record loading runs once as a
// command and hands its snapshot back as a message; filtering and selection
// are delegated to the search package.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key routing and the Run entry point
//   - header.go: title bar, query input, result summary and footer
//   - cards.go: card rendering with highlighted matches and the hit-test layout
//   - mouse.go: pointer enter/leave/click and wheel scrolling
//   - scroll.go: eased scrolling that centers the selected card
//   - diagnostics.go: log file overlay (f2)
//   - help.go: key binding overlay (f1)
//   - theme.go: color themes and prebuilt styles
//
// # Event Flow
//
//  1. Run() builds the Model and starts the program with mouse reporting
//  2. Init() starts the loader command
//  3. loadedMsg stores the snapshot and filters it against the current query
//  4. Every query edit refilters and resets the selection
//  5. up/down and pointer events drive search.Navigator; its scroll effect
//     starts an animated scroll
//  6. Context cancellation or ctrl+c ends the program
//
// # Key Bindings
//
//   - type: edit the query
//   - up/down, ctrl+p/ctrl+n: previous/next card, wrapping at the ends
//   - pgup/pgdown: scroll the card list
//   - esc: clear the query or close an overlay
//   - ctrl+t: cycle theme (saved to prefs)
//   - f1: help
//   - f2: log
//   - ctrl+c: quit
package ui
