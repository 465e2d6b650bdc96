package ui

import "time"

// Screen rows outside the card list.
const (
	// headerHeight covers the title bar, the query input and the summary line.
	headerHeight = 3

	// footerHeight is the key hint bar.
	footerHeight = 1
)

// Overlay sizing.
const (
	// overlayMaxWidth caps the help and diagnostics boxes.
	overlayMaxWidth = 100

	// diagnosticsLines is how many log lines the diagnostics pane reads.
	diagnosticsLines = 200
)

// Scrolling.
const (
	// scrollFrame is the delay between animated scroll steps.
	scrollFrame = 16 * time.Millisecond

	// scrollEase divides the remaining distance on each step.
	scrollEase = 3

	// wheelLines is how far one mouse wheel notch scrolls.
	wheelLines = 3
)

// queryCharLimit bounds the query input.
const queryCharLimit = 256
