// Package logtail reads the end of the cardsearch log file for the
// diagnostics pane.
//
// Read keeps a ring buffer of the last N lines so large files are scanned
// once without holding every line in memory. Each line is returned as an
// Entry with the level attribute written by slog's text handler pulled out,
// which the UI uses for coloring:
//
//	time=... level=ERROR msg="record load failed" source=http://... err="..."
//	        ^^^^^^^^^^^ Entry.Level = "ERROR"
//
// A missing log file is normal before anything has been logged and returns
// no entries and no error.
package logtail
