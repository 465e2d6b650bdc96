package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Entry is one line of the log file.
type Entry struct {
	Line  string
	Level string // DEBUG, INFO, WARN, ERROR, or "" when the line has no level
}

// Read returns at most maxLines entries from the end of the file at path.
// A non-positive maxLines reads the whole file. A missing file yields no
// entries and no error.
func Read(path string, maxLines int) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []Entry
		for scanner.Scan() {
			all = append(all, parse(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	entries := make([]Entry, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := 0; i < count; i++ {
		entries[i] = parse(ring[(start+i)%maxLines])
	}
	return entries, nil
}

// parse extracts the level attribute written by slog's text handler.
func parse(line string) Entry {
	entry := Entry{Line: line}
	for _, field := range strings.Fields(line) {
		if level, ok := strings.CutPrefix(field, "level="); ok {
			entry.Level = strings.ToUpper(level)
			break
		}
	}
	return entry
}
