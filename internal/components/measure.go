package components

import (
	"strings"
	"unicode/utf8"
)

// wrapLine soft-wraps a single logical line to fit within maxWidth columns.
// Whitespace is preserved: a run of spaces hangs off the end of its line the
// way the editor renders it, and words longer than maxWidth are broken
// across lines.
func wrapLine(text string, maxWidth int) []string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return []string{text}
	}

	var (
		lines   []string
		current strings.Builder
		width   int
	)

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		width = 0
	}

	for _, token := range splitSpaceRuns(text) {
		tokenWidth := utf8.RuneCountInString(token)

		if token[0] == ' ' {
			// Spaces never force a wrap; they overflow their line.
			current.WriteString(token)
			width += tokenWidth
			continue
		}

		if width > 0 && width+tokenWidth > maxWidth {
			flush()
		}

		if tokenWidth > maxWidth {
			runes := []rune(token)
			for len(runes) > maxWidth {
				lines = append(lines, string(runes[:maxWidth]))
				runes = runes[maxWidth:]
			}
			current.WriteString(string(runes))
			width = len(runes)
			continue
		}

		current.WriteString(token)
		width += tokenWidth
	}

	if current.Len() > 0 || len(lines) == 0 {
		flush()
	}

	return lines
}

// splitSpaceRuns splits text into alternating runs of spaces and non-spaces.
func splitSpaceRuns(text string) []string {
	runes := []rune(text)
	var tokens []string
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || (runes[i] == ' ') != (runes[start] == ' ') {
			tokens = append(tokens, string(runes[start:i]))
			start = i
		}
	}
	return tokens
}

// contentRows measures the natural height of value in terminal rows when
// soft-wrapped at the given width. An empty value still occupies one row.
func contentRows(value string, width int) int {
	if value == "" {
		return 1
	}

	rows := 0
	for _, line := range strings.Split(value, "\n") {
		rows += len(wrapLine(line, width))
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampRows constrains rows into [minRows, maxRows]. A maxRows of zero or
// less leaves the upper bound open.
func clampRows(rows, minRows, maxRows int) int {
	if minRows < 1 {
		minRows = 1
	}
	if rows < minRows {
		rows = minRows
	}
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	return rows
}
