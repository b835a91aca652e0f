// Package text provides line-oriented offset arithmetic over raw source
// buffers.
//
// Offsets are byte offsets into the buffer and lines are 1-indexed. Only
// line feeds delimit lines here: replacement content is normalized before
// it is ever inserted, so existing buffers never carry bare carriage
// returns by the time these functions see them.
package text

import "strings"

// LineStart returns the byte offset of the first character of line lineno.
//
// The scan advances past lineno-1 line feeds. When the buffer runs out of
// line feeds the scan position wraps to zero, preserving the behavior of a
// find-then-increment loop over the whole buffer.
func LineStart(text string, lineno int) (int, error) {
	if lineno < 1 {
		return 0, ErrInvalidLineNumber
	}
	pos := 0
	for i := 1; i < lineno; i++ {
		idx := strings.IndexByte(text[pos:], '\n')
		if idx < 0 {
			pos = 0
			continue
		}
		pos += idx + 1
	}
	return pos, nil
}

// LineEnd returns the byte offset of the line feed terminating line lineno,
// or len(text) if line lineno is the last line and has no trailing line
// feed.
func LineEnd(text string, lineno int) (int, error) {
	if lineno < 1 {
		return 0, ErrInvalidLineNumber
	}
	pos := -1
	for i := 0; i < lineno; i++ {
		idx := strings.IndexByte(text[pos+1:], '\n')
		if idx < 0 {
			return len(text), nil
		}
		pos += idx + 1
	}
	return pos, nil
}

// Normalize converts CRLF and lone CR line endings to LF.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
