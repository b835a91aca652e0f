// Package literal locates and rewrites triple-quoted string literals in
// source text.
//
// A literal is addressed by the line its closing delimiter ends on. The
// search runs over the reversed prefix of the buffer so that a non-greedy
// forward pattern finds the nearest closing delimiter at or before the
// target line; the matched pieces are reversed back when the buffer is
// reassembled. Quote character, quote style, and the raw marker are
// preserved where the replacement body allows it.
package literal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/accepttest/internal/text"
)

// closerRE matches at the start of a rune-reversed buffer prefix. Reading
// it forward against reversed text: the tail of the closing line, a run of
// three quotes, the shortest body, the same quote run again, and then an
// optional raw marker (the marker precedes the opening quote in forward
// text, so it trails the construct here). RE2 has no backreferences, so
// the repeated quote run is spelled as an alternation per quote character.
var closerRE = regexp.MustCompile(`(?s)^([^\n]*?)(?:'''(.*?)'''|"""(.*?)""")(r?)`)

// span is one matched literal on the reversed prefix.
type span struct {
	suffix string // reversed text between the closing quote and end of line
	quote  string // the three-character delimiter
	body   string // reversed body, escapes still encoded
	raw    bool
	end    int // byte offset in the reversed prefix one past the raw marker
}

func findClosing(rev string) (span, bool) {
	m := closerRE.FindStringSubmatchIndex(rev)
	if m == nil {
		return span{}, false
	}
	sp := span{
		suffix: rev[m[2]:m[3]],
		raw:    rev[m[8]:m[9]] == "r",
		end:    m[1],
	}
	if m[4] >= 0 {
		sp.quote = "'''"
		sp.body = rev[m[4]:m[5]]
	} else {
		sp.quote = `"""`
		sp.body = rev[m[6]:m[7]]
	}
	return sp, true
}

// Replace rewrites the body of the nearest triple-quoted literal whose
// closing delimiter ends at or before line lineno. It returns the new
// buffer and the signed change in total line count.
//
// The replacement body must be printable; line endings in it are
// normalized to LF. The original quote character is always kept. A raw
// literal stays raw unless the new body cannot be represented raw, in
// which case the marker is dropped and the body is escaped. A non-raw
// multi-line body gains a leading line continuation so the opening quote
// line stays clean.
func Replace(src string, lineno int, newBody string) (string, int, error) {
	if r, ok := unprintable(newBody); ok {
		return "", 0, fmt.Errorf("%w: %q", ErrUnsupportedCharacter, r)
	}
	end, err := text.LineEnd(src, lineno)
	if err != nil {
		return "", 0, err
	}
	body := text.Normalize(newBody)

	rev := reverse(src[:end])
	sp, ok := findClosing(rev)
	if !ok {
		return "", 0, ErrNoLiteralFound
	}

	raw := sp.raw && okForRaw(body, sp.quote[:1])
	enc := body
	if !raw {
		enc = escape(enc, sp.quote)
	}
	if strings.Contains(enc, "\n") && !raw {
		enc = "\\\n" + enc
	}

	delta := strings.Count(enc, "\n") - strings.Count(sp.body, "\n")

	marker := ""
	if raw {
		marker = "r"
	}
	replaced := sp.suffix + sp.quote + reverse(enc) + sp.quote + marker
	return reverse(replaced+rev[sp.end:]) + src[end:], delta, nil
}

// Extract decodes the body of the nearest triple-quoted literal whose
// closing delimiter ends at or before line lineno. Raw bodies are
// returned verbatim; otherwise backslash escapes (including a leading
// line continuation) are undone.
//
// Unlike Replace, which reproduces the reversed non-greedy search
// exactly, Extract lexes forward with escape awareness: an escaped quote
// inside a non-raw body must not terminate the literal, or bodies ending
// in quote characters would decode short.
func Extract(src string, lineno int) (string, error) {
	end, err := text.LineEnd(src, lineno)
	if err != nil {
		return "", err
	}

	var best string
	found := false
	for i := 0; i+3 <= len(src); {
		if !quoteRunAt(src, i, src[i]) || (src[i] != '\'' && src[i] != '"') {
			i++
			continue
		}
		quote := src[i]
		raw := i > 0 && src[i-1] == 'r'
		bodyStart := i + 3

		j := bodyStart
		closed := false
		for j < len(src) {
			if !raw && src[j] == '\\' && j+1 < len(src) {
				j += 2
				continue
			}
			if quoteRunAt(src, j, quote) {
				closed = true
				break
			}
			j++
		}
		if !closed {
			break
		}
		closeEnd := j + 3
		if closeEnd > end {
			break
		}
		body := src[bodyStart:j]
		if raw {
			best = body
		} else {
			best = unescape(body)
		}
		found = true
		i = closeEnd
	}
	if !found {
		return "", ErrNoLiteralFound
	}
	return best, nil
}

// quoteRunAt reports whether three copies of quote start at offset i.
func quoteRunAt(src string, i int, quote byte) bool {
	return i+3 <= len(src) && src[i] == quote && src[i+1] == quote && src[i+2] == quote
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
