package literal

import "strings"

// okForRaw reports whether s can sit inside a raw triple-quoted literal.
// Backslashes are literal in raw mode, so a body containing the closing
// delimiter, or ending in the quote character or a backslash, has no raw
// representation.
func okForRaw(s, quote string) bool {
	if strings.Contains(s, quote+quote+quote) {
		return false
	}
	if s == "" {
		return true
	}
	last := s[len(s)-1:]
	return last != quote && last != `\`
}

// escape encodes s for a non-raw literal delimited by the three-character
// quote run. Order matters: backslashes double first, then a trailing
// quote character is escaped (so it cannot fuse with the delimiter), then
// any interior delimiter run has each of its three quotes escaped.
func escape(s, quote string) string {
	q := quote[:1]
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = escapeTrailingQuote(s, q)
	return strings.ReplaceAll(s, quote, `\`+q+`\`+q+`\`+q)
}

// escapeTrailingQuote escapes the final character of s when it equals the
// quote character.
func escapeTrailingQuote(s, quote string) string {
	if s != "" && s[len(s)-1:] == quote {
		return s[:len(s)-1] + `\` + quote
	}
	return s
}

// unescape undoes the encoding produced by escape, plus the leading line
// continuation Replace may add. Only the sequences escape emits are
// decoded; any other escape keeps its backslash.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch next := s[i+1]; next {
		case '\\', '\'', '"':
			b.WriteByte(next)
			i++
		case '\n':
			// Line continuation: both characters vanish.
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// unprintable returns the first rune of s outside the supported set: the
// ASCII graphic range, space, and the whitespace escapes tab, line feed,
// carriage return, vertical tab, and form feed.
func unprintable(s string) (rune, bool) {
	for _, r := range s {
		if r >= 0x20 && r <= 0x7e {
			continue
		}
		switch r {
		case '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return r, true
	}
	return 0, false
}
