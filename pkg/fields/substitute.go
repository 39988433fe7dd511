package fields

import "strings"

// Fill replaces every {{key}} token in text with the context value for key.
// Unknown tokens stay verbatim so a template typo degrades to visible marker
// text instead of failing the whole document. The input is scanned once, left
// to right; a substituted value is never itself re-scanned for tokens.
func Fill(text string, ctx Context) string {
	if text == "" || len(ctx) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open:], "}}")
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])
		key := rest[open+2 : open+end]
		if value, ok := ctx[key]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[open : open+end+2])
		}
		rest = rest[open+end+2:]
	}
	b.WriteString(rest)
	return b.String()
}
