package encode

type EncodeOption func(*EncState)

// EncodeWire selects compact output with no insignificant whitespace.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeIndent sets the number of spaces per nesting level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colors output with palette c. A nil palette turns
// coloring off.
func EncodeColors(c Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.paint = nil
			return
		}
		es.paint = c.Paint
	}
}

// EncodeEscapeHTML escapes <, > and & inside strings.
func EncodeEscapeHTML(v bool) EncodeOption {
	return func(es *EncState) { es.escapeHTML = v }
}
