package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-iiif/ir"
)

var ErrUnsupportedValue = errors.New("unsupported value")

type EncState struct {
	depth, indent int
	wire          bool
	escapeHTML    bool

	paint func(Role, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if err := encode(node, bw, es); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func encode(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if node == nil {
		return writeValue(w, es, ir.NullType, "null")
	}
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		lit, err := numberLiteral(node)
		if err != nil {
			return fmt.Errorf("%w at %s: %w", ErrUnsupportedValue, node.Path(), err)
		}
		return writeValue(w, es, ir.NumberType, lit)
	case ir.StringType:
		return writeValue(w, es, ir.StringType, quote(node.String, es.escapeHTML))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return fmt.Errorf("%w: node type %s", ErrUnsupportedValue, node.Type)
}

func encodeArray(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, "[]")
	}
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "]")
}

func encodeObject(node *ir.Node, w *bufio.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, "{}")
	}
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := quote(f.String, es.escapeHTML)
		if es.paint != nil {
			key = es.paint(keyRole(f.String), key)
		}
		if _, err := w.WriteString(key); err != nil {
			return err
		}
		colon := ":"
		if !es.wire {
			colon = ": "
		}
		if err := writeSep(w, es, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, "}")
}

func writeValue(w *bufio.Writer, es *EncState, t ir.Type, v string) error {
	if es.paint != nil {
		v = es.paint(valueRole(t), v)
	}
	_, err := w.WriteString(v)
	return err
}

func writeSep(w *bufio.Writer, es *EncState, v string) error {
	if es.paint != nil {
		v = es.paint(RolePunct, v)
	}
	_, err := w.WriteString(v)
	return err
}

func writeNL(w *bufio.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	_, err := w.WriteString(strings.Repeat(" ", es.depth*es.indent))
	return err
}

func numberLiteral(node *ir.Node) (string, error) {
	if node.Number != "" {
		return node.Number, nil
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 != nil {
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("non-finite number %v", f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", errors.New("number node without a value")
}

const hex = "0123456789abcdef"

// quote returns s as a JSON string literal.
func quote(s string, escapeHTML bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case c == '\n':
				b.WriteString(`\n`)
			case c == '\r':
				b.WriteString(`\r`)
			case c == '\t':
				b.WriteString(`\t`)
			case c < 0x20 || (escapeHTML && (c == '<' || c == '>' || c == '&')):
				b.WriteString(`\u00`)
				b.WriteByte(hex[c>>4])
				b.WriteByte(hex[c&0xf])
			default:
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(`\ufffd`)
		case r == '\u2028' || r == '\u2029':
			b.WriteString(`\u202`)
			b.WriteByte(hex[r&0xf])
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}
