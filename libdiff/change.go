package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/go-iiif/encode"
	"github.com/signadot/go-iiif/ir"
)

// Change is one difference found by Diff. From is nil for an Insert and To
// is nil for a Delete.
type Change struct {
	Kind Kind
	Path string
	From *ir.Node
	To   *ir.Node
	// Detail is an inline rendering of a string Replace, such as
	// "Sheet [-1-]{+2+}".
	Detail string
}

func makeChange(k Kind, from, to *ir.Node) Change {
	c := Change{Kind: k, From: from, To: to}
	switch {
	case to != nil:
		c.Path = to.Path()
	case from != nil:
		c.Path = from.Path()
	}
	return c
}

// String renders c on one line.
func (c Change) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", c.Kind, c.Path)
	switch c.Kind {
	case Insert:
		fmt.Fprintf(&b, ": %s", wire(c.To))
	case Delete:
		fmt.Fprintf(&b, ": %s", wire(c.From))
	case Replace, Literal:
		if c.Detail != "" {
			fmt.Fprintf(&b, ": %s", c.Detail)
			break
		}
		fmt.Fprintf(&b, ": %s -> %s", wire(c.From), wire(c.To))
	}
	return b.String()
}

func wire(n *ir.Node) string {
	s := encode.MustString(n, encode.EncodeWire(true))
	if len(s) > 72 {
		s = s[:69] + "..."
	}
	return s
}

// Reverse returns the changes that undo cs.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		c.From, c.To = c.To, c.From
		switch c.Kind {
		case Insert:
			c.Kind = Delete
		case Delete:
			c.Kind = Insert
		}
		if c.Detail != "" {
			c.Detail = reverseDetail(c.Detail)
		}
		res[i] = c
	}
	return res
}

// Losses returns the changes which alter content.
func Losses(cs []Change) []Change {
	var res []Change
	for _, c := range cs {
		if c.Kind.IsLoss() {
			res = append(res, c)
		}
	}
	return res
}
