package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/go-iiif/ir"
)

// DiffString compares strings. When less than half of the text changed the
// change carries an inline Detail.
func DiffString(from, to *ir.Node) []Change {
	if from.String == to.String {
		return nil
	}
	c := makeChange(Replace, from, to)
	dmp := diffpatch.New()
	multiLine := strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from.String, to.String, multiLine))
	size := 0
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			size += len(d.Text)
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			size += len(d.Text)
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	if size <= min(len(from.String), len(to.String))/2 {
		c.Detail = b.String()
	}
	return []Change{c}
}

// reverseDetail swaps the insertions and deletions of a Detail.
func reverseDetail(s string) string {
	r := strings.NewReplacer("{+", "[-", "+}", "-]", "[-", "{+", "-]", "+}")
	return r.Replace(s)
}
