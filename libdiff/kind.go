package libdiff

// Kind classifies a difference between two documents.
type Kind int

const (
	// Insert is a field or element present only in the new document.
	Insert Kind = iota
	// Delete is a field or element present only in the old document.
	Delete
	// Replace is a value that changed.
	Replace
	// Literal is a number written differently with the same value, such
	// as 2.50 and 2.5.
	Literal
	// Reorder is an object whose fields appear in a different order.
	Reorder
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	case Literal:
		return "#"
	case Reorder:
		return "^"
	}
	return "?"
}

// IsLoss reports whether a difference of kind k changes document content.
// Field order and number spelling do not.
func (k Kind) IsLoss() bool {
	switch k {
	case Literal, Reorder:
		return false
	}
	return true
}
