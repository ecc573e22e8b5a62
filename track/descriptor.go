package track

// Descriptor holds the tracked state of a single property.
type Descriptor struct {
	original    any
	modified    any
	hasModified bool
	additional  bool
}

// Value returns the effective value: the modified value if any, else the
// original.
func (d *Descriptor) Value() any {
	if d.hasModified {
		return d.modified
	}
	return d.original
}

func (d *Descriptor) Original() any {
	return d.original
}

func (d *Descriptor) IsModified() bool {
	return d.hasModified && !Equal(d.modified, d.original)
}

func (d *Descriptor) IsAdditional() bool {
	return d.additional
}
