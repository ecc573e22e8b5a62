package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of n that is stable within a process. Equal nodes
// hash alike, except numbers stored as different kinds (1 and 1.0).
// Object field order matters.
func (n *Node) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashInto(&h)
	return h.Sum64()
}

func (n *Node) hashInto(h *maphash.Hash) {
	var b [8]byte
	word := func(u uint64) {
		binary.LittleEndian.PutUint64(b[:], u)
		h.Write(b[:])
	}
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		switch {
		case n.Int64 != nil:
			h.WriteByte('i')
			word(uint64(*n.Int64))
		case n.Float64 != nil:
			h.WriteByte('f')
			word(math.Float64bits(*n.Float64))
		default:
			h.WriteString(n.Number)
		}
	case StringType:
		word(uint64(len(n.String)))
		h.WriteString(n.String)
	case ArrayType, ObjectType:
		word(uint64(len(n.Values)))
		for i, v := range n.Values {
			if n.Type == ObjectType {
				n.Fields[i].hashInto(h)
			}
			v.hashInto(h)
		}
	}
}
