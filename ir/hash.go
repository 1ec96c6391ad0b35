package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal:
// object pair order does not affect the result.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		h.Write(n.Int.Bytes())
		if n.Int.Sign() < 0 {
			h.WriteByte('-')
		}
	case DecimalType:
		h.WriteString(n.Decimal)
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Values)))
		h.Write(b[:])
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case ObjectType:
		// combine pair hashes commutatively so key order is irrelevant
		var sum uint64
		for i := range n.Fields {
			var ph maphash.Hash
			ph.SetSeed(hashSeed)
			n.Fields[i].hashTo(&ph)
			n.Values[i].hashTo(&ph)
			sum += ph.Sum64()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
}
