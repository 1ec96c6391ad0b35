package ir

import (
	"cmp"
	"sort"
	"strings"
)

// Compare returns an integer comparing two nodes positionally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object pairs are compared in the order given; use Equal for
// order-insensitive object equality.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType:
		return a.Int.Cmp(b.Int)
	case DecimalType:
		return strings.Compare(a.Decimal, b.Decimal)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports structural equality with object pair order
// insignificant. Duplicate keys are matched as multisets.
func Equal(a, b *Node) bool {
	return Compare(canon(a), canon(b)) == 0
}

func canon(y *Node) *Node {
	if y == nil {
		return nil
	}
	res := y.Clone()
	sortPairs(res)
	return res
}

func sortPairs(y *Node) {
	for _, v := range y.Values {
		sortPairs(v)
	}
	if y.Type != ObjectType {
		return
	}
	idx := make([]int, len(y.Fields))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if c := Compare(y.Fields[a], y.Fields[b]); c != 0 {
			return c < 0
		}
		return Compare(y.Values[a], y.Values[b]) < 0
	})
	fields := make([]*Node, len(idx))
	values := make([]*Node, len(idx))
	for i, j := range idx {
		fields[i] = y.Fields[j]
		values[i] = y.Values[j]
		fields[i].ParentIndex = i
		values[i].ParentIndex = i
	}
	y.Fields = fields
	y.Values = values
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Decimal < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case DecimalType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
