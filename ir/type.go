package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	IntType
	DecimalType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:  "Object",
		ArrayType:   "Array",
		StringType:  "String",
		IntType:     "Int",
		DecimalType: "Decimal",
		BoolType:    "Bool",
		NullType:    "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Int":     IntType,
		"Decimal": DecimalType,
		"String":  StringType,
		"Bool":    BoolType,
		"Object":  ObjectType,
		"Array":   ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		IntType,
		DecimalType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// IsNumber reports whether t is one of the two numeric variants.
func (t Type) IsNumber() bool {
	return t == IntType || t == DecimalType
}
