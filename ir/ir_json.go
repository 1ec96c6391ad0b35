package ir

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// The IR itself is representable in plain JSON, so node trees can be
// stored or exchanged in contexts without laxjson support. Int values
// travel as strings to avoid precision loss.

type irBase struct {
	Type    Type    `json:"type"`
	Fields  []*Node `json:"fields,omitempty"`
	Values  []*Node `json:"values,omitempty"`
	Int     string  `json:"int,omitempty"`
	Decimal string  `json:"decimal,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Decimal: y.Decimal,
	}
	if y.Int != nil {
		base.Int = y.Int.String()
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.String = tmp.String
	y.Bool = tmp.Bool
	y.Decimal = tmp.Decimal
	y.Int = nil
	if tmp.Int != "" {
		i, ok := new(big.Int).SetString(tmp.Int, 10)
		if !ok {
			return fmt.Errorf("bad int payload %q", tmp.Int)
		}
		y.Int = i
	}

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields, %d values",
				len(y.Fields), len(y.Values))
		}
		for i, f := range y.Fields {
			f.Parent = y
			f.ParentIndex = i
			f.ParentField = f.String
			y.Values[i].Parent = y
			y.Values[i].ParentIndex = i
			y.Values[i].ParentField = f.String
		}
	case ArrayType:
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
		}
	}
	return nil
}
