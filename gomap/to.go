package gomap

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/laxfmt/laxjson/ir"
)

// To assigns node onto the Go value pointed to by out.
func To(node *ir.Node, out any, opts ...Option) error {
	o := &convOpts{}
	for _, f := range opts {
		f(o)
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &ConvError{GoType: reflect.TypeOf(out), Node: node,
			Msg: "target must be a non-nil pointer"}
	}
	return toValue(node, rv.Elem(), o)
}

func toValue(node *ir.Node, dst reflect.Value, o *convOpts) error {
	if node == nil {
		return &ConvError{GoType: dst.Type(), Msg: "nil node"}
	}
	if dst.Kind() == reflect.Pointer {
		if node.Type == ir.NullType {
			dst.SetZero()
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return toValue(node, dst.Elem(), o)
	}
	if dst.Type() == bigIntType {
		if node.Type != ir.IntType {
			return mismatch(node, dst)
		}
		dst.Set(reflect.ValueOf(*new(big.Int).Set(node.Int)))
		return nil
	}
	if dst.Kind() == reflect.Interface && dst.NumMethod() == 0 {
		v, err := toAny(node, o)
		if err != nil {
			return err
		}
		if v == nil {
			dst.SetZero()
			return nil
		}
		dst.Set(reflect.ValueOf(v))
		return nil
	}

	switch node.Type {
	case ir.NullType:
		dst.SetZero()
		return nil
	case ir.BoolType:
		if dst.Kind() != reflect.Bool {
			return mismatch(node, dst)
		}
		dst.SetBool(node.Bool)
		return nil
	case ir.StringType:
		if dst.Kind() == reflect.String {
			dst.SetString(node.String)
			return nil
		}
		if dst.Kind() == reflect.Slice && dst.Type().Elem().Kind() == reflect.Uint8 {
			dst.SetBytes([]byte(node.String))
			return nil
		}
		return mismatch(node, dst)
	case ir.IntType:
		return toInt(node, dst)
	case ir.DecimalType:
		switch dst.Kind() {
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(node.Decimal, 64)
			if err != nil {
				return &ConvError{GoType: dst.Type(), Node: node, Msg: err.Error()}
			}
			if dst.OverflowFloat(f) {
				return &ConvError{GoType: dst.Type(), Node: node, Msg: "overflow"}
			}
			dst.SetFloat(f)
			return nil
		case reflect.String:
			dst.SetString(node.Decimal)
			return nil
		}
		return mismatch(node, dst)
	case ir.ArrayType:
		return toSeq(node, dst, o)
	case ir.ObjectType:
		return toObj(node, dst, o)
	}
	return mismatch(node, dst)
}

func toInt(node *ir.Node, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !node.Int.IsInt64() || dst.OverflowInt(node.Int.Int64()) {
			return &ConvError{GoType: dst.Type(), Node: node, Msg: "overflow"}
		}
		dst.SetInt(node.Int.Int64())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if !node.Int.IsUint64() || dst.OverflowUint(node.Int.Uint64()) {
			return &ConvError{GoType: dst.Type(), Node: node, Msg: "overflow"}
		}
		dst.SetUint(node.Int.Uint64())
		return nil
	case reflect.Float32, reflect.Float64:
		f, _ := new(big.Float).SetInt(node.Int).Float64()
		dst.SetFloat(f)
		return nil
	}
	return mismatch(node, dst)
}

func toSeq(node *ir.Node, dst reflect.Value, o *convOpts) error {
	switch dst.Kind() {
	case reflect.Slice:
		res := reflect.MakeSlice(dst.Type(), len(node.Values), len(node.Values))
		for i, v := range node.Values {
			if err := toValue(v, res.Index(i), o); err != nil {
				return err
			}
		}
		dst.Set(res)
		return nil
	case reflect.Array:
		if dst.Len() != len(node.Values) {
			return &ConvError{GoType: dst.Type(), Node: node, Msg: "array length mismatch"}
		}
		for i, v := range node.Values {
			if err := toValue(v, dst.Index(i), o); err != nil {
				return err
			}
		}
		return nil
	}
	return mismatch(node, dst)
}

func toObj(node *ir.Node, dst reflect.Value, o *convOpts) error {
	switch dst.Kind() {
	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return mismatch(node, dst)
		}
		res := reflect.MakeMapWithSize(dst.Type(), len(node.Fields))
		// later duplicate keys win
		for i, f := range node.Fields {
			ev := reflect.New(dst.Type().Elem()).Elem()
			if err := toValue(node.Values[i], ev, o); err != nil {
				return err
			}
			res.SetMapIndex(reflect.ValueOf(f.String).Convert(dst.Type().Key()), ev)
		}
		dst.Set(res)
		return nil
	case reflect.Struct:
		byName := map[string]fieldInfo{}
		for _, fi := range structFields(dst.Type()) {
			byName[fi.Name] = fi
		}
		for i, f := range node.Fields {
			fi, ok := byName[f.String]
			if !ok {
				continue
			}
			if err := toValue(node.Values[i], dst.Field(fi.Index), o); err != nil {
				return err
			}
		}
		return nil
	}
	return mismatch(node, dst)
}

func toAny(node *ir.Node, o *convOpts) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.IntType:
		if node.Int.IsInt64() {
			return node.Int.Int64(), nil
		}
		return new(big.Int).Set(node.Int), nil
	case ir.DecimalType:
		if o.exactDecimals {
			return node.Decimal, nil
		}
		f, err := strconv.ParseFloat(node.Decimal, 64)
		if err != nil {
			return nil, &ConvError{Node: node, Msg: err.Error()}
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			ev, err := toAny(v, o)
			if err != nil {
				return nil, err
			}
			res[i] = ev
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			ev, err := toAny(node.Values[i], o)
			if err != nil {
				return nil, err
			}
			res[f.String] = ev
		}
		return res, nil
	}
	return nil, &ConvError{Node: node, Msg: "unsupported node type"}
}

func mismatch(node *ir.Node, dst reflect.Value) error {
	return &ConvError{GoType: dst.Type(), Node: node, Msg: "type mismatch"}
}
