package gomap

import (
	"math"
	"math/big"
	"reflect"
	"slices"

	"github.com/laxfmt/laxjson/ir"
	"github.com/laxfmt/laxjson/token"
)

var bigIntType = reflect.TypeOf(big.Int{})

// From converts a Go value into an ir tree.
func From(v any) (*ir.Node, error) {
	return fromValue(reflect.ValueOf(v))
}

func fromValue(rv reflect.Value) (*ir.Node, error) {
	if !rv.IsValid() {
		return ir.Null(), nil
	}
	if rv.Type() == bigIntType {
		i := rv.Interface().(big.Int)
		return ir.FromBigInt(&i), nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return fromValue(rv.Elem())
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromBigInt(new(big.Int).SetUint64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ConvError{GoType: rv.Type(), Msg: "not a finite number"}
		}
		return ir.FromDecimal(token.DecimalFromFloat(f)), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(string(rv.Bytes())), nil
		}
		vals := make([]*ir.Node, rv.Len())
		for i := range vals {
			n, err := fromValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case reflect.Map:
		return fromMap(rv)
	case reflect.Struct:
		return fromStruct(rv)
	default:
		return nil, &ConvError{GoType: rv.Type(), Msg: "unsupported kind"}
	}
}

func fromMap(rv reflect.Value) (*ir.Node, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, &ConvError{GoType: rv.Type(), Msg: "map keys must be strings"}
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, k := range keys {
		n, err := fromValue(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(k), Val: n})
	}
	return ir.FromKeyVals(kvs), nil
}

func fromStruct(rv reflect.Value) (*ir.Node, error) {
	fis := structFields(rv.Type())
	kvs := make([]ir.KeyVal, 0, len(fis))
	for _, fi := range fis {
		fv := rv.Field(fi.Index)
		if fi.OmitEmpty && fv.IsZero() {
			continue
		}
		n, err := fromValue(fv)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(fi.Name), Val: n})
	}
	return ir.FromKeyVals(kvs), nil
}
