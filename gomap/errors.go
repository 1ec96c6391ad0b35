package gomap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/laxfmt/laxjson/ir"
)

var ErrConv = errors.New("gomap conversion error")

// ConvError reports a Go value or node that cannot be converted.
type ConvError struct {
	GoType reflect.Type
	Node   *ir.Node
	Msg    string
}

func (e *ConvError) Error() string {
	switch {
	case e.GoType != nil && e.Node != nil:
		return fmt.Sprintf("%v: %s node vs %s: %s", ErrConv, e.Node.Type, e.GoType, e.Msg)
	case e.GoType != nil:
		return fmt.Sprintf("%v: %s: %s", ErrConv, e.GoType, e.Msg)
	case e.Node != nil:
		return fmt.Sprintf("%v: %s node at %s: %s", ErrConv, e.Node.Type, e.Node.Path(), e.Msg)
	default:
		return fmt.Sprintf("%v: %s", ErrConv, e.Msg)
	}
}

func (e *ConvError) Unwrap() error {
	return ErrConv
}
