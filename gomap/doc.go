// Package gomap converts between Go values and ir node trees by
// reflection.
//
// Field visibility follows encoding/json: only exported struct fields
// are processed, and a `laxjson:"name"` tag renames a field, with
// "-" omitting it and ",omitempty" dropping zero values.
//
//	type Person struct {
//	    Name string `laxjson:"name"`
//	    Age  int    `laxjson:"age"`
//	}
//	node, err := gomap.From(Person{Name: "alice", Age: 30})
//
//	var p Person
//	err = gomap.To(node, &p)
//
// Numbers map onto the two ir numeric variants: Go integers and
// *big.Int become IntType, floats become DecimalType text (see
// token.DecimalFromFloat). Byte slices become StringType, matching
// the opaque byte semantics of strings.
package gomap
