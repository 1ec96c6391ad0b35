package gomap

import (
	"reflect"
	"strings"
)

type fieldInfo struct {
	Name      string
	Index     int
	OmitEmpty bool
}

// structFields lists the exported, non-omitted fields of t in
// declaration order, applying `laxjson` tag renames.
func structFields(t reflect.Type) []fieldInfo {
	res := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fi := fieldInfo{Name: sf.Name, Index: i}
		if tag, ok := sf.Tag.Lookup("laxjson"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" && len(parts) == 1 {
				continue
			}
			if parts[0] != "" {
				fi.Name = parts[0]
			}
			for _, p := range parts[1:] {
				if p == "omitempty" {
					fi.OmitEmpty = true
				}
			}
		}
		res = append(res, fi)
	}
	return res
}
