package ir

import (
	"fmt"
	"strings"
)

// Path returns a JSONPath-style path from the root to y, for
// diagnostics (e.g. "$.keys.k2[0]").
func (y *Node) Path() string {
	var parts []string
	n := y
	for n.Parent != nil {
		p := n.Parent
		switch p.Type {
		case ObjectType:
			parts = append(parts, "."+n.ParentField)
		case ArrayType:
			parts = append(parts, fmt.Sprintf("[%d]", n.ParentIndex))
		}
		n = p
	}
	var sb strings.Builder
	sb.WriteString("$")
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}
