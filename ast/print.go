package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of a value tree
func Print(w io.Writer, v *Value) {
	printLevel(w, v, 0)
}

func printLevel(w io.Writer, v *Value, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(w, "%s<nil>\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, v.Type())
	switch v.Type() {

	case ValueTypeList:
		fmt.Fprintf(w, "[%d]\n", len(v.List()))
		list := v.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case ValueTypeClosure:
		fmt.Fprintf(w, ": %v\n", v)
		printLevel(w, v.Closure().Body, level+1)

	default:
		fmt.Fprintf(w, ": %v\n", v)
	}
}

// Encode transforms a value into its text representation. Trees produced by
// the parser encode into text that parses back into an equal tree.
func Encode(v *Value) []byte {
	if v == nil {
		return []byte("nil")
	}
	return []byte(v.String())
}
