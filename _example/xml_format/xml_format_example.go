package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func printTree(value *ast.Value) {
	printIndentedTree(value, 0)
}

func printIndentedTree(value *ast.Value, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if !value.IsAtom() {
		fmt.Printf("%s<%s>\n", indent, value.Type())
		children := value.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, value.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, value.Type(), value, value.Type())
}

func main() {
	input := `(do (def! r 2) (list pi (* r r) #t #f nil))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
