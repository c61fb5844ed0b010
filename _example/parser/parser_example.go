package main

import (
	"log"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func main() {
	input := `(def! fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
