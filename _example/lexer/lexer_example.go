package main

import (
	"fmt"

	"github.com/xiam/lisp/lexer"
)

func main() {
	input := `
		(def! make-adder
			(lambda (x) (lambda (y) (+ x y))))
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		fmt.Printf("token[%d] -> %q\n", i, tok)
	}
}
