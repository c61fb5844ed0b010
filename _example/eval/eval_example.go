package main

import (
	"fmt"
	"log"

	"github.com/xiam/lisp"
)

func main() {
	env := lisp.DefaultEnv()

	lines := []string{
		`(def! make-adder (lambda (x) (lambda (y) (+ x y))))`,
		`(def! add3 (make-adder 3))`,
		`(add3 4)`,
		`(if (> (add3 1) pi) (quote bigger) (quote smaller))`,
	}

	for _, line := range lines {
		value, err := lisp.EvaluateSource(line, env)
		if err != nil {
			log.Fatal("lisp.EvaluateSource:", err)
		}
		fmt.Printf("%s\n=> %v\n", line, value)
	}
}
