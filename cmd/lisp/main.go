package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lisp"
)

const (
	prompt      = "lisp> "
	historyFile = ".lisp_history"
)

var (
	flagTrace   = flag.Bool("trace", false, "log evaluation at debug level")
	flagLogFile = flag.String("log-file", "", "also write JSON logs to this file")
	flagHistory = flag.String("history", "", "history file (default ~/"+historyFile+")")
	flagEval    = flag.String("e", "", "evaluate expression and exit")
)

func main() {
	flag.Parse()

	logger, closeLog, err := newLogger(os.Stderr, *flagLogFile, *flagTrace)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()
	lisp.SetLogger(logger)

	env := lisp.DefaultEnv()

	if *flagEval != "" {
		if err := evalPrint(os.Stdout, env, *flagEval); err != nil {
			fmt.Fprintln(os.Stderr, err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	repl(env, historyPath(*flagHistory))
}

func historyPath(path string) string {
	if path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func repl(env *lisp.Env, histPath string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			if quit := command(os.Stdout, env, line); quit {
				return
			}
			continue
		}

		if err := evalPrint(os.Stdout, env, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// command runs a REPL command and reports whether the loop must end.
func command(w io.Writer, env *lisp.Env, line string) bool {
	switch strings.ToLower(line) {
	case ":quit", ":q":
		return true
	case ":env":
		for _, name := range env.Names() {
			value, _ := env.Lookup(name)
			fmt.Fprintf(w, "%s\t%v\n", name, value)
		}
	default:
		fmt.Fprintln(w, "unknown command. Type :quit to exit.")
	}
	return false
}

func evalPrint(w io.Writer, env *lisp.Env, line string) error {
	value, err := lisp.EvaluateAll(line, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, value)
	return nil
}
