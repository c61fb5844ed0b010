package main

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

func newLogger(w io.Writer, logFile string, trace bool) (*slog.Logger, func(), error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if trace {
		level.Set(slog.LevelDebug)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closeFn = func() {
			_ = f.Close()
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
