package lisp

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	env := DefaultEnv()
	_, err := EvaluateAll(`(def! sq (lambda (n) (* n n))) (sq 3)`, env)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=def!")
	assert.Contains(t, out, "name=sq")
	assert.Contains(t, out, "msg=apply")
	assert.Contains(t, out, `args=(3)`)
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, logger)

	_, err := EvaluateSource(`(def! x 1)`, DefaultEnv())
	assert.NoError(t, err)
}

func TestDefSkipsRenderingWhenDebugDisabled(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer SetLogger(nil)

	env := DefaultEnv()
	_, err := EvaluateAll(`(def! xs (list 1 2 3)) (def! f (lambda (n) n)) (f xs)`, env)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}
