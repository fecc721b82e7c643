package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tical/engine"
)

func TestREPLSession(t *testing.T) {
	in := strings.NewReader("2+3*4\n5/0\nquit\n")
	var out bytes.Buffer

	require.NoError(t, runREPL(in, &out))

	assert.Contains(t, out.String(), "14")
	assert.Contains(t, out.String(), "ERROR: DIVIDE BY 0")
}

func TestREPLEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runREPL(strings.NewReader(""), &out))
}

func TestReplCommands(t *testing.T) {
	eng := engine.New(engine.Options{})
	var out bytes.Buffer

	assert.True(t, runReplCommand(eng, &out, "quit"))
	assert.True(t, runReplCommand(eng, &out, "exit"))

	out.Reset()
	assert.False(t, runReplCommand(eng, &out, "history"))
	assert.Contains(t, out.String(), "history is empty")

	runReplCommand(eng, &out, "1+1")
	out.Reset()
	runReplCommand(eng, &out, "history")
	assert.Contains(t, out.String(), "1+1 = 2")

	out.Reset()
	runReplCommand(eng, &out, "clear")
	assert.Contains(t, out.String(), "history cleared")
	assert.Empty(t, eng.History())

	runReplCommand(eng, &out, "mode rad")
	assert.Equal(t, engine.Radians, eng.Env().Unit())
	runReplCommand(eng, &out, "mode deg")
	assert.Equal(t, engine.Degrees, eng.Env().Unit())

	out.Reset()
	runReplCommand(eng, &out, "mode gon")
	assert.Contains(t, out.String(), "usage: mode deg|rad")

	eng.StoreMemory(42)
	out.Reset()
	runReplCommand(eng, &out, "mem")
	assert.Contains(t, out.String(), "42")
}
