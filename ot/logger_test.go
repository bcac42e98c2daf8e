package ot_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogApplyReportsSuccessAndFailure(t *testing.T) {
	var okBuf, errBuf bytes.Buffer
	okLogger := log.New(&okBuf, "", 0)
	errLogger := log.New(&errBuf, "", 0)

	add := ot.Math{Op: ot.Add, Operand: V.Number(1)}
	apply := ot.LogApply(add, "add", errLogger, okLogger)

	out, err := apply(V.Number(1))
	require.NoError(t, err)
	assert.Equal(t, V.Number(2), out)
	assert.Contains(t, okBuf.String(), "add")
	assert.Empty(t, errBuf.String())

	_, err = apply(V.NewStr("not a number"))
	require.Error(t, err)
	assert.Contains(t, errBuf.String(), "add")
}
