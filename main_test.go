package main

import (
	"bytes"
	"testing"

	"github.com/meghashyamc/vectorcalc/calculator"
	"github.com/meghashyamc/vectorcalc/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Operations(t *testing.T) {
	out, err := runCLI(t, "dot", "1,2,3", "4,5,6")
	require.NoError(t, err)
	assert.Equal(t, "32.000\n", out)

	out, err = runCLI(t, "cross", "1,0,0", "0,1,0")
	require.NoError(t, err)
	assert.Equal(t, "Vector: [0.000, 0.000, 1.000]\n", out)

	out, err = runCLI(t, "plus", "[-1,2]", "[3,-4]")
	require.NoError(t, err)
	assert.Equal(t, "Vector: [2.000, -2.000]\n", out)
}

func TestCLI_Errors(t *testing.T) {
	_, err := runCLI(t, "normalize", "0,0")
	assert.ErrorIs(t, err, geometry.ErrDomain)

	_, err = runCLI(t, "plus", "1,2")
	assert.ErrorIs(t, err, calculator.ErrArgCount)
}

func TestCLI_RegistersEveryOperation(t *testing.T) {
	cmd := newRootCmd()
	for _, op := range calculator.Operations() {
		found, _, err := cmd.Find([]string{op})
		require.NoError(t, err, op)
		assert.Equal(t, op, found.Name())
	}
}
