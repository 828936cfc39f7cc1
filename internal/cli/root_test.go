package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "accessor-generator", cmd.Use)
	assert.Contains(t, cmd.Long, "binding manifest")
}

func TestCommandPresence(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand()

	for _, name := range []string{"check", "trace", "probe"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "check", "--format", "json", "testdata/demo.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "json"`)
}

func TestMissingManifest(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"check", "trace", "probe"} {
		_, _, err := execute(t, name, "testdata/missing.yaml")
		require.Error(t, err, name)
		assert.Equal(t, ExitCommandError, GetExitCode(err), name)
	}
}

func TestGetExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	cause := errors.New("cause")
	err := WrapExitError(ExitFailure, "wrapped", cause)
	assert.Equal(t, "wrapped: cause", err.Error())
	assert.ErrorIs(t, err, cause)
}
