package cmd

import (
	"bytes"
	"testing"

	"github.com/opmodel/renderings/internal/testutil"
)

// executeRoot runs the root command with args in an isolated home
// directory and returns what the command wrote to its output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	testutil.SetHome(t, home)

	return executeRootInHome(t, args...)
}

// executeRootInHome runs the root command without touching HOME.
func executeRootInHome(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--timestamps=false"))

	err := root.Execute()
	return out.String(), err
}
