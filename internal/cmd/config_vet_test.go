package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/renderings/internal/testutil"
)

func TestNewConfigVetCmd(t *testing.T) {
	cmd := NewConfigVetCmd()

	assert.Equal(t, "vet", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestConfigVet(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		_, err := executeRoot(t, "config", "vet")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration file not found")
		assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
	})

	t.Run("config written by init is valid", func(t *testing.T) {
		home := t.TempDir()
		testutil.SetHome(t, home)

		_, err := executeRootInHome(t, "config", "init")
		require.NoError(t, err)

		_, err = executeRootInHome(t, "config", "vet")
		assert.NoError(t, err)
	})

	t.Run("schema violation", func(t *testing.T) {
		home := t.TempDir()
		testutil.SetHome(t, home)
		path := filepath.Join(home, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("environment: \"not valid\"\n"), 0o600))

		_, err := executeRootInHome(t, "config", "vet", "--config", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment")
		assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
	})
}
