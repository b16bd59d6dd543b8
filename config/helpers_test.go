package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// relPath returns dir relative to the working directory, as LoadWithEnv joins search paths onto it.
func relPath(t *testing.T, dir string) string {
	t.Helper()
	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}
