package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	p := Load(t.TempDir())
	assert.Equal(t, Prefs{}, p)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	root := t.TempDir()
	want := Prefs{CaseSensitive: true, Regex: true, LeftWidth: 32}

	require.NoError(t, Save(root, want))
	assert.Equal(t, want, Load(root))
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".replacium")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefs.yaml"), []byte("{not yaml"), 0o644))

	assert.Equal(t, Prefs{}, Load(root))
}
