package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SEEDLING_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty stays empty", path: "", want: ""},
		{name: "bare tilde", path: "~", want: home},
		{name: "tilde prefix", path: "~/db/seedling.db", want: filepath.Join(home, "db", "seedling.db")},
		{name: "env var", path: "$SEEDLING_TEST_DIR/seedling.db", want: "/var/data/seedling.db"},
		{name: "plain path untouched", path: "/tmp/seedling.db", want: "/tmp/seedling.db"},
		{name: "tilde mid-path untouched", path: "/tmp/~backup", want: "/tmp/~backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	path := DefaultDatabasePath()
	assert.True(t, filepath.IsAbs(path) || path == "seedling.db")
	assert.Equal(t, "seedling.db", filepath.Base(path))
}
