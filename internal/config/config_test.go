package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDungeon_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadDungeon(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDungeon(), cfg)
	assert.Equal(t, "dungeons", cfg.LevelsDir)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadDungeon_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	data := `
log_level: debug
levels_dir: /srv/levels
strict_bounds: true
watch: true
metrics_addr: ":9090"
database:
  enabled: true
  host: db
  dbname: levels
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadDungeon(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/srv/levels", cfg.LevelsDir)
	assert.True(t, cfg.StrictBounds)
	assert.True(t, cfg.Watch)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://dungeon:dungeon@db:5432/levels?sslmode=disable", cfg.Database.DSN())
}

func TestLoadDungeon_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("watch: [oops"), 0o644))
	_, err := LoadDungeon(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte(`levels_dir: ""`), 0o644))
	_, err = LoadDungeon(empty)
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Errorf("ResolvePath(\"\") = %q, want %q", got, DefaultPath)
	}

	t.Setenv(EnvPath, "/etc/dungeon.yaml")
	if got := ResolvePath(""); got != "/etc/dungeon.yaml" {
		t.Errorf("ResolvePath with env = %q", got)
	}
	if got := ResolvePath("local.yaml"); got != "local.yaml" {
		t.Errorf("ResolvePath(flag) = %q, want local.yaml", got)
	}
}
