package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	require.NoError(t, err)
	require.Equal(t, SourceEmbedded, source)
	require.Equal(t, DefaultGameConfig(), cfg)
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	require.Equal(t, DefaultGameConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "mine.yaml")
	writeFile(t, path, "rules:\n  win_threshold: 256\n")

	cfg, source, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, source)
	require.Equal(t, 256, cfg.Rules.WinThreshold)
	// Unset fields keep their defaults.
	require.Equal(t, 4, cfg.Board.Rows)
	require.InDelta(t, 0.10, cfg.Rules.Spawn4Probability, 1e-9)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	_, _, err := Load(filepath.Join(work, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "rules: [not, a, map")
	_, _, err = Load(bad)
	require.Error(t, err)

	wrongSize := filepath.Join(work, "size.yaml")
	writeFile(t, wrongSize, "board:\n  rows: 5\n  cols: 5\n")
	_, _, err = Load(wrongSize)
	require.ErrorContains(t, err, "board must be 4x4")
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	local := filepath.Join(work, "configs", "t2048.yaml")
	writeFile(t, local, "rules:\n  win_threshold: 512\n")

	cfg, source, err := Load("")
	require.NoError(t, err)
	require.Equal(t, localConfigPath, source)
	require.Equal(t, 512, cfg.Rules.WinThreshold)

	user := filepath.Join(home, ".t2048", "config.yaml")
	writeFile(t, user, "rules:\n  win_threshold: 1024\n")

	cfg, source, err = Load("")
	require.NoError(t, err)
	require.Equal(t, user, source)
	require.Equal(t, 1024, cfg.Rules.WinThreshold)
}

func TestLoadSkipsInvalidImplicitFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "rules:\n  win_threshold: 1000\n")

	cfg, source, err := Load("")
	require.NoError(t, err)
	require.Equal(t, SourceEmbedded, source)
	require.Equal(t, 2048, cfg.Rules.WinThreshold)
}

func TestValidate(t *testing.T) {
	cfg := DefaultGameConfig()
	require.NoError(t, cfg.Validate())

	cfg.Rules.Spawn4Probability = 2
	require.Error(t, cfg.Validate())

	cfg = DefaultGameConfig()
	cfg.Animation.SlideTicks = -1
	require.Error(t, cfg.Validate())
}
