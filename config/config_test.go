package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SBuercklin/AdventOfCode23/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "aoc23.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, filepath.Join("inputs", "day07.txt"), cfg.InputPath(7))
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	p := write(t, "input_dir: /tmp/aoc\nlog_level: debug\n")
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/aoc", cfg.InputDir)
	assert.Equal(t, "day%02d.txt", cfg.InputPattern, "unset fields keep defaults")
	assert.Equal(t, filepath.Join("/tmp/aoc", "day12.txt"), cfg.InputPath(12))

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestLoadInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":  "input_dir: [unclosed\n",
		"bad level":  "log_level: loud\n",
		"no day verb": "input_pattern: input.txt\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}
