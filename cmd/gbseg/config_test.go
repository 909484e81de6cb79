package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbseg/gridgraph"
	"github.com/katalvlaran/gbseg/segment"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, segment.DefaultK, cfg.K)

	opts := cfg.Options()
	assert.Equal(t, gridgraph.Grid4{}, opts.Connectivity)
	assert.Equal(t, 1, opts.Workers)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "gbseg.yaml", "k: 300\nconnectivity: disc\nradius: 3\nmono: true\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 300.0, cfg.K)
	assert.True(t, cfg.Mono)
	assert.Equal(t, 40, cfg.Top, "absent key keeps its default")
	assert.Equal(t, gridgraph.Disc{Radius: 3}, cfg.Options().Connectivity)
}

func TestLoadConfig_Empty(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        "",
		"comment only": "# defaults only\n",
	} {
		cfg, err := LoadConfig(writeFile(t, "gbseg.yaml", body))
		require.NoError(t, err, name)
		assert.Equal(t, DefaultConfig(), cfg, name)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "kk: 1\n"))
	assert.Error(t, err, "unknown key")

	_, err = LoadConfig(writeFile(t, "bad.yaml", "k: [1, 2]\n"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero k", func(c *Config) { c.K = 0 }},
		{"negative k", func(c *Config) { c.K = -1 }},
		{"unknown connectivity", func(c *Config) { c.Connectivity = "hex" }},
		{"disc radius", func(c *Config) { c.Connectivity, c.Radius = "disc", 0 }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"top", func(c *Config) { c.Top = -1 }},
		{"progress", func(c *Config) { c.Progress = -5 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	f := &segmentFlags{
		cfg:    DefaultConfig(),
		config: writeFile(t, "gbseg.yaml", "k: 300\ntop: 5\n"),
	}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64Var(&f.cfg.K, "k", f.cfg.K, "")
	fs.IntVar(&f.cfg.Top, "top", f.cfg.Top, "")
	require.NoError(t, fs.Parse([]string{"--k", "9"}))

	cfg, err := resolveConfig(fs, f)
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.K, "explicit flag wins")
	assert.Equal(t, 5, cfg.Top, "file value kept when flag unset")
	assert.Equal(t, 2, cfg.Radius, "default kept when neither sets it")
}
