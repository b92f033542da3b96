package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lavaworld/config"
	"github.com/katalvlaran/lavaworld/generator"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, generator.DefaultSeed, cfg.Generator.Seed)
	assert.Equal(t, generator.DefaultIslands, cfg.Generator.Islands)
	assert.Equal(t, generator.DefaultBounds, cfg.Generator.Bounds)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("LAVAWORLD_LOG_LEVEL", "debug")
	t.Setenv("LAVAWORLD_LOG_ENCODING", "console")
	t.Setenv("LAVAWORLD_GENERATOR_SEED", "1234")
	t.Setenv("LAVAWORLD_GENERATOR_MAX_SIDE", "3")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, int64(1234), cfg.Generator.Seed)
	assert.Equal(t, 3, cfg.Generator.MaxSide)

	lggr, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, lggr)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lavaworld.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "warn"

[generator]
islands = 500
queries = 42
`), 0o600))
	t.Setenv("LAVAWORLD_GENERATOR_QUERIES", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 500, cfg.Generator.Islands)
	assert.Equal(t, 7, cfg.Generator.Queries, "env overrides file")
	assert.Equal(t, "json", cfg.Log.Encoding, "defaults fill the gaps")
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel="), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad level", map[string]string{"LAVAWORLD_LOG_LEVEL": "loud"}},
		{"bad encoding", map[string]string{"LAVAWORLD_LOG_ENCODING": "xml"}},
		{"negative islands", map[string]string{"LAVAWORLD_GENERATOR_ISLANDS": "-1"}},
		{"zero bounds", map[string]string{"LAVAWORLD_GENERATOR_BOUNDS": "0"}},
		{"huge bounds", map[string]string{"LAVAWORLD_GENERATOR_BOUNDS": "9223372036854775807"}},
		{"huge max side", map[string]string{"LAVAWORLD_GENERATOR_MAX_SIDE": "2147483648"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.LoadEnv()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadLenient(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		cfg, warnings, err := config.LoadLenient("")
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("bad log settings reset", func(t *testing.T) {
		t.Setenv("LAVAWORLD_LOG_LEVEL", "verbose")
		t.Setenv("LAVAWORLD_LOG_ENCODING", "xml")
		t.Setenv("LAVAWORLD_GENERATOR_QUERIES", "3")

		cfg, warnings, err := config.LoadLenient("")
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], `log.level "verbose"`)
		assert.Equal(t, config.LogConfig{Level: "info", Encoding: "json"}, cfg.Log)
		assert.Equal(t, 3, cfg.Generator.Queries, "generator section kept")
	})

	t.Run("undecodable env", func(t *testing.T) {
		t.Setenv("LAVAWORLD_GENERATOR_SEED", "soon")

		cfg, warnings, err := config.LoadLenient("")
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "config ignored")
		assert.Equal(t, generator.DefaultSeed, cfg.Generator.Seed)
	})

	t.Run("generator left to its consumer", func(t *testing.T) {
		t.Setenv("LAVAWORLD_GENERATOR_BOUNDS", "0")

		cfg, warnings, err := config.LoadLenient("")
		require.NoError(t, err)
		assert.Empty(t, warnings)
		require.ErrorIs(t, cfg.Generator.Validate(), config.ErrInvalidConfig)
	})

	t.Run("unreadable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[log\nlevel="), 0o600))

		_, _, err := config.LoadLenient(path)
		require.Error(t, err)
	})
}
