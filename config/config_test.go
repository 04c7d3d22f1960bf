package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/taufulou/bazi-app-sub000/compat"
	"github.com/taufulou/bazi-app-sub000/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel:        zapcore.InfoLevel,
		CacheSize:       256,
		DefaultScenario: compat.Romance,
		Output:          config.OutputJSON,
	}, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BAZI_LOG_LEVEL", "debug")
	t.Setenv("BAZI_CACHE_SIZE", "0")
	t.Setenv("BAZI_DEFAULT_SCENARIO", "Business")
	t.Setenv("BAZI_OUTPUT", "YAML")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, compat.Business, cfg.DefaultScenario)
	assert.Equal(t, config.OutputYAML, cfg.Output)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		key, value string
		want       string
	}{
		{"BAZI_DEFAULT_SCENARIO", "dating", "invalid scenario"},
		{"BAZI_OUTPUT", "xml", "invalid value"},
		{"BAZI_CACHE_SIZE", "lots", "parse env:"},
		{"BAZI_LOG_LEVEL", "loud", "parse env:"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoad_NegativeCacheSize(t *testing.T) {
	t.Setenv("BAZI_CACHE_SIZE", "-1")
	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseEnv_Prefix(t *testing.T) {
	var cfg struct {
		N int `env:"BAZI_TEST_N" envDefault:"7"`
	}
	require.NoError(t, config.ParseEnv(&cfg))
	assert.Equal(t, 7, cfg.N)

	t.Setenv("BAZI_TEST_N", "x")
	err := config.ParseEnv(&cfg)
	assert.ErrorContains(t, err, "parse env:")
}
