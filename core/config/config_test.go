package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherstationary/website/core/config"
)

type testConfig struct {
	DefaultLang string        `env:"TEST_SITE_DEFAULT_LANG" envDefault:"sw"`
	Languages   []string      `env:"TEST_SITE_LANGUAGES" envDefault:"sw,en"`
	Delay       time.Duration `env:"TEST_SITE_DELAY" envDefault:"2s"`
}

type requiredConfig struct {
	Token string `env:"TEST_SITE_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "sw", cfg.DefaultLang)
		assert.Equal(t, []string{"sw", "en"}, cfg.Languages)
		assert.Equal(t, 2*time.Second, cfg.Delay)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_SITE_DEFAULT_LANG", "en")
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.DefaultLang)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_SITE_DEFAULT_LANG", "en")
		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_SITE_DEFAULT_LANG", "sw")
		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "en", second.DefaultLang)
	})

	t.Run("reports missing required", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("rejects non-struct targets", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, config.Load(&s), config.ErrInvalidTarget)
		var nilCfg *testConfig
		assert.ErrorIs(t, config.Load(nilCfg), config.ErrInvalidTarget)
	})
}
