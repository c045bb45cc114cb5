// Package config loads environment variables into typed structs.
//
// A .env file in the working directory is read once on first use
// (joho/godotenv) and struct fields are filled by caarlos0/env using
// `env` and `envDefault` tags. Each struct type is parsed once and cached:
//
//	type SiteConfig struct {
//		DefaultLang string   `env:"SITE_DEFAULT_LANG" envDefault:"sw"`
//		Languages   []string `env:"SITE_LANGUAGES" envDefault:"sw,en"`
//	}
//
//	var cfg SiteConfig
//	config.MustLoad(&cfg)
//
// Reset clears the cache; it exists for tests that vary the environment.
package config
