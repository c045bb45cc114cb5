package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidTarget is returned when Load receives something other than a struct pointer.
var ErrInvalidTarget = errors.New("config: target must be a non-nil pointer to struct")

var (
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first successful load of
// each struct type is cached and copied into later targets of that type.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrInvalidTarget
	}
	typ := reflect.TypeOf(*cfg)
	if typ == nil || typ.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	loadDotenv()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ.Name(), err)
	}
	cache[typ] = loaded
	*cfg = loaded
	return nil
}

// MustLoad is Load that panics on failure. Intended for program start-up.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops every cached configuration. Tests use it between cases.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

// loadDotenv reads .env from the working directory once. A missing file is fine.
func loadDotenv() {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
}
