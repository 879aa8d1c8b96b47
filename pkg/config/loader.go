package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	store = struct {
		mu     sync.Mutex
		values map[string]any
	}{values: make(map[string]any)}

	defaultEnv sync.Once
)

// Load parses environment variables into cfg based on its `env` field tags.
// The default .env file is read once per process before the first parse; a
// missing file is fine. Each concrete type is parsed once and cached, so
// repeated Load calls for the same type return the same settings even if the
// environment changed in between.
//
// Example:
//
//	type Settings struct {
//		Locale string `env:"FORMKIT_LOCALE" envDefault:"en"`
//		Dir    string `env:"FORMKIT_CATALOG_DIR"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil { ... }
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	defaultEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	store.mu.Lock()
	defer store.mu.Unlock()

	if cached, ok := store.values[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	store.values[key] = *cfg
	return nil
}

// MustLoad works like Load but panics on failure, for settings the process
// cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given dotenv files into the process environment before
// any Load call. Later files take precedence over earlier ones and over
// variables already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again. Intended for tests.
func ResetCache() {
	store.mu.Lock()
	defer store.mu.Unlock()
	clear(store.values)
}

func typeKey[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
