// Package config loads typed settings from environment variables, with
// optional dotenv preloading.
//
// Settings are plain structs tagged for github.com/caarlos0/env; Load parses
// the environment into them and caches the result per concrete type, so
// every part of an application sees the same settings regardless of call
// order. The default .env file, when present, is read once before the first
// parse.
//
//	type Settings struct {
//		Locale string `env:"FORMKIT_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// Tests that need a clean slate call ResetCache between cases.
package config
