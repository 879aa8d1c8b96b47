// Package logger provides structured logging setup on top of log/slog.
//
// It creates configured slog.Logger instances used across the kit for
// subscriber panic reports, missing-translation warnings, and dependent
// revalidation failures. The zero-configuration default writes text to
// stderr at info level:
//
//	log := logger.New()
//	log.Info("form ready", "fields", 3)
//
// Production setups typically switch to JSON and attach static attributes:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithAttr(slog.String("screen", "signup")),
//	)
//
// Discard returns a logger that drops all records, which the kit's packages
// use as their default when none is supplied.
package logger
