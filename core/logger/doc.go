// Package logger provides structured logging helpers built on log/slog.
//
// New builds a *slog.Logger from functional options; the development preset
// writes colourised console output through tint, the production preset
// writes JSON.
//
//	log := logger.New(logger.WithDevelopment("site"))
//	log.Info("dictionary loaded",
//		logger.Component("i18n"),
//		logger.Lang("sw"),
//		logger.Count("keys", 42),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops, so callers can write log.Warn("save failed", logger.Error(err))
// without nil checks.
package logger
