// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors so that log keys stay consistent across
// packages.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("formcheck")),
//	)
//	log.Debug("rule failed", logger.Form("signup"), logger.Field("age"), logger.RuleKind("byte"))
//
// Libraries that accept a logger default to Discard so they stay silent
// unless the caller wires one in.
package logger
