// Package log provides the structured logger used by tmplkit commands.
//
// Entries have a level, a message, persistent context fields, an optional
// error and an optional duration, and are written in JSON, plain text or
// colored console form. Structured errors from the error package are logged
// with their code, severity and details.
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatConsole, Name: "checker"})
//	logger = logger.WithCorrelationID(runID)
//	logger.Info("running step", log.Field("step", "mypy"))
//
//	timer := logger.StartTimer("step mypy")
//	defer timer.Stop()
package log
