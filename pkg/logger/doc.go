// Package logger builds the structured *slog.Logger used across qrdecode.
//
// A single factory, New, assembles a slog handler from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level. ParseLevel and ParseFormat validate
//     names read from configuration without panicking.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from the
//     context of each record, which is how the decode run id reaches every line.
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment apply
//     per-environment presets.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it with
// LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// before delegating. Attribute helpers (Error, RunID, Kind, InputSize, ...)
// live in attr.go and keep key names consistent.
//
// Loggers are passed explicitly to the packages that log; none of them read
// the process-wide default. Discard gives a silent logger for library defaults.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "qrdecode"),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "output written", logger.Path(out), logger.Kind(kind))
//
// The default output is stderr so command output on stdout stays clean.
package logger
