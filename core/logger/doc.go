// Package logger builds the structured zap logger shared by every command.
//
// Level "debug" selects zap's development preset; any other level uses the
// production preset. Format "console" renders colored capital levels, anything
// else renders JSON.
//
// Each CLI invocation gets a run id so the lines one command emits can be
// correlated:
//
//	log, _ := logger.New(&cfg.Log)
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Recorded baked batch", zap.String("flavor", "Beef"))
package logger
