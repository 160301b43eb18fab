// Package logger builds *slog.Logger instances from functional options and
// provides attribute constructors that keep key names consistent across the
// module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("dispatchkit-demo"),
//	)
//	log.Info("behavior resolved", logger.BehaviorKey("paypal"))
//
// Components that accept an optional logger default to NewNop, which drops
// every record.
//
// Helper constructors such as Error and EventID return an empty slog.Attr for
// zero input, allowing calls like
//
//	log.Info("publish finished", logger.Error(err))
//
// without an additional nil check.
package logger
