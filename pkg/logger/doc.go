// Package logger builds *slog.Logger instances for the registration services
// and CLI.
//
// New takes functional options selecting the output format, the minimum level
// and static attributes, and wraps the handler with a decorator that pulls
// request-scoped attributes (for example a request id) out of the
// context.Context on every call:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "garage-api"),
//	    logger.WithContextExtractors(httpserver.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "account created", logger.Email(email), logger.UserID(id))
//
// The attribute helpers in attr.go keep key names consistent across
// packages. Helpers that take an error or an id return an empty slog.Attr for
// nil input, so call sites do not need a nil check. Email masks the local part
// of the address so that raw addresses never reach the log stream.
package logger
