// Package logger builds *slog.Logger values for rulechain binaries.
//
// New takes functional options selecting the output format (json, text, or
// pretty via github.com/lmittmann/tint), the minimum level, static attributes,
// and ContextExtractor callbacks that add request-scoped attributes such as a
// request id on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rulechain"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "request validated", logger.Schema("signup"), logger.Fields(4))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and RequestID return an empty Attr for empty input, which slog drops,
// so callers need no nil checks.
package logger
