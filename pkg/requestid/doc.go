// Package requestid tags every HTTP request with an identifier.
//
// Middleware keeps a valid incoming X-Request-ID header (letters, digits,
// '-' and '_', at most 128 bytes) or generates a UUIDv7, writes it back in
// the response and stores it in the request context:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with the request context carries request_id.
package requestid
