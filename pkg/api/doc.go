// Package api exposes the validator over HTTP.
//
// Routes:
//
//	POST   /v1/validate                 {"schema": {...}, "request": {...}}
//	GET    /v1/rules                    registered rule tokens
//	GET    /v1/schemas                  stored schema names
//	GET    /v1/schemas/{name}           stored schema document
//	PUT    /v1/schemas/{name}           store a JSON or YAML document after compiling it
//	DELETE /v1/schemas/{name}
//	POST   /v1/schemas/{name}/validate  validate the body against a stored schema
//	GET    /health/live, /health/ready
//
// Successful responses are {"data": ...}. A validation result is always 200,
// whether or not the request passed. Errors are {"error": {"code",
// "message", "details"}} with 422 for invalid schemas, 404 for unknown
// schemas, 400 for malformed bodies and 413 for oversized ones.
package api
