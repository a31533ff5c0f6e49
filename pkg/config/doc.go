// Package config loads the rulechain runtime configuration.
//
// Values are layered: Default, then an optional YAML file, then environment
// variables prefixed with RULECHAIN_ (a .env file in the working directory is
// read first). The result is checked with struct validation tags.
//
//	cfg, err := config.Load("rulechain.yaml")
//	if err != nil {
//	    return err
//	}
//
// Nested sections map to nested prefixes, so http.addr is RULECHAIN_HTTP_ADDR
// and schemas.redis.url is RULECHAIN_SCHEMAS_REDIS_URL.
//
// Load returns errors wrapping ErrParsingConfig when input cannot be read and
// ErrInvalidConfig when validation fails.
package config
