// Package redis connects to the Redis server backing the schema store.
//
// Connect parses a redis:// URL and pings the server with retries:
//
//	client, err := redis.Connect(ctx, redis.Config{
//	    URL:            "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  2 * time.Second,
//	    ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Healthcheck wraps the client in a probe for the HTTP readiness endpoint.
// Errors are sentinels joined with the go-redis cause via errors.Join.
package redis
