// Package httpserver runs an HTTP handler with graceful shutdown.
//
// Run listens on the configured address, then blocks until its context is
// cancelled, SIGINT or SIGTERM arrives, or serving fails. Shutdown waits up to
// the configured timeout for in-flight requests:
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithShutdownTimeout(15*time.Second),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Ready is closed once the listener is bound, and Addr reports the bound
// address, which is useful with ":0".
//
// LivenessHandler and ReadinessHandler implement JSON health probes; readiness
// runs named Check functions, for example a Redis ping.
//
// Errors are wrapped with ErrStart and ErrShutdown.
package httpserver
