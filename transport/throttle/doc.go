// Package throttle provides an [http.RoundTripper] that paces outbound
// API calls using a token-bucket limiter from [golang.org/x/time/rate].
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.Config{RPS: 10, Burst: 5},
//		http.DefaultTransport,
//		func() *slog.Logger { return slog.Default() },
//	)
//	httpClient := &http.Client{Transport: rt}
//
// Calls beyond the burst block until a token is available or the request
// context ends. Nothing is retried or dropped.
package throttle
