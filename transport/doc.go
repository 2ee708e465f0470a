// Package transport executes JSON requests against the Plaid API and
// hands back the raw response body, or a typed failure.
//
// # Building an Invoker
//
// Use [New] to create an [Invoker] with functional options:
//
//	inv, err := transport.New(
//		transport.WithTimeout(10 * time.Second),
//		transport.WithUserAgent("myapp/1.0"),
//		transport.WithThrottle(10, 5),
//	)
//
// # Calling an Endpoint
//
// [Invoker.Call] POSTs the JSON-encoded payload to the given URL and returns
// the body of a 200 response:
//
//	body, err := inv.Call(ctx, "https://sandbox.plaid.com/accounts/get", payload)
//
// Any other status is returned as an [*APIError] carrying the decoded API
// error envelope. Network failures wrap [ErrTransport].
package transport
