// Package web holds request decoding, validation and JSON responses for
// the handlers behind the fake API server.
package web
