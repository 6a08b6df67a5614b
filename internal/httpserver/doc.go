// Package httpserver wires the HTTP surface: chi router, CORS allow-list,
// request IDs, panic recovery, request logging, and a graceful server
// runtime.
package httpserver
