// Package server provides the HTTP server for the automation platform,
// using Gin with h2c so HTTP/2 cleartext clients share the REST port.
//
// The server exposes the fixed status surface (/health, /api/status,
// /api/branches) read from a live automation.System, follows the
// component lifecycle pattern, and applies a standard middleware chain:
// panic recovery, request IDs, wide-open CORS, body-size limits,
// request logging and optional per-client rate limiting.
//
// The listen port resolves from the PORT environment variable, then
// HTTP_PORT, then the configured default.
package server
