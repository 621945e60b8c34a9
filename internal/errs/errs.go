// Package errs defines the error types the API returns to clients.
//
// Every failure that reaches the global error handler is normalized into
// an HTTPError, so clients always receive the same JSON shape: a machine
// readable code, a human readable message, the HTTP status, and optional
// field-level errors for invalid input.
package errs
