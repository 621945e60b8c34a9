// Package middleware holds the HTTP middleware stack.
//
// It covers the cross-cutting concerns of every request: CORS, security
// headers, panic recovery, request correlation IDs, request-scoped
// logging, New Relic tracing, redis-backed rate limiting, and the global
// error handler every failed request funnels through.
package middleware
