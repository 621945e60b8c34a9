// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// Handlers are typed functions taking a bound and validated request
// payload and returning a result or an error. The generic Handle wrapper
// gives every endpoint the same pipeline: bind + validate, structured
// logging, New Relic attributes, JSON response writing, and error
// forwarding into the global error handler. Handlers never write error
// responses themselves.
package handler
