// Package service contains the business logic between the handler and
// repository layers.
//
// Handlers hand it validated input; it calls repositories and coordinates
// side effects such as enqueueing the order confirmation email job.
package service
