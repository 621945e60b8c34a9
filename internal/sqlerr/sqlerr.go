// Package sqlerr translates database driver errors into client-facing
// errors.
//
// Postgres reports failures as SQLSTATE codes plus schema metadata. This
// package maps the ones a CRUD API actually triggers (constraint
// violations, missing rows, bad literals) into errs.HTTPError values with
// messages a client can show, so repositories never leak driver errors.
package sqlerr
