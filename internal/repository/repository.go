// Package repository handles all interactions with the database.
//
// It contains the raw SQL for the products and orders tables and exposes
// typed methods to list, fetch, persist, update and delete rows, keeping
// SQL out of the service layer. Lookup misses are reported as wrapped
// pgx.ErrNoRows values annotated with the table name so the error funnel
// can render precise not-found responses.
package repository
