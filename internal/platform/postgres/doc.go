// Package postgres implements the store interfaces on top of a PostgreSQL
// database accessed through database/sql with the pgx driver. Uniqueness
// and ownership constraints are enforced by the schema, not by
// read-then-write sequences, so every operation is a single atomic
// statement.
package postgres
