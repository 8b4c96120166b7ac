// Package sqlite persists a built ammunition catalog into a SQLite content
// database. The in-memory catalog stays authoritative; the database is an
// export for tools that cannot link the Go packages.
package sqlite
