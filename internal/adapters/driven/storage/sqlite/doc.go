// Package sqlite provides a SQLite-based implementation of the session store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Sessions and their
// document records (including the full extracted text) live in two tables
// written together in one transaction per save.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory, applied in filename order at startup.
//
// # Data Location
//
// By default, the database is stored at ~/.lectern/data/sessions.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
