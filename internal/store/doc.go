// Package store implements durable local storage for the client's session.
//
// A single SQLite-backed key-value slot holds the bearer token ([KeyToken])
// and a JSON snapshot of the authenticated admin's profile ([KeyAdminDetails]),
// surviving process restarts. An auth_events table records login, logout and
// forced-invalidation events for debugging.
//
// The database file is shared across concurrently running processes with no
// locking beyond SQLite's own; last writer wins.
package store
