// Package session is the single source of truth for "who is logged in and
// what can they do".
//
// A [Session] bridges durable storage and in-memory state: it rehydrates
// optimistically from the store at construction (no server round-trip, so a
// revoked token is only discovered on the next API call), applies token and
// profile as one atomic transition on login, clears local state
// unconditionally on logout even when the remote call fails, and reconciles
// with durable storage via [Session.CheckAuth] after an out-of-band
// invalidation.
//
// Authorization reads ([Session.Can], [Session.IsSuperAdmin]) are pure and
// synchronous; they trust the cached profile and never re-verify against the
// server. The server remains the final authority.
package session
