// Package api implements the bearer-token REST client for the admin API.
//
// # Client
//
// [Client] wraps every endpoint of the catalog's admin API: authentication
// (login, logout, profile), admins and roles, songs, styles, categories,
// song languages, and suggested-song review.
//
// All requests attach the current bearer token when one is set. Responses are
// handled uniformly in [Client.do]:
//   - 204 is an empty successful body
//   - other non-2xx statuses fail with an [*Error] carrying the server's
//     message field, or an HTTP-status-derived message when the body has none
//   - 401 additionally clears the in-memory and persisted token and fires the
//     callback registered with [Client.OnUnauthorized]
//
// The 401 path is the only cross-cutting behavior: the client never navigates
// or renders; the application subscribes once and decides where to go. The
// server remains the authority on every credential; the client only reports
// what it was last told.
//
// Requests are throttled client-side with [rate.Limiter] so bulk CLI
// operations cannot hammer the server.
package api
