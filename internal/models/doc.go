// Package models defines the catalog entities exchanged with the admin REST API.
//
// All types mirror the server's JSON wire format:
//   - [Admin] and [Role] : administrator accounts and their capability roles
//   - [Song], [Style], [Category], [SongLanguage] : the hymn catalog proper
//   - [SuggestSong] : public song submissions awaiting review
//   - [Paginated] : the server's page envelope for list endpoints
//
// Ids and timestamps are server-assigned; the client never fabricates them.
// Role membership is the only field with client-side semantics: [Admin.HasRole]
// backs the session layer's capability checks.
package models
