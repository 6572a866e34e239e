package main

import (
	"context"
	"fmt"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/formatter"
	"github.com/kamarlaylatt/calvary-admin-front/internal/models"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// suggestionStatusValue maps the CLI status word to the server's enum.
func suggestionStatusValue(word string) (*int, error) {
	if word == "" {
		return nil, nil
	}

	var status int
	switch word {
	case "cancelled", "canceled":
		status = models.SuggestionCancelled
	case "pending":
		status = models.SuggestionPending
	case "approved":
		status = models.SuggestionApproved
	default:
		return nil, fmt.Errorf("%w: unknown status %q (want pending, approved or cancelled)", shared.ErrInvalidFlag, word)
	}
	return &status, nil
}

// SuggestionsList lists publicly suggested songs.
func (r *Runner) SuggestionsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSuggestions); err != nil {
		return err
	}

	status, err := suggestionStatusValue(cmd.String("status"))
	if err != nil {
		return err
	}

	page, err := r.client.SuggestSongs(ctx, api.SuggestSongQuery{
		Page:   cmd.Int("page"),
		Status: status,
		Search: cmd.String("search"),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	text, err := formatter.SuggestionsToText(page)
	if err != nil {
		return fmt.Errorf("failed to format suggestions: %w", err)
	}
	return r.writePlain("%s", text)
}

// SuggestionsShow displays a single suggestion.
func (r *Runner) SuggestionsShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSuggestions); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: suggestion id is required", shared.ErrMissingArgument)
	}

	suggestion, err := r.client.SuggestSong(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(suggestion, cmd.Bool("pretty"))
	}

	r.writePlain("#%d %s [%s]\n", suggestion.ID, suggestion.Title, suggestion.StatusLabel())
	if suggestion.SongWriter != "" {
		r.writePlain("Writer: %s\n", suggestion.SongWriter)
	}
	if suggestion.Email != "" {
		r.writePlain("Suggested by: %s\n", suggestion.Email)
	}
	if suggestion.YouTube != "" {
		r.writePlain("YouTube: %s\n", suggestion.YouTube)
	}
	if suggestion.Lyrics != "" {
		r.writePlainln("%s", suggestion.Lyrics)
	}
	return nil
}

// SuggestionsUpdate edits a pending suggestion before review.
func (r *Runner) SuggestionsUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSuggestions); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: suggestion id is required", shared.ErrMissingArgument)
	}

	req := api.UpdateSuggestSongRequest{
		Title:       optString(cmd, "title"),
		YouTube:     optString(cmd, "youtube"),
		Description: optString(cmd, "description"),
		SongWriter:  optString(cmd, "writer"),
		StyleID:     optInt(cmd, "style-id"),
		Key:         optString(cmd, "key"),
		Lyrics:      optString(cmd, "lyrics"),
		MusicNotes:  optString(cmd, "music-notes"),
	}
	if cmd.IsSet("category-id") {
		req.CategoryIDs = cmd.IntSlice("category-id")
	}

	suggestion, err := r.client.UpdateSuggestSong(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Updated suggestion #%d: %s\n", suggestion.ID, suggestion.Title)
	return nil
}

// SuggestionsApprove approves a suggestion. The server creates the catalog song.
func (r *Runner) SuggestionsApprove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSuggestions); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: suggestion id is required", shared.ErrMissingArgument)
	}

	resp, err := r.client.ApproveSuggestSong(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("suggestion approved", "id", id, "song_id", resp.Song.ID)
	r.writePlain("✓ %s\n", resp.Message)
	r.writePlain("Created song #%d: %s (code %d)\n", resp.Song.ID, resp.Song.Title, resp.Song.Code)
	return nil
}

// SuggestionsCancel cancels a suggestion without creating a song.
func (r *Runner) SuggestionsCancel(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSuggestions); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: suggestion id is required", shared.ErrMissingArgument)
	}

	resp, err := r.client.CancelSuggestSong(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("suggestion cancelled", "id", id)
	r.writePlain("✓ %s\n", resp.Message)
	return nil
}
