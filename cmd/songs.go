package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/formatter"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// SongsList lists catalog songs with filters, sorting and pagination.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSongs); err != nil {
		return err
	}

	query := api.SongQuery{
		Page:            cmd.Int("page"),
		Search:          cmd.String("search"),
		StyleID:         optInt(cmd, "style-id"),
		CategoryIDs:     cmd.IntSlice("category-id"),
		SongLanguageIDs: cmd.IntSlice("language-id"),
		SortBy:          cmd.String("sort-by"),
		SortOrder:       cmd.String("sort-order"),
	}

	r.logger.Debug("listing songs", "page", query.Page, "search", query.Search)

	page, err := r.client.Songs(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	text, err := formatter.SongsToText(page)
	if err != nil {
		return fmt.Errorf("failed to format songs: %w", err)
	}
	return r.writePlain("%s", text)
}

// SongsShow displays a single song including lyrics and relations.
func (r *Runner) SongsShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSongs); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: song id is required", shared.ErrMissingArgument)
	}

	song, err := r.client.Song(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(song, cmd.Bool("pretty"))
	}

	r.writePlain("#%d %s (code %d)\n", song.ID, song.Title, song.Code)
	if song.SongWriter != "" {
		r.writePlain("Writer: %s\n", song.SongWriter)
	}
	if song.Style != nil {
		r.writePlain("Style: %s\n", song.Style.Name)
	}
	if len(song.Categories) > 0 {
		names := make([]string, 0, len(song.Categories))
		for _, c := range song.Categories {
			names = append(names, c.Name)
		}
		r.writePlain("Categories: %s\n", strings.Join(names, ", "))
	}
	if len(song.SongLanguages) > 0 {
		names := make([]string, 0, len(song.SongLanguages))
		for _, l := range song.SongLanguages {
			names = append(names, l.Name)
		}
		r.writePlain("Languages: %s\n", strings.Join(names, ", "))
	}
	if song.YouTube != "" {
		r.writePlain("YouTube: %s\n", song.YouTube)
	}
	if song.Description != "" {
		r.writePlainln("%s", song.Description)
	}
	if song.Lyrics != "" {
		r.writePlainln("%s", song.Lyrics)
	}
	return nil
}

// SongsCreate creates a catalog song.
func (r *Runner) SongsCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSongForm); err != nil {
		return err
	}

	req := api.CreateSongRequest{
		Title:           cmd.String("title"),
		YouTube:         cmd.String("youtube"),
		Description:     cmd.String("description"),
		SongWriter:      cmd.String("writer"),
		StyleID:         optInt(cmd, "style-id"),
		Lyrics:          cmd.String("lyrics"),
		MusicNotes:      cmd.String("music-notes"),
		PopularRating:   cmd.Int("rating"),
		CategoryIDs:     cmd.IntSlice("category-id"),
		SongLanguageIDs: cmd.IntSlice("language-id"),
	}

	song, err := r.client.CreateSong(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("song created", "id", song.ID, "title", song.Title)
	r.writePlain("✓ Created song #%d: %s (code %d)\n", song.ID, song.Title, song.Code)
	return nil
}

// SongsUpdate applies a partial update; flags the user did not pass stay unchanged.
func (r *Runner) SongsUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSongForm); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: song id is required", shared.ErrMissingArgument)
	}

	req := api.UpdateSongRequest{
		Title:         optString(cmd, "title"),
		YouTube:       optString(cmd, "youtube"),
		Description:   optString(cmd, "description"),
		SongWriter:    optString(cmd, "writer"),
		StyleID:       optInt(cmd, "style-id"),
		Lyrics:        optString(cmd, "lyrics"),
		MusicNotes:    optString(cmd, "music-notes"),
		PopularRating: optInt(cmd, "rating"),
	}
	if cmd.IsSet("category-id") {
		req.CategoryIDs = cmd.IntSlice("category-id")
	}
	if cmd.IsSet("language-id") {
		req.SongLanguageIDs = cmd.IntSlice("language-id")
	}

	song, err := r.client.UpdateSong(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Updated song #%d: %s\n", song.ID, song.Title)
	return nil
}

// SongsDelete removes a song from the catalog.
func (r *Runner) SongsDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSongs); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: song id is required", shared.ErrMissingArgument)
	}

	if err := r.client.DeleteSong(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.logger.Info("song deleted", "id", id)
	r.writePlain("✓ Deleted song #%d\n", id)
	return nil
}

// SongsExport writes the current song listing to a CSV or Markdown file.
func (r *Runner) SongsExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteSongs); err != nil {
		return err
	}

	format := cmd.String("format")
	output := cmd.String("output")

	page, err := r.client.Songs(ctx, api.SongQuery{
		Page:   cmd.Int("page"),
		Search: cmd.String("search"),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var path string
	switch format {
	case "csv":
		path, err = formatter.WriteSongsCSV(page.Data, output)
	case "markdown", "md":
		path, err = formatter.WriteSongsMarkdown(page, output)
	default:
		return fmt.Errorf("%w: unknown format %q (want csv or markdown)", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("failed to export songs: %w", err)
	}

	r.logger.Info("songs exported", "format", format, "file", path, "count", len(page.Data))
	r.writePlain("✓ Exported %d songs to %s\n", len(page.Data), path)
	return nil
}
