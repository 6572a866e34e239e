package main

import (
	"context"
	"fmt"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/urfave/cli/v3"
)

// StylesList lists all musical styles.
func (r *Runner) StylesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteStyles); err != nil {
		return err
	}

	styles, err := r.client.Styles(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(styles, cmd.Bool("pretty"))
	}

	r.writePlain("Found %d styles:\n\n", len(styles))
	for _, s := range styles {
		r.writePlain("%4d  %s\n", s.ID, s.Name)
	}
	return nil
}

// StylesCreate creates a musical style.
func (r *Runner) StylesCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteStyles); err != nil {
		return err
	}

	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: style name is required", shared.ErrMissingArgument)
	}

	style, err := r.client.CreateStyle(ctx, api.CreateStyleRequest{Name: name})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Created style #%d: %s\n", style.ID, style.Name)
	return nil
}

// StylesUpdate renames a musical style.
func (r *Runner) StylesUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteStyles); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: style id is required", shared.ErrMissingArgument)
	}

	style, err := r.client.UpdateStyle(ctx, id, api.UpdateStyleRequest{Name: optString(cmd, "name")})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Updated style #%d: %s\n", style.ID, style.Name)
	return nil
}

// StylesDelete removes a musical style.
func (r *Runner) StylesDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteStyles); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: style id is required", shared.ErrMissingArgument)
	}

	if err := r.client.DeleteStyle(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Deleted style #%d\n", id)
	return nil
}

// CategoriesList lists categories with pagination and optional search.
func (r *Runner) CategoriesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteCategories); err != nil {
		return err
	}

	page, err := r.client.Categories(ctx, cmd.Int("page"), cmd.String("search"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	r.writePlain("Categories (page %d of %d, %d total):\n\n", page.CurrentPage, page.LastPage, page.Total)
	for _, c := range page.Data {
		r.writePlain("%4d  %-30s sort %d\n", c.ID, c.Name, c.SortNo)
		if c.Description != "" {
			r.writePlain("      %s\n", c.Description)
		}
	}
	return nil
}

// CategoriesCreate creates a category.
func (r *Runner) CategoriesCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteCategories); err != nil {
		return err
	}

	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: category name is required", shared.ErrMissingArgument)
	}

	req := api.CreateCategoryRequest{
		Name:        name,
		Description: cmd.String("description"),
		SortNo:      cmd.Int("sort-no"),
	}

	category, err := r.client.CreateCategory(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Created category #%d: %s\n", category.ID, category.Name)
	return nil
}

// CategoriesUpdate applies a partial update to a category.
func (r *Runner) CategoriesUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteCategories); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: category id is required", shared.ErrMissingArgument)
	}

	req := api.UpdateCategoryRequest{
		Name:        optString(cmd, "name"),
		Description: optString(cmd, "description"),
		SortNo:      optInt(cmd, "sort-no"),
	}

	category, err := r.client.UpdateCategory(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Updated category #%d: %s\n", category.ID, category.Name)
	return nil
}

// CategoriesDelete removes a category.
func (r *Runner) CategoriesDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteCategories); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: category id is required", shared.ErrMissingArgument)
	}

	if err := r.client.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Deleted category #%d\n", id)
	return nil
}

// LanguagesList lists all song languages.
func (r *Runner) LanguagesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteLanguages); err != nil {
		return err
	}

	languages, err := r.client.SongLanguages(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(languages, cmd.Bool("pretty"))
	}

	r.writePlain("Found %d song languages:\n\n", len(languages))
	for _, l := range languages {
		r.writePlain("%4d  %s\n", l.ID, l.Name)
	}
	return nil
}

// LanguagesCreate creates a song language.
func (r *Runner) LanguagesCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteLanguages); err != nil {
		return err
	}

	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: language name is required", shared.ErrMissingArgument)
	}

	language, err := r.client.CreateSongLanguage(ctx, api.CreateSongLanguageRequest{Name: name})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Created language #%d: %s\n", language.ID, language.Name)
	return nil
}

// LanguagesUpdate renames a song language.
func (r *Runner) LanguagesUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteLanguages); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: language id is required", shared.ErrMissingArgument)
	}

	language, err := r.client.UpdateSongLanguage(ctx, id, api.UpdateSongLanguageRequest{Name: optString(cmd, "name")})
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Updated language #%d: %s\n", language.ID, language.Name)
	return nil
}

// LanguagesDelete removes a song language.
func (r *Runner) LanguagesDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireRoute(router.RouteLanguages); err != nil {
		return err
	}

	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: language id is required", shared.ErrMissingArgument)
	}

	if err := r.client.DeleteSongLanguage(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Deleted language #%d\n", id)
	return nil
}
