// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

// setupCommand handles config and credential database initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create config file and initialize the credential database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the admin session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Admin email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Admin password (prompted when omitted)",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Revoke the session; local state is cleared even if the server call fails",
				Action: r.AuthLogout,
			},
			{
				Name:  "status",
				Usage: "Show current authentication state and recent auth events",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "events",
						Usage: "Number of audit events to show",
						Value: 5,
					},
				},
				Action: r.AuthStatus,
			},
			{
				Name:   "whoami",
				Usage:  "Fetch and display the authenticated admin's profile",
				Flags:  jsonFlags(),
				Action: r.AuthWhoami,
			},
		},
	}
}

// songsCommand handles catalog song operations
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Manage catalog songs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List songs with filters and pagination",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
					&cli.StringFlag{Name: "search", Usage: "Search term"},
					&cli.IntFlag{Name: "style-id", Usage: "Filter by style id"},
					&cli.IntSliceFlag{Name: "category-id", Usage: "Filter by category ids"},
					&cli.IntSliceFlag{Name: "language-id", Usage: "Filter by song language ids"},
					&cli.StringFlag{Name: "sort-by", Usage: "Sort field (created_at or id)"},
					&cli.StringFlag{Name: "sort-order", Usage: "Sort order (asc or desc)"},
				}, jsonFlags()...),
				Action: r.SongsList,
			},
			{
				Name:      "show",
				Usage:     "Show a song by id",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags:     jsonFlags(),
				Action:    r.SongsShow,
			},
			{
				Name:  "create",
				Usage: "Create a song",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Song title", Required: true},
					&cli.StringFlag{Name: "youtube", Usage: "YouTube link"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "writer", Usage: "Song writer"},
					&cli.IntFlag{Name: "style-id", Usage: "Style id"},
					&cli.StringFlag{Name: "lyrics", Usage: "Lyrics"},
					&cli.StringFlag{Name: "music-notes", Usage: "Music notes"},
					&cli.IntFlag{Name: "rating", Usage: "Popular rating"},
					&cli.IntSliceFlag{Name: "category-id", Usage: "Category ids"},
					&cli.IntSliceFlag{Name: "language-id", Usage: "Song language ids"},
				},
				Action: r.SongsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a song; only provided flags change",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Song title"},
					&cli.StringFlag{Name: "youtube", Usage: "YouTube link"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "writer", Usage: "Song writer"},
					&cli.IntFlag{Name: "style-id", Usage: "Style id"},
					&cli.StringFlag{Name: "lyrics", Usage: "Lyrics"},
					&cli.StringFlag{Name: "music-notes", Usage: "Music notes"},
					&cli.IntFlag{Name: "rating", Usage: "Popular rating"},
					&cli.IntSliceFlag{Name: "category-id", Usage: "Category ids"},
					&cli.IntSliceFlag{Name: "language-id", Usage: "Song language ids"},
				},
				Action: r.SongsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a song",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.SongsDelete,
			},
			{
				Name:  "export",
				Usage: "Export songs to CSV or Markdown",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv or markdown)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
					&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
					&cli.StringFlag{Name: "search", Usage: "Search term"},
				},
				Action: r.SongsExport,
			},
		},
	}
}

// stylesCommand handles musical style operations
func stylesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "styles",
		Usage: "Manage musical styles",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List styles",
				Flags:  jsonFlags(),
				Action: r.StylesList,
			},
			{
				Name:      "create",
				Usage:     "Create a style",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Action:    r.StylesCreate,
			},
			{
				Name:      "update",
				Usage:     "Rename a style",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New name", Required: true},
				},
				Action: r.StylesUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a style",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.StylesDelete,
			},
		},
	}
}

// categoriesCommand handles category operations
func categoriesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "Manage song categories",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List categories",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
					&cli.StringFlag{Name: "search", Usage: "Search term"},
				}, jsonFlags()...),
				Action: r.CategoriesList,
			},
			{
				Name:      "create",
				Usage:     "Create a category",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.IntFlag{Name: "sort-no", Usage: "Sort position"},
				},
				Action: r.CategoriesCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a category; only provided flags change",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New name"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.IntFlag{Name: "sort-no", Usage: "Sort position"},
				},
				Action: r.CategoriesUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a category",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.CategoriesDelete,
			},
		},
	}
}

// languagesCommand handles song language operations
func languagesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "languages",
		Aliases: []string{"langs"},
		Usage:   "Manage song languages",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List song languages",
				Flags:  jsonFlags(),
				Action: r.LanguagesList,
			},
			{
				Name:      "create",
				Usage:     "Create a song language",
				Arguments: []cli.Argument{&cli.StringArg{Name: "name"}},
				Action:    r.LanguagesCreate,
			},
			{
				Name:      "update",
				Usage:     "Rename a song language",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New name", Required: true},
				},
				Action: r.LanguagesUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a song language",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.LanguagesDelete,
			},
		},
	}
}

// suggestionsCommand handles suggested-song review operations
func suggestionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "suggestions",
		Aliases: []string{"suggest"},
		Usage:   "Review publicly suggested songs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List suggestions",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by status (pending, approved, cancelled)",
					},
					&cli.StringFlag{Name: "search", Usage: "Search term"},
				}, jsonFlags()...),
				Action: r.SuggestionsList,
			},
			{
				Name:      "show",
				Usage:     "Show a suggestion by id",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags:     jsonFlags(),
				Action:    r.SuggestionsShow,
			},
			{
				Name:      "update",
				Usage:     "Edit a suggestion before review; only provided flags change",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Title"},
					&cli.StringFlag{Name: "youtube", Usage: "YouTube link"},
					&cli.StringFlag{Name: "description", Usage: "Description"},
					&cli.StringFlag{Name: "writer", Usage: "Song writer"},
					&cli.IntFlag{Name: "style-id", Usage: "Style id"},
					&cli.StringFlag{Name: "key", Usage: "Musical key"},
					&cli.StringFlag{Name: "lyrics", Usage: "Lyrics"},
					&cli.StringFlag{Name: "music-notes", Usage: "Music notes"},
					&cli.IntSliceFlag{Name: "category-id", Usage: "Category ids"},
				},
				Action: r.SuggestionsUpdate,
			},
			{
				Name:      "approve",
				Usage:     "Approve a suggestion, creating a catalog song",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.SuggestionsApprove,
			},
			{
				Name:      "cancel",
				Usage:     "Cancel a suggestion",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.SuggestionsCancel,
			},
		},
	}
}

// adminsCommand handles administrator account operations (super admin only)
func adminsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admins",
		Usage: "Manage administrator accounts (super admin)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List admins",
				Flags: append([]cli.Flag{
					&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
					&cli.StringFlag{Name: "search", Usage: "Search term"},
				}, jsonFlags()...),
				Action: r.AdminsList,
			},
			{
				Name:  "create",
				Usage: "Create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
					&cli.StringFlag{Name: "status", Usage: "Account status", Value: "active"},
					&cli.IntSliceFlag{Name: "role-id", Usage: "Role ids to assign"},
				},
				Action: r.AdminsCreate,
			},
			{
				Name:      "update",
				Usage:     "Update an admin account; only provided flags change",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Display name"},
					&cli.StringFlag{Name: "email", Usage: "Email"},
					&cli.StringFlag{Name: "password", Usage: "Password"},
					&cli.StringFlag{Name: "status", Usage: "Account status"},
					&cli.IntSliceFlag{Name: "role-id", Usage: "Role ids to assign"},
				},
				Action: r.AdminsUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an admin account",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.AdminsDelete,
			},
			{
				Name:   "roles",
				Usage:  "List assignable roles",
				Flags:  jsonFlags(),
				Action: r.RolesList,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive admin TUI",
		Action:  r.TUI,
	}
}
