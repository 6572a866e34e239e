package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/kamarlaylatt/calvary-admin-front/internal/store"
	"github.com/kamarlaylatt/calvary-admin-front/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for catalog administration.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.client == nil || r.session == nil {
		return fmt.Errorf("%w: API client not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/calvary-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.session, r.guard, r.client, fileLogger)
	p := tea.NewProgram(model)

	// While the TUI runs, a server-side 401 is surfaced as a message so the
	// current view can drop back to the login screen.
	r.client.OnUnauthorized(func() {
		if r.store != nil {
			if err := r.store.RecordAuthEvent(store.EventInvalidated, "server rejected credential"); err != nil {
				fileLogger.Warn("failed to record auth event", "error", err)
			}
		}
		p.Send(ui.SessionInvalidatedMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
