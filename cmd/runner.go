package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/session"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/kamarlaylatt/calvary-admin-front/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	client  *api.Client
	session *session.Session
	store   *store.Store
	guard   *router.Guard
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Client  *api.Client
	Session *session.Session
	Store   *store.Store
	Guard   *router.Guard
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		client:  opts.Client,
		session: opts.Session,
		store:   opts.Store,
		guard:   opts.Guard,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, songsCommand, stylesCommand, categoriesCommand, languagesCommand, suggestionsCommand, adminsCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireRoute enforces a route's declared access rules for a CLI command,
// the terminal analogue of the navigation guard's redirects.
func (r *Runner) requireRoute(name string) error {
	route, err := router.Lookup(name)
	if err != nil {
		return err
	}

	switch r.guard.Check(route) {
	case router.RedirectLogin:
		return fmt.Errorf("%w: run 'calvary auth login' first", shared.ErrNotAuthenticated)
	case router.RedirectDashboard:
		if route.RequiresGuest {
			return fmt.Errorf("%w: already logged in as %s", shared.ErrInvalidInput, r.session.Profile().Email)
		}
		return fmt.Errorf("%w: '%s' requires super admin", shared.ErrForbidden, route.Title)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// SetLogger replaces the Runner's logger. Used by the TUI to divert logs to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}
