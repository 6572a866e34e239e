package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/kamarlaylatt/calvary-admin-front/internal/api"
	"github.com/kamarlaylatt/calvary-admin-front/internal/router"
	"github.com/kamarlaylatt/calvary-admin-front/internal/session"
	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"github.com/kamarlaylatt/calvary-admin-front/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open credential database: %v", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		logger.Fatalf("failed to migrate credential database: %v", err)
	}

	st := store.New(db)

	httpClient := &http.Client{Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second}
	client := api.NewClient(config.API.BaseURL, httpClient, st)
	client.SetRateLimit(config.API.RequestsPerSec)

	sess, err := session.New(client, st, logger)
	if err != nil {
		logger.Fatalf("failed to restore session: %v", err)
	}

	// The client clears the persisted token itself on 401; the subscriber only
	// records the event and tells the user where to go.
	client.OnUnauthorized(func() {
		if err := st.RecordAuthEvent(store.EventInvalidated, ""); err != nil {
			logger.Warn("failed to record invalidation event", "error", err)
		}
		logger.Warn("session invalidated by server, run 'calvary auth login'")
	})

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Client:  client,
		Session: sess,
		Store:   st,
		Guard:   router.NewGuard(sess),
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "calvary",
		Usage:    "Administer the Calvary song catalog from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
