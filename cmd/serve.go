package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/whocolor/api"
	"github.com/Drolfothesgnir/whocolor/db"
	"github.com/Drolfothesgnir/whocolor/tmpstore"
	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/Drolfothesgnir/whocolor/wiki"
	"github.com/Drolfothesgnir/whocolor/wikiwho"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WhoColor HTTP service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := api.RegisterValidators(); err != nil {
		return fmt.Errorf("cannot register validators: %w", err)
	}

	if config.DBSource == "" {
		return errors.New("DB_SOURCE is not configured")
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals...)
	defer stop()

	// Postgres connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		return fmt.Errorf("cannot connect to the database: %w", err)
	}

	store := db.NewStore(conn)

	// running db migrations every time the server starts
	// it's idempotent, so the schema establishes only once if no new versions added
	if err := runDBMigration(config.MigrationURL, config.DBSource); err != nil {
		store.Shutdown()
		return err
	}

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	if err := runGinServer(ctx, waitGroup, config, store); err != nil {
		store.Shutdown()
		return err
	}

	return waitGroup.Wait()
}

func runDBMigration(migrationURL string, dbSource string) error {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return fmt.Errorf("cannot create new migrate instance: %w", err)
	}

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	log.Info().Msg("db migrated successfully")
	return nil
}

// newHandler wires the providers into the annotation pipeline.
func newHandler(config util.Config) *whocolor.Handler {
	text := wiki.NewClient(config.WikipediaAPIURL, config.RequestTimeout, config.EditorBatchSize)
	attribution := wikiwho.NewClient(config.WikiWhoAPIURL, config.RequestTimeout)

	return whocolor.NewHandler(text, attribution, whocolor.WithLogger(log.Logger))
}

func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) error {
	rs := tmpstore.NewStore(&config)

	service, err := api.NewService(config, store, rs, newHandler(config))
	if err != nil {
		return fmt.Errorf("cannot create HTTP service: %w", err)
	}

	host, port, err := config.ExtractHostPort()
	if err != nil {
		return fmt.Errorf("invalid HTTP server address: %w", err)
	}

	waitGroup.Go(func() error {
		log.Info().Str("host", host).Str("port", port).Msg("start HTTP server")

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server and the running jobs 10 secs to finish
		toCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the db connection pool
		store.Shutdown()

		log.Info().Msg("whocolor server is stopped")

		return err
	})

	return nil
}
