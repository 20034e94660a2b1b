package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joestump/news-api/internal/api"
	"github.com/joestump/news-api/internal/build"
	"github.com/joestump/news-api/internal/config"
	"github.com/joestump/news-api/internal/logging"
	"github.com/joestump/news-api/internal/query"
	"github.com/joestump/news-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			validator, err := query.NewValidator(cfg.Query)
			if err != nil {
				return err
			}

			database, err := openMigrated(cmd.Context(), cfg, logger.Sugar())
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			topics := store.NewTopicStore(database)
			users := store.NewUserStore(database)
			articles := store.NewArticleStore(database, topics, users)
			comments := store.NewCommentStore(database, articles, users)

			router := api.NewRouter(api.Deps{
				Topics:    topics,
				Users:     users,
				Articles:  articles,
				Comments:  comments,
				Validator: validator,
				Logger:    logger,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening",
					zap.String("addr", cfg.HTTP.Addr),
					zap.String("driver", cfg.DB.Driver),
					zap.String("version", build.Version),
				)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
