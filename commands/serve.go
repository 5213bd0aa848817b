package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/camden-git/familytree/handlers"
	"github.com/camden-git/familytree/logger"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the family tree over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if port != "" {
				cfg.Port = port
			}

			svc, err := root.loadService()
			if err != nil {
				return err
			}

			fh := &handlers.FamilyHandler{Service: svc, DefaultMaxDepth: cfg.DefaultMaxDepth}
			serverAddr := ":" + cfg.Port
			server := &http.Server{
				Addr:         serverAddr,
				Handler:      handlers.NewRouter(fh, cfg.CORSAllowedOrigins),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Logger.Infow("server listening", logger.FieldAddress, serverAddr, logger.FieldSession, svc.SessionID())
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return errors.Wrap(err, "server failed")
			case <-ctx.Done():
			}

			logger.Logger.Infow("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
