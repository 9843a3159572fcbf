package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/ecopayback/internal/config"
	"github.com/rshade/ecopayback/internal/logging"
	"github.com/rshade/ecopayback/internal/server"
	"github.com/rshade/ecopayback/internal/session"
)

// ServeParams holds the flags of the serve command.
type ServeParams struct {
	Addr           string
	Locale         string
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// NewServeCmd creates the "serve" subcommand that runs the HTTP server.
func NewServeCmd() *cobra.Command {
	cfg := config.GetGlobalConfig()
	var params ServeParams

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator form and JSON API over HTTP",
		Long: `Serves the calculator form at / and the JSON API under /api/v1. Each browser
session keeps its own results until it has been idle for the session TTL.
Stops gracefully on SIGINT or SIGTERM.`,
		Example: `  ecopayback serve --addr :8080 --session-ttl 1h`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeServe(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Addr, "addr", cfg.Server.Addr, "Listen address")
	cmd.Flags().StringVar(&params.Locale, "locale", cfg.Output.Locale, "Default display locale (pt-BR, en)")
	cmd.Flags().DurationVar(&params.SessionTTL, "session-ttl", cfg.Server.SessionTTL, "Idle time after which a session is discarded")
	cmd.Flags().StringSliceVar(&params.AllowedOrigins, "allowed-origin", cfg.Server.AllowedOrigins,
		"Origin allowed to call the API from a browser (repeatable)")

	return cmd
}

func executeServe(cmd *cobra.Command, params ServeParams) error {
	check := config.Defaults()
	check.Server.Addr = params.Addr
	check.Server.SessionTTL = params.SessionTTL
	check.Output.Locale = params.Locale
	if err := check.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	component := logging.ComponentLogger(*log, "server")

	store := session.NewStore(params.SessionTTL, session.WithLogger(component))
	srv := server.New(store, server.Options{
		Addr:           params.Addr,
		Locale:         params.Locale,
		AllowedOrigins: params.AllowedOrigins,
	}, component)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return store.RunJanitor(gctx, params.SessionTTL/2)
	})

	err := g.Wait()
	component.Info().Msg("server stopped")
	return err
}
