package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	Long: `Run the portfolio web server until interrupted.

Examples:
  # Serve with defaults on :8080
  portfolio serve

  # Serve with a config file and a different port
  PORTFOLIO_SERVER_PORT=3000 portfolio serve --config portfolio.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, c, err := loadInputs()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	visits, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open visitor store: %w", err)
	}
	defer visits.Close()
	logger.Info("privacy-conscious visitor tracking enabled", zap.String("store", cfg.Store.Path))

	var mailer site.Mailer
	if cfg.SMTP.Configured() {
		mailer = site.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.Warn("contact form disabled: SMTP credentials not configured")
	}

	srv, err := site.NewServer(cfg, site.Deps{Content: c, Visits: visits, Mailer: mailer}, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
