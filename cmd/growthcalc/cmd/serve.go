package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgo/growth-calculator/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator as a JSON HTTP API",
	Long: `Serve the calculator over HTTP until interrupted.

Routes:
  GET  /healthz
  GET  /api/calculate?principal=&rate=&times=[&locale=]
  POST /api/calculate         {"principal":"","rate":"","times":""}
  GET  /api/summarize/:amount [?locale=]`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(newEngine(cfg.Display), cfg.Display, logger)
	return srv.ListenAndServe(ctx, serveAddr)
}
