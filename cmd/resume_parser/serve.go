package main

import (
	"fmt"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server that exposes upload, parse, convert and portfolio endpoints. " +
		"Portfolios are stored in PostgreSQL when DATABASE_URL is set and in a local SQLite file otherwise.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, fmt.Sprintf("Port to listen on (default %d)", config.DefaultPort))
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	srv, err := server.New(server.Config{Settings: cfg, Store: st})
	if err != nil {
		_ = st.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
