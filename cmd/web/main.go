package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/fdd-atlas/pkg/server"
	"github.com/de-tools/fdd-atlas/pkg/services/config"
	"github.com/de-tools/fdd-atlas/pkg/services/report"
	"github.com/de-tools/fdd-atlas/pkg/store/sqlite"
	"github.com/de-tools/fdd-atlas/pkg/store/sqlite/history"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for FDD Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	generator, err := report.NewGenerator(report.Config{
		Analyzer: cfg.Analyzer,
		Rules:    cfg.Rules,
	})
	if err != nil {
		return fmt.Errorf("failed to create report generator: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{
		DbPath: cfg.Storage.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	historyStore := history.NewStore(db)

	addr := cfg.Server.Addr
	if host, port := os.Getenv("SERVER_HOST"), os.Getenv("SERVER_PORT"); host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Generator: generator,
			History:   historyStore,
		},
	})

	return api.Start()
}
