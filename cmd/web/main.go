package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/boca-banker/boca-banker/pkg/server"
	"github.com/boca-banker/boca-banker/pkg/services/study"
	"github.com/boca-banker/boca-banker/pkg/store/duckdb"
	leadstore "github.com/boca-banker/boca-banker/pkg/store/duckdb/lead"
	studystore "github.com/boca-banker/boca-banker/pkg/store/duckdb/study"
)

var dbPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Boca Banker web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&dbPath, "db", "d", "boca-banker.db",
		"Path to the embedded database file")

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

	if env := os.Getenv("DB_PATH"); env != "" {
		dbPath = env
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	studies, err := studystore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create study store: %w", err)
	}
	leads, err := leadstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create lead store: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		logger.Error().Msg("Missing SERVER_HOST/SERVER_PORT configuration")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Str("db", dbPath).Msgf("starting server on %s", addr)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Calculator: study.NewCalculator(),
			Studies:    studies,
			Leads:      leads,
			Logger:     logger,
		},
	})
	return api.Start()
}
