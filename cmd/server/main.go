package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"docquiz/internal/backend"
	"docquiz/internal/config"
	"docquiz/internal/index"
	"docquiz/internal/pipeline"
	"docquiz/internal/server"
	"docquiz/internal/store"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", configFilePath, "Path to the config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(level)
	}

	var db *bun.DB
	if cfg.Database.DSN != "" {
		sqldb, err := store.ConnectDB(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Error connecting to database")
		}
		db = store.NewDB(sqldb, cfg.Database.Debug)
		defer db.Close()
		if err := store.InitDB(context.Background(), db); err != nil {
			log.Fatal().Err(err).Msg("Error initializing database")
		}
	} else {
		log.Warn().Msg("No database configured, question sets will not be saved")
	}

	// A backend that fails to initialize keeps the server up; uploads
	// answer 503 until it is fixed.
	var gen server.QuestionGenerator
	bknd, err := backend.New(&cfg.Backend, &cfg.Generation)
	if err != nil {
		log.Error().Err(err).Str("kind", cfg.Backend.Kind).Msg("Generation backend unavailable")
	} else {
		log.Info().Str("backend", bknd.Name()).Msg("Generation backend ready")
		gen = pipeline.New(bknd, cfg.Backend.MaxOutputTokens)
	}

	var idx *index.QuestionIndex
	if cfg.Index.Enabled {
		idx, err = index.New(&cfg.Index)
		if err != nil {
			log.Error().Err(err).Msg("Question index unavailable")
			idx = nil
		}
	}

	srv := server.New(cfg, gen, db, idx)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
