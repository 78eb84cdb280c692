package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"docquiz/internal/backend"
	"docquiz/internal/chunker"
	"docquiz/internal/config"
	"docquiz/internal/extract"
	"docquiz/internal/format"
	"docquiz/internal/helper"
	"docquiz/internal/models"
	"docquiz/internal/pipeline"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", configFilePath, "Path to the config file")
	filePath := flag.String("file", "", "Path to the document file")
	qtFlag := flag.String("type", "flashcards", "Question type: multiple_choice, essay or flashcards")
	count := flag.Int("count", 0, "Number of questions to generate")
	dryRun := flag.Bool("dry-run", false, "Extract and chunk only, do not call the backend")
	flag.Parse()

	if *filePath == "" {
		log.Fatal().Msg("Please provide a document file using the -file flag")
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	qt, err := models.ParseQuestionType(*qtFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid question type")
	}
	if *count <= 0 {
		*count = cfg.Generation.DefaultCount
	}

	text, err := extract.Text(*filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error extracting text")
	}

	if *dryRun {
		chunks := chunker.Chunk(text, cfg.Generation.ChunkSize)
		log.Info().Int("chars", len(text)).Int("chunks", len(chunks)).Msg("Extraction finished")
		helper.PrettyPrint(chunks)
		return
	}

	bknd, err := backend.New(&cfg.Backend, &cfg.Generation)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing backend")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Generation.TimeoutSeconds)*time.Second)
	defer cancel()

	doc := models.SourceDocument{Text: text, Filename: filepath.Base(*filePath)}
	set, err := pipeline.New(bknd, cfg.Backend.MaxOutputTokens).Generate(ctx, doc, qt, *count, cfg.Generation.Language)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating questions")
	}

	log.Info().Int("questions", len(set.Questions)).Str("type", string(set.Type)).Msg("Generation finished")
	fmt.Printf("%s\n", format.Render(set))
}
