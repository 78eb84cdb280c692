// Package server exposes the generation pipeline over HTTP.
package server

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"docquiz/internal/auth"
	"docquiz/internal/config"
	"docquiz/internal/index"
	"docquiz/internal/models"
)

// QuestionGenerator is the pipeline capability the handlers need; tests
// substitute a stub.
type QuestionGenerator interface {
	Generate(ctx context.Context, doc models.SourceDocument, qt models.QuestionType, count int, language string) (*models.QuestionSet, error)
}

type Server struct {
	app      *fiber.App
	cfg      *config.Config
	gen      QuestionGenerator
	db       *bun.DB
	idx      *index.QuestionIndex
	validate *validator.Validate
}

// New wires the fiber app. gen may be nil when the backend failed to
// initialize, db nil when persistence is disabled, idx nil when the
// question index is disabled; the affected routes answer 503.
func New(cfg *config.Config, gen QuestionGenerator, db *bun.DB, idx *index.QuestionIndex) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s := &Server{
		app:      app,
		cfg:      cfg,
		gen:      gen,
		db:       db,
		idx:      idx,
		validate: validator.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	secret := s.cfg.Auth.JWTSecret

	s.app.Post("/auth/verify", s.VerifyToken)
	s.app.Post("/upload", auth.Optional(secret), s.Upload)

	questions := s.app.Group("/questions", auth.Required(secret))
	questions.Get("/history", s.History)
	questions.Get("/search", s.Search)
	questions.Get("/:id", s.Show)
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Info().Str("port", s.cfg.Server.Port).Msg("Server listening")
	return s.app.Listen(":" + s.cfg.Server.Port)
}
