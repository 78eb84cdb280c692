package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"docquiz/internal/auth"
	"docquiz/internal/extract"
	"docquiz/internal/format"
	"docquiz/internal/helper"
	"docquiz/internal/models"
	"docquiz/internal/pipeline"
	"docquiz/internal/store"
)

type verifyRequest struct {
	Token string `json:"token"`
}

type uploadForm struct {
	Type  string `validate:"required,oneof=multiple_choice essay flashcards"`
	Count int    `validate:"min=1,max=50"`
}

// VerifyToken checks a bearer token and returns the user it belongs to.
func (s *Server) VerifyToken(ctx *fiber.Ctx) error {
	if s.cfg.Auth.JWTSecret == "" {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "المصادقة معطلة حالياً"})
	}

	var req verifyRequest
	if err := ctx.BodyParser(&req); err != nil || req.Token == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "لم يتم توفير رمز المصادقة"})
	}

	userID, err := auth.Verify(req.Token, s.cfg.Auth.JWTSecret)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "رمز المصادقة غير صالح"})
	}
	return ctx.JSON(fiber.Map{"user_id": userID})
}

// Upload accepts a document, generates questions from it and, for
// authenticated users, records the result in their history.
func (s *Server) Upload(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals(auth.LocalsUserID).(string)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "لم يتم تحميل ملف"})
	}
	if fileHeader.Filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "لم يتم اختيار ملف"})
	}
	ext := filepath.Ext(fileHeader.Filename)
	if !extract.Supported(ext) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "صيغة الملف غير مدعومة"})
	}

	form := uploadForm{
		Type:  ctx.FormValue("type"),
		Count: s.cfg.Generation.DefaultCount,
	}
	if form.Type == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "يجب تحديد نوع الأسئلة"})
	}
	if raw := ctx.FormValue("count"); raw != "" {
		form.Count, err = strconv.Atoi(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "عدد الأسئلة غير صالح"})
		}
	}
	if err := s.validate.Struct(form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "معلمات الطلب غير صالحة"})
	}
	qt, _ := models.ParseQuestionType(form.Type)

	if s.gen == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "خدمة توليد الأسئلة غير متوفرة حالياً"})
	}

	id, err := helper.GenerateUUID()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	tmpPath := filepath.Join(os.TempDir(), id+ext)
	if err := ctx.SaveFile(fileHeader, tmpPath); err != nil {
		log.Error().Err(err).Msg("Failed to save uploaded file")
		return fiber.ErrInternalServerError
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Warn().Err(err).Str("path", tmpPath).Msg("Failed to remove temporary file")
		}
	}()

	text, err := extract.Text(tmpPath)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Text extraction failed")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "فشل في استخراج النص من الملف"})
	}

	genCtx, cancel := context.WithTimeout(ctx.Context(), time.Duration(s.cfg.Generation.TimeoutSeconds)*time.Second)
	defer cancel()

	doc := models.SourceDocument{Text: text, Filename: fileHeader.Filename, Size: fileHeader.Size}
	set, err := s.gen.Generate(genCtx, doc, qt, form.Count, s.cfg.Generation.Language)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrEmptyDocument):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "فشل في استخراج النص من الملف"})
		case errors.Is(err, pipeline.ErrBackendUnavailable):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "خدمة توليد الأسئلة غير متوفرة حالياً"})
		default:
			log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Question generation failed")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "فشل في توليد الأسئلة"})
		}
	}

	rendered := format.Render(set)
	documentID := s.persist(ctx.Context(), userID, fileHeader.Filename, rendered, set)

	return ctx.JSON(fiber.Map{
		"success":     true,
		"questions":   rendered,
		"document_id": documentID,
	})
}

// persist saves the rendered set for a logged-in user. Failure is logged
// and never fails the response; the questions are still returned.
func (s *Server) persist(ctx context.Context, userID, filename, rendered string, set *models.QuestionSet) *string {
	if userID == "" || s.db == nil {
		return nil
	}

	id, err := helper.GenerateUUID()
	if err != nil {
		return nil
	}
	rec := &store.QuestionRecord{
		ID:           id,
		UserID:       userID,
		Filename:     filename,
		QuestionType: string(set.Type),
		Language:     set.Language,
		Questions:    rendered,
		CreatedAt:    set.CreatedAt,
	}
	if err := store.Save(ctx, s.db, rec); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save question set")
		return nil
	}
	log.Info().Str("id", id).Str("user_id", userID).Msg("Question set saved")

	if s.idx != nil {
		if err := s.idx.AddQuestionSet(ctx, id, filename, userID, set); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("Failed to index question set")
		}
	}
	return &id
}

// History lists the caller's 10 newest question sets.
func (s *Server) History(ctx *fiber.Ctx) error {
	if s.db == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "هذه الميزة غير متوفرة حالياً"})
	}
	userID := ctx.Locals(auth.LocalsUserID).(string)

	recs, err := store.ListHistory(ctx.Context(), s.db, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load history")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "حدث خطأ أثناء تحميل السجل"})
	}
	return ctx.JSON(fiber.Map{"history": recs})
}

// Show returns one of the caller's stored question sets.
func (s *Server) Show(ctx *fiber.Ctx) error {
	if s.db == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "هذه الميزة غير متوفرة حالياً"})
	}
	userID := ctx.Locals(auth.LocalsUserID).(string)

	rec, err := store.Get(ctx.Context(), s.db, ctx.Params("id"))
	if err != nil || rec.UserID != userID {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "السجل غير موجود"})
	}
	return ctx.JSON(rec)
}

// Search finds the caller's past questions most similar to a query.
func (s *Server) Search(ctx *fiber.Ctx) error {
	if s.idx == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "هذه الميزة غير متوفرة حالياً"})
	}
	userID := ctx.Locals(auth.LocalsUserID).(string)

	query := ctx.Query("q")
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "يجب توفير نص البحث"})
	}
	k := ctx.QueryInt("limit", 5)

	results, err := s.idx.Search(ctx.Context(), query, userID, k)
	if err != nil {
		log.Error().Err(err).Msg("Question search failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "حدث خطأ أثناء البحث"})
	}
	return ctx.JSON(fiber.Map{"results": results})
}
