// Package store persists generated question sets against their owner.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"docquiz/internal/config"
)

// HistoryLimit caps the records returned by ListHistory.
const HistoryLimit = 10

type QuestionRecord struct {
	bun.BaseModel `bun:"table:question_sets,alias:qs"`

	ID           string    `bun:"id,pk" json:"id"`
	UserID       string    `bun:"user_id,notnull" json:"user_id"`
	Filename     string    `bun:"filename,notnull" json:"filename"`
	QuestionType string    `bun:"question_type,notnull" json:"question_type"`
	Language     string    `bun:"language,notnull" json:"language"`
	Questions    string    `bun:"questions,notnull" json:"questions"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func ConnectDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := cfg.DSN + "?sslmode=disable"
	return sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn), pgdriver.WithPassword(cfg.Password))), nil
}

func NewDB(sqldb *sql.DB, debug bool) *bun.DB {
	db := bun.NewDB(sqldb, pgdialect.New())
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

func InitDB(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*QuestionRecord)(nil)).IfNotExists().Exec(ctx)
	return err
}

func Save(ctx context.Context, db *bun.DB, rec *QuestionRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := db.NewInsert().Model(rec).Exec(ctx)
	return err
}

func Get(ctx context.Context, db *bun.DB, id string) (*QuestionRecord, error) {
	rec := new(QuestionRecord)
	err := db.NewSelect().Model(rec).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func ListHistory(ctx context.Context, db *bun.DB, userID string) ([]QuestionRecord, error) {
	var recs []QuestionRecord
	err := db.NewSelect().
		Model(&recs).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(HistoryLimit).
		Scan(ctx)
	return recs, err
}
