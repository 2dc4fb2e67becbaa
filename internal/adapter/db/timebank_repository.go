package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flow/internal/core/domain"
	"flow/internal/core/ports"
)

const addSavedMinutesQuery = `
INSERT INTO time_bank (id, user_id, date, minutes_saved, minutes_spent)
VALUES (?, ?, ?, ?, 0)
ON DUPLICATE KEY UPDATE minutes_saved = minutes_saved + VALUES(minutes_saved);
`

type TimeBankRepository struct {
	db *sqlx.DB
}

var _ ports.TimeBankRepository = (*TimeBankRepository)(nil)

func NewTimeBankRepository(db *sqlx.DB) *TimeBankRepository {
	return &TimeBankRepository{db: db}
}

func (r *TimeBankRepository) AddSaved(ctx context.Context, userID string, date time.Time, minutes int) error {
	_, err := r.db.ExecContext(ctx, addSavedMinutesQuery, uuid.NewString(), userID, domain.DateKey(date), minutes)
	return err
}
