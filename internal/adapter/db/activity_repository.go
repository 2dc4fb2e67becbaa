package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"flow/internal/core/domain"
	"flow/internal/core/ports"
)

const listActivitiesByUserQuery = `
SELECT *
FROM activities
WHERE user_id = ?
ORDER BY created_at DESC;
`

const getActivityByIDQuery = `SELECT * FROM activities WHERE id = ?;`

const insertActivityQuery = `
INSERT INTO activities (id, user_id, name, duration_minutes, min_duration, tag, energy_level, linked_activity_id)
VALUES (:id, :user_id, :name, :duration_minutes, :min_duration, :tag, :energy_level, :linked_activity_id);
`

const setActivityRecurrenceQuery = `
UPDATE activities
SET recurrence_pattern = ?, recurrence_end_date = ?
WHERE id = ?;
`

type ActivityRepository struct {
	db *sqlx.DB
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

type activityRow struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Name              string         `db:"name"`
	DurationMinutes   int            `db:"duration_minutes"`
	MinDuration       int            `db:"min_duration"`
	Tag               string         `db:"tag"`
	EnergyLevel       string         `db:"energy_level"`
	RecurrencePattern sql.NullString `db:"recurrence_pattern"`
	RecurrenceEndDate sql.NullTime   `db:"recurrence_end_date"`
	LinkedActivityID  sql.NullString `db:"linked_activity_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, listActivitiesByUserQuery, userID); err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, mapActivityRowToDomainActivity(row))
	}
	return activities, nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, activityID string) (domain.Activity, error) {
	var row activityRow
	if err := r.db.GetContext(ctx, &row, getActivityByIDQuery, activityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Activity{}, domain.ErrActivityNotFound
		}
		return domain.Activity{}, err
	}
	return mapActivityRowToDomainActivity(row), nil
}

func (r *ActivityRepository) Create(ctx context.Context, input domain.CreateActivityInput) (domain.Activity, error) {
	row := map[string]any{
		"id":                 uuid.NewString(),
		"user_id":            input.UserID,
		"name":               input.Name,
		"duration_minutes":   input.DurationMinutes,
		"min_duration":       input.MinDurationMinutes,
		"tag":                input.Tag,
		"energy_level":       string(input.EnergyLevel),
		"linked_activity_id": input.LinkedActivityID,
	}
	if _, err := r.db.NamedExecContext(ctx, insertActivityQuery, row); err != nil {
		return domain.Activity{}, err
	}
	return r.GetByID(ctx, row["id"].(string))
}

func (r *ActivityRepository) UpdateFields(ctx context.Context, activityID string, input domain.UpdateActivityInput) error {
	var assignments []string
	var args []any

	if input.Name != nil {
		assignments = append(assignments, "name = ?")
		args = append(args, *input.Name)
	}
	if input.DurationMinutes != nil {
		assignments = append(assignments, "duration_minutes = ?")
		args = append(args, *input.DurationMinutes)
	}
	if input.MinDurationMinutes != nil {
		assignments = append(assignments, "min_duration = ?")
		args = append(args, *input.MinDurationMinutes)
	}
	if input.Tag != nil {
		assignments = append(assignments, "tag = ?")
		args = append(args, *input.Tag)
	}
	if input.EnergyLevel != nil {
		assignments = append(assignments, "energy_level = ?")
		args = append(args, string(*input.EnergyLevel))
	}
	if input.LinkedActivityIDSet {
		assignments = append(assignments, "linked_activity_id = ?")
		if input.LinkedActivityID != nil {
			args = append(args, *input.LinkedActivityID)
		} else {
			args = append(args, nil)
		}
	}
	if len(assignments) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE activities SET %s WHERE id = ?", strings.Join(assignments, ", "))
	args = append(args, activityID)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *ActivityRepository) SetRecurrence(ctx context.Context, activityID string, rule domain.RecurrenceRule) error {
	var endDate any
	if rule.EndDate != nil {
		endDate = domain.DateKey(*rule.EndDate)
	}
	_, err := r.db.ExecContext(ctx, setActivityRecurrenceQuery, string(rule.Pattern), endDate, activityID)
	return err
}

func mapActivityRowToDomainActivity(row activityRow) domain.Activity {
	activity := domain.Activity{
		ID:                 row.ID,
		UserID:             row.UserID,
		Name:               row.Name,
		DurationMinutes:    row.DurationMinutes,
		MinDurationMinutes: row.MinDuration,
		Tag:                row.Tag,
		EnergyLevel:        domain.EnergyLevel(row.EnergyLevel),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}

	if row.RecurrencePattern.Valid {
		rule := &domain.RecurrenceRule{
			Pattern: domain.RecurrencePattern(row.RecurrencePattern.String),
		}
		if row.RecurrenceEndDate.Valid {
			value := row.RecurrenceEndDate.Time
			rule.EndDate = &value
		}
		activity.Recurrence = rule
	}

	if row.LinkedActivityID.Valid {
		value := row.LinkedActivityID.String
		activity.LinkedActivityID = &value
	}

	return activity
}
