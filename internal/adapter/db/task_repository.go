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

const taskSelectColumns = `
  t.id, t.activity_id, t.user_id, t.status, t.planned_date, t.planned_time,
  t.sort_order, t.actual_duration, t.completed_at, t.created_at, t.updated_at,
  a.name AS activity_name,
  a.duration_minutes AS activity_duration_minutes,
  a.min_duration AS activity_min_duration,
  a.tag AS activity_tag,
  a.energy_level AS activity_energy_level,
  a.linked_activity_id AS activity_linked_activity_id`

const listTasksByDateRangeQuery = `
SELECT` + taskSelectColumns + `
FROM tasks t
JOIN activities a ON a.id = t.activity_id
WHERE t.user_id = ? AND t.planned_date BETWEEN ? AND ?
ORDER BY t.planned_date, t.planned_time IS NULL, t.planned_time, t.sort_order, t.created_at;
`

const listRecentTasksQuery = `
SELECT` + taskSelectColumns + `
FROM tasks t
JOIN activities a ON a.id = t.activity_id
WHERE t.user_id = ?
ORDER BY t.created_at DESC
LIMIT ?;
`

const getTaskByIDQuery = `
SELECT` + taskSelectColumns + `
FROM tasks t
JOIN activities a ON a.id = t.activity_id
WHERE t.id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (id, activity_id, user_id, status, planned_date, planned_time, sort_order)
VALUES (:id, :activity_id, :user_id, :status, :planned_date, :planned_time, :sort_order);
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`

const existingTaskDatesQuery = `SELECT planned_date FROM tasks WHERE activity_id = ?;`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID             string         `db:"id"`
	ActivityID     string         `db:"activity_id"`
	UserID         string         `db:"user_id"`
	Status         string         `db:"status"`
	PlannedDate    time.Time      `db:"planned_date"`
	PlannedTime    sql.NullString `db:"planned_time"`
	SortOrder      sql.NullInt64  `db:"sort_order"`
	ActualDuration sql.NullInt64  `db:"actual_duration"`
	CompletedAt    sql.NullTime   `db:"completed_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	ActivityName             string         `db:"activity_name"`
	ActivityDurationMinutes  int            `db:"activity_duration_minutes"`
	ActivityMinDuration      int            `db:"activity_min_duration"`
	ActivityTag              string         `db:"activity_tag"`
	ActivityEnergyLevel      string         `db:"activity_energy_level"`
	ActivityLinkedActivityID sql.NullString `db:"activity_linked_activity_id"`
}

type insertTaskRow struct {
	ID          string  `db:"id"`
	ActivityID  string  `db:"activity_id"`
	UserID      string  `db:"user_id"`
	Status      string  `db:"status"`
	PlannedDate string  `db:"planned_date"`
	PlannedTime *string `db:"planned_time"`
	SortOrder   *int    `db:"sort_order"`
}

func (r *TaskRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows, listTasksByDateRangeQuery, userID, domain.DateKey(from), domain.DateKey(to))
	if err != nil {
		return nil, err
	}
	return mapTaskRows(rows)
}

func (r *TaskRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listRecentTasksQuery, userID, limit); err != nil {
		return nil, err
	}
	return mapTaskRows(rows)
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskByIDQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	row := toInsertTaskRow(input)
	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, row); err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, row.ID)
}

func (r *TaskRepository) InsertMany(ctx context.Context, inputs []domain.CreateTaskInput) error {
	if len(inputs) == 0 {
		return nil
	}
	rows := make([]insertTaskRow, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, toInsertTaskRow(input))
	}
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, rows)
	return err
}

func (r *TaskRepository) UpdateFields(ctx context.Context, taskID string, input domain.UpdateTaskInput) error {
	var assignments []string
	var args []any

	if input.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.PlannedDate != nil {
		assignments = append(assignments, "planned_date = ?")
		args = append(args, domain.DateKey(*input.PlannedDate))
	}
	if input.PlannedTimeSet {
		assignments = append(assignments, "planned_time = ?")
		if input.PlannedTime != nil {
			args = append(args, input.PlannedTime.String())
		} else {
			args = append(args, nil)
		}
	}
	if input.SortOrderSet {
		assignments = append(assignments, "sort_order = ?")
		if input.SortOrder != nil {
			args = append(args, *input.SortOrder)
		} else {
			args = append(args, nil)
		}
	}
	if input.ActualDurationMinutes != nil {
		assignments = append(assignments, "actual_duration = ?")
		args = append(args, *input.ActualDurationMinutes)
	}
	if input.CompletedAt != nil {
		assignments = append(assignments, "completed_at = ?")
		args = append(args, *input.CompletedAt)
	}
	if len(assignments) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(assignments, ", "))
	args = append(args, taskID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// The update may be a no-op on identical values; only report
		// not-found when the row is truly absent.
		var exists int
		if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM tasks WHERE id = ?", taskID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTaskNotFound
			}
			return err
		}
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) ExistingDates(ctx context.Context, activityID string) (map[string]bool, error) {
	var dates []time.Time
	if err := r.db.SelectContext(ctx, &dates, existingTaskDatesQuery, activityID); err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(dates))
	for _, d := range dates {
		existing[domain.DateKey(d)] = true
	}
	return existing, nil
}

func toInsertTaskRow(input domain.CreateTaskInput) insertTaskRow {
	row := insertTaskRow{
		ID:          uuid.NewString(),
		ActivityID:  input.ActivityID,
		UserID:      input.UserID,
		Status:      string(input.Status),
		PlannedDate: domain.DateKey(input.PlannedDate),
		SortOrder:   input.SortOrder,
	}
	if input.PlannedTime != nil {
		value := input.PlannedTime.String()
		row.PlannedTime = &value
	}
	return row
}

func mapTaskRows(rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:          row.ID,
		ActivityID:  row.ActivityID,
		UserID:      row.UserID,
		Status:      domain.TaskStatus(row.Status),
		PlannedDate: row.PlannedDate,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Activity: &domain.Activity{
			ID:                 row.ActivityID,
			UserID:             row.UserID,
			Name:               row.ActivityName,
			DurationMinutes:    row.ActivityDurationMinutes,
			MinDurationMinutes: row.ActivityMinDuration,
			Tag:                row.ActivityTag,
			EnergyLevel:        domain.EnergyLevel(row.ActivityEnergyLevel),
		},
	}

	if row.PlannedTime.Valid {
		value, err := domain.ParseTimeOfDay(row.PlannedTime.String)
		if err != nil {
			return domain.Task{}, err
		}
		task.PlannedTime = &value
	}

	if row.SortOrder.Valid {
		value := int(row.SortOrder.Int64)
		task.SortOrder = &value
	}

	if row.ActualDuration.Valid {
		value := int(row.ActualDuration.Int64)
		task.ActualDurationMinutes = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	if row.ActivityLinkedActivityID.Valid {
		value := row.ActivityLinkedActivityID.String
		task.Activity.LinkedActivityID = &value
	}

	return task, nil
}
