package service

import (
	"context"
	"errors"
	"time"

	"flow/internal/core/domain"
	"flow/internal/core/ports"
	"flow/internal/core/schedule"
)

const smartStartHistoryLimit = 50

type TaskService struct {
	taskRepository     ports.TaskRepository
	activityRepository ports.ActivityRepository
	timeBankRepository ports.TimeBankRepository
	planner            ports.SchedulePlanner
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	activityRepository ports.ActivityRepository,
	timeBankRepository ports.TimeBankRepository,
	planner ports.SchedulePlanner,
) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		activityRepository: activityRepository,
		timeBankRepository: timeBankRepository,
		planner:            planner,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return schedule.SortManual(tasks), nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.activityRepository.GetByID(ctx, input.ActivityID); err != nil {
		return domain.Task{}, err
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	return s.taskRepository.Create(ctx, input)
}

// UpdateTask applies a partial edit. Terminal tasks are immutable with one
// exception: a Skipped task may be rescheduled back to Pending.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Status.Terminal() && !isRescheduleFromSkip(task, input) {
		return domain.Task{}, domain.ErrTaskTerminal
	}
	if err := s.taskRepository.UpdateFields(ctx, taskID, input); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.GetByID(ctx, taskID)
}

func isRescheduleFromSkip(task domain.Task, input domain.UpdateTaskInput) bool {
	return task.Status == domain.TaskStatusSkipped &&
		input.Status != nil && *input.Status == domain.TaskStatusPending
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepository.Delete(ctx, taskID)
}

// CompleteTask marks the task done, banks any minutes saved against the
// planned duration, and chains the activity's linked follow-on activity by
// creating a Pending task for it on the same date. The chained task, if
// any, is returned alongside the completed one.
func (s *TaskService) CompleteTask(ctx context.Context, taskID string, actualMinutes *int) (domain.Task, *domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, nil, err
	}
	if task.Status.Terminal() {
		return domain.Task{}, nil, domain.ErrTaskTerminal
	}

	now := time.Now()
	status := domain.TaskStatusCompleted
	update := domain.UpdateTaskInput{
		Status:                &status,
		ActualDurationMinutes: actualMinutes,
		CompletedAt:           &now,
	}
	if err := s.taskRepository.UpdateFields(ctx, taskID, update); err != nil {
		return domain.Task{}, nil, err
	}

	if actualMinutes != nil {
		if saved := task.DurationMinutes() - *actualMinutes; saved > 0 {
			if err := s.timeBankRepository.AddSaved(ctx, task.UserID, task.PlannedDate, saved); err != nil {
				return domain.Task{}, nil, err
			}
		}
	}

	chained, err := s.chainLinkedActivity(ctx, task)
	if err != nil {
		return domain.Task{}, nil, err
	}

	completed, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, nil, err
	}
	return completed, chained, nil
}

func (s *TaskService) chainLinkedActivity(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if task.Activity == nil || task.Activity.LinkedActivityID == nil {
		return nil, nil
	}
	linked, err := s.activityRepository.GetByID(ctx, *task.Activity.LinkedActivityID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return nil, nil
		}
		return nil, err
	}

	chained, err := s.taskRepository.Create(ctx, domain.CreateTaskInput{
		ActivityID:  linked.ID,
		UserID:      task.UserID,
		Status:      domain.TaskStatusPending,
		PlannedDate: task.PlannedDate,
	})
	if err != nil {
		return nil, err
	}
	return &chained, nil
}

func (s *TaskService) SkipTask(ctx context.Context, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Status.Terminal() {
		return domain.Task{}, domain.ErrTaskTerminal
	}

	status := domain.TaskStatusSkipped
	if err := s.taskRepository.UpdateFields(ctx, taskID, domain.UpdateTaskInput{Status: &status}); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.GetByID(ctx, taskID)
}

// ResolveDrop turns a raw drop offset into a snapped planned time and
// commits it. A drop outside the scheduling window cancels the drag: the
// task keeps its previous time and Moved is false. Conflicts created by the
// move are advisory and never block it.
func (s *TaskService) ResolveDrop(ctx context.Context, taskID string, offset, zoom float64) (ports.DropResult, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return ports.DropResult{}, err
	}
	if task.Status.Terminal() {
		return ports.DropResult{}, domain.ErrTaskTerminal
	}

	resolved, err := schedule.ResolveDrop(offset, zoom)
	if err != nil {
		if errors.Is(err, schedule.ErrOutsideWindow) {
			return ports.DropResult{}, nil
		}
		return ports.DropResult{}, err
	}

	update := domain.UpdateTaskInput{PlannedTime: &resolved, PlannedTimeSet: true}
	if err := s.taskRepository.UpdateFields(ctx, taskID, update); err != nil {
		return ports.DropResult{}, err
	}
	return ports.DropResult{Moved: true, PlannedTime: resolved}, nil
}

// SwapOrder exchanges the explicit sort orders of two same-day tasks as two
// paired writes. There is no transaction underneath: if the second write
// fails the visible order is inconsistent and the caller must re-fetch.
func (s *TaskService) SwapOrder(ctx context.Context, taskID, otherTaskID string) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	other, err := s.taskRepository.GetByID(ctx, otherTaskID)
	if err != nil {
		return err
	}

	taskOrder, otherOrder, err := s.resolveOrders(ctx, task, other)
	if err != nil {
		return err
	}

	if err := s.taskRepository.UpdateFields(ctx, task.ID, domain.UpdateTaskInput{SortOrder: &otherOrder, SortOrderSet: true}); err != nil {
		return err
	}
	return s.taskRepository.UpdateFields(ctx, other.ID, domain.UpdateTaskInput{SortOrder: &taskOrder, SortOrderSet: true})
}

// resolveOrders falls back to positions in the manual ordering when a task
// has no explicit sort order yet, mirroring how the list surface numbers
// rows on screen.
func (s *TaskService) resolveOrders(ctx context.Context, task, other domain.Task) (int, int, error) {
	if task.SortOrder != nil && other.SortOrder != nil {
		return *task.SortOrder, *other.SortOrder, nil
	}

	dayTasks, err := s.taskRepository.ListByDateRange(ctx, task.UserID, task.PlannedDate, task.PlannedDate)
	if err != nil {
		return 0, 0, err
	}
	sorted := schedule.SortManual(dayTasks)

	taskOrder := orderOf(sorted, task)
	otherOrder := orderOf(sorted, other)
	return taskOrder, otherOrder, nil
}

func orderOf(sorted []domain.Task, task domain.Task) int {
	if task.SortOrder != nil {
		return *task.SortOrder
	}
	for i, t := range sorted {
		if t.ID == task.ID {
			return i
		}
	}
	return len(sorted)
}

// Timeline composes the presentation view for a date: hour buckets with
// grid positions for the day view, capped day cells for week and month.
func (s *TaskService) Timeline(ctx context.Context, userID string, date time.Time, zoom float64, view string) (ports.TimelineView, error) {
	from, to := viewRange(date, view)
	tasks, err := s.taskRepository.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return ports.TimelineView{}, err
	}

	result := ports.TimelineView{Date: date}
	switch view {
	case ports.ViewWeek:
		result.Cells = schedule.ComposeWeek(tasks, date)
	case ports.ViewMonth:
		result.Cells = schedule.ComposeMonth(tasks, date)
	default:
		result.Hours = schedule.ComposeDay(tasks, zoom)
		for id := range schedule.Conflicts(tasks) {
			result.Conflicts = append(result.Conflicts, id)
		}
	}
	return result, nil
}

func viewRange(date time.Time, view string) (time.Time, time.Time) {
	switch view {
	case ports.ViewWeek:
		start := date.AddDate(0, 0, -int(date.Weekday()))
		return start, start.AddDate(0, 0, 6)
	case ports.ViewMonth:
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return first, first.AddDate(0, 1, -1)
	default:
		return date, date
	}
}

func (s *TaskService) SmartStart(ctx context.Context, userID string, now domain.TimeOfDay) (schedule.Insights, error) {
	history, err := s.taskRepository.ListRecent(ctx, userID, smartStartHistoryLimit)
	if err != nil {
		return schedule.Insights{}, err
	}
	return schedule.Analyze(history, now), nil
}

// ProposeSchedule asks the external planner for placements of the date's
// pending tasks. The proposal is returned untouched; committing it goes
// through ApplySchedule like any manual edit.
func (s *TaskService) ProposeSchedule(ctx context.Context, userID string, date time.Time, availableHours float64, startTime domain.TimeOfDay) ([]domain.ScheduledSlot, error) {
	tasks, err := s.taskRepository.ListByDateRange(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}

	pending := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.TaskStatusPending {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return nil, domain.ErrNothingToSchedule
	}

	return s.planner.Propose(ctx, domain.SchedulingRequest{
		Tasks:          pending,
		AvailableHours: availableHours,
		StartTime:      startTime,
	})
}

func (s *TaskService) ApplySchedule(ctx context.Context, slots []domain.ScheduledSlot) error {
	for _, slot := range slots {
		plannedTime := slot.PlannedTime
		sortOrder := slot.SortOrder
		update := domain.UpdateTaskInput{
			PlannedTime:    &plannedTime,
			PlannedTimeSet: true,
			SortOrder:      &sortOrder,
			SortOrderSet:   true,
		}
		if err := s.taskRepository.UpdateFields(ctx, slot.TaskID, update); err != nil {
			return err
		}
	}
	return nil
}
