package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flow/internal/adapter/http/dto"
	"flow/internal/adapter/http/mapper"
	"flow/internal/adapter/http/middleware"
	"flow/internal/adapter/http/validation"
	"flow/internal/core/domain"
	"flow/internal/core/ports"
	"flow/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	from, err := queryDate(c, "from", time.Now())
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	to, err := queryDate(c, "to", from)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID, from, to)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	plannedDate, err := time.Parse("2006-01-02", req.PlannedDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input := domain.CreateTaskInput{
		ActivityID:  req.ActivityID,
		UserID:      req.UserID,
		Status:      domain.TaskStatusPending,
		PlannedDate: plannedDate,
		SortOrder:   req.SortOrder,
	}
	if req.PlannedTime != nil {
		plannedTime, err := domain.ParseTimeOfDay(*req.PlannedTime)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
		input.PlannedTime = &plannedTime
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if err := binding.JSON.BindBody(body, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		h.respondWithTaskError(c, lang, taskID, "failed to update task", apierrors.MsgFailUpdateTask, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		h.respondWithTaskError(c, lang, taskID, "failed to delete task", apierrors.MsgFailDeleteTask, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, chained, err := h.taskService.CompleteTask(c.Request.Context(), taskID, req.ActualDuration)
	if err != nil {
		h.respondWithTaskError(c, lang, taskID, "failed to complete task", apierrors.MsgFailUpdateTask, err)
		return
	}

	resp := dto.CompleteTaskResponse{Task: mapper.ToTaskItem(task)}
	if chained != nil {
		item := mapper.ToTaskItem(*chained)
		resp.Chained = &item
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) SkipTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.SkipTask(c.Request.Context(), taskID)
	if err != nil {
		h.respondWithTaskError(c, lang, taskID, "failed to skip task", apierrors.MsgFailUpdateTask, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// DropTask resolves a drag-drop offset into a snapped planned time. A drop
// outside the scheduling window answers 200 with moved=false: the drag is
// cancelled, not failed.
func (h *TaskHandler) DropTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.DropTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if req.Zoom == 0 {
		req.Zoom = 1
	}

	result, err := h.taskService.ResolveDrop(c.Request.Context(), taskID, req.Offset, req.Zoom)
	if err != nil {
		h.respondWithTaskError(c, lang, taskID, "failed to resolve drop", apierrors.MsgFailUpdateTask, err)
		return
	}

	resp := dto.DropTaskResponse{Moved: result.Moved}
	if result.Moved {
		plannedTime := result.PlannedTime.String()
		resp.PlannedTime = &plannedTime
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	if err := h.taskService.SwapOrder(c.Request.Context(), req.TaskID, req.OtherTaskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to reorder tasks",
			zap.String("task_id", req.TaskID),
			zap.String("other_task_id", req.OtherTaskID),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) respondWithTaskError(c *gin.Context, lang, taskID, logMsg, failKey string, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskTerminal):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgTaskLocked, lang),
		)
	default:
		zap.L().Error(logMsg, zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func taskIDParam(c *gin.Context, lang string) (string, bool) {
	taskID := c.Param("id")
	if _, err := uuid.Parse(taskID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return "", false
	}
	return taskID, true
}

func queryDate(c *gin.Context, key string, fallback time.Time) (time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", value)
}
