package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flow/internal/adapter/http/dto"
	"flow/internal/adapter/http/middleware"
	"flow/internal/core/domain"
	"flow/internal/core/ports"
	"flow/pkg/apierrors"
)

type ScheduleHandler struct {
	taskService ports.TaskService
}

func NewScheduleHandler(taskService ports.TaskService) *ScheduleHandler {
	return &ScheduleHandler{taskService: taskService}
}

// ProposeSchedule asks the planning collaborator for placements. Nothing is
// written; the client reviews the proposal and commits it via ApplySchedule.
func (h *ScheduleHandler) ProposeSchedule(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ProposeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	startTime := domain.NewTimeOfDay(9, 0)
	if req.StartTime != nil {
		startTime, err = domain.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
	}

	slots, err := h.taskService.ProposeSchedule(c.Request.Context(), req.UserID, date, req.AvailableHours, startTime)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToSchedule) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgNothingToSchedule, lang),
			)
			return
		}

		zap.L().Error("failed to propose schedule", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailProposeSchedule, lang),
		)
		return
	}

	resp := dto.ProposeScheduleResponse{Scheduled: make([]dto.ScheduledSlotItem, 0, len(slots))}
	for _, slot := range slots {
		resp.Scheduled = append(resp.Scheduled, dto.ScheduledSlotItem{
			TaskID:      slot.TaskID,
			PlannedTime: slot.PlannedTime.String(),
			SortOrder:   slot.SortOrder,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) ApplySchedule(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.ApplyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	slots := make([]domain.ScheduledSlot, 0, len(req.Scheduled))
	for _, item := range req.Scheduled {
		plannedTime, err := domain.ParseTimeOfDay(item.PlannedTime)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
		slots = append(slots, domain.ScheduledSlot{
			TaskID:      item.TaskID,
			PlannedTime: plannedTime,
			SortOrder:   item.SortOrder,
		})
	}

	if err := h.taskService.ApplySchedule(c.Request.Context(), slots); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to apply schedule", zap.Int("slots", len(slots)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailApplySchedule, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) SmartStart(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	now := time.Now()
	insights, err := h.taskService.SmartStart(c.Request.Context(), userID, domain.NewTimeOfDay(now.Hour(), now.Minute()))
	if err != nil {
		zap.L().Error("failed to analyze history", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSmartStart, lang),
		)
		return
	}

	resp := dto.SmartStartResponse{
		TopTags:          insights.TopTags,
		AvgActualMinutes: insights.AvgActualMinutes,
		CompletionRate:   insights.CompletionRatePercent,
	}
	if insights.TypicalEnergyAtHour != nil {
		energy := string(*insights.TypicalEnergyAtHour)
		resp.TypicalEnergyAtHour = &energy
	}
	c.JSON(http.StatusOK, resp)
}
