package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
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

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list activities", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItems(activities))
}

func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	input := domain.CreateActivityInput{
		UserID:           req.UserID,
		Name:             name,
		DurationMinutes:  req.DurationMinutes,
		Tag:              req.Tag,
		EnergyLevel:      domain.EnergyLevel(req.EnergyLevel),
		LinkedActivityID: req.LinkedActivityID,
	}
	if req.MinDuration != nil {
		input.MinDurationMinutes = *req.MinDuration
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create activity", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateActivity, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	activityID, ok := activityIDParam(c, lang)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateActivityRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}
	if err := binding.JSON.BindBody(body, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateActivityInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityPayload, lang),
		)
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), activityID, input)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update activity", zap.String("activity_id", activityID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItem(activity))
}

// SetRecurrence stores the rule and materializes the missing task
// instances in one call; re-running it is idempotent.
func (h *ActivityHandler) SetRecurrence(c *gin.Context) {
	lang := middleware.GetLang(c)

	activityID, ok := activityIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.SetRecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurrence, lang),
		)
		return
	}

	rule := domain.RecurrenceRule{Pattern: domain.RecurrencePattern(req.Pattern)}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurrence, lang),
			)
			return
		}
		rule.EndDate = &endDate
	}

	created, err := h.activityService.SetRecurrence(c.Request.Context(), activityID, rule)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActivityNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidRecurrence):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecurrence, lang),
			)
		default:
			zap.L().Error("failed to set recurrence", zap.String("activity_id", activityID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSetRecurrence, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SetRecurrenceResponse{Created: created})
}

func activityIDParam(c *gin.Context, lang string) (string, bool) {
	activityID := c.Param("id")
	if _, err := uuid.Parse(activityID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityID, lang),
		)
		return "", false
	}
	return activityID, true
}
