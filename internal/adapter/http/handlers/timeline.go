package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flow/internal/adapter/http/mapper"
	"flow/internal/adapter/http/middleware"
	"flow/internal/core/ports"
	"flow/internal/core/schedule"
	"flow/pkg/apierrors"
)

type TimelineHandler struct {
	taskService ports.TaskService
}

func NewTimelineHandler(taskService ports.TaskService) *TimelineHandler {
	return &TimelineHandler{taskService: taskService}
}

func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	date, err := queryDate(c, "date", time.Now())
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	view := c.DefaultQuery("view", ports.ViewDay)
	switch view {
	case ports.ViewDay, ports.ViewWeek, ports.ViewMonth:
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	zoom := 1.0
	if value := c.Query("zoom"); value != "" {
		zoom, err = strconv.ParseFloat(value, 64)
		if err != nil || zoom < schedule.MinZoom || zoom > schedule.MaxZoom {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
	}

	timeline, err := h.taskService.Timeline(c.Request.Context(), userID, date, zoom, view)
	if err != nil {
		zap.L().Error("failed to compose timeline",
			zap.String("user_id", userID),
			zap.String("view", view),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTimeline, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimelineResponse(timeline, view))
}
