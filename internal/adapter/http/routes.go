package http

import (
	"github.com/gin-gonic/gin"

	"flow/internal/adapter/http/handlers"
	"flow/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	activityHandler *handlers.ActivityHandler,
	timelineHandler *handlers.TimelineHandler,
	scheduleHandler *handlers.ScheduleHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.POST("/tasks/reorder", taskHandler.ReorderTasks)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.POST("/tasks/:id/complete", taskHandler.CompleteTask)
		api.POST("/tasks/:id/skip", taskHandler.SkipTask)
		api.POST("/tasks/:id/drop", taskHandler.DropTask)

		api.GET("/timeline", timelineHandler.GetTimeline)

		api.GET("/activities", activityHandler.ListActivities)
		api.POST("/activities", activityHandler.CreateActivity)
		api.PATCH("/activities/:id", activityHandler.UpdateActivity)
		api.POST("/activities/:id/recurrence", activityHandler.SetRecurrence)

		api.GET("/insights/smart-start", scheduleHandler.SmartStart)
		api.POST("/schedule/propose", scheduleHandler.ProposeSchedule)
		api.POST("/schedule/apply", scheduleHandler.ApplySchedule)
	}
}
