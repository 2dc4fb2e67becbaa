package main

import (
	"flow/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	aiadapter "flow/internal/adapter/ai"
	dbadapter "flow/internal/adapter/db"
	httpadapter "flow/internal/adapter/http"
	"flow/internal/adapter/http/handlers"
	httpmiddleware "flow/internal/adapter/http/middleware"
	"flow/internal/app/service"
	"flow/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	activityRepository := dbadapter.NewActivityRepository(db)
	timeBankRepository := dbadapter.NewTimeBankRepository(db)
	planner := aiadapter.NewPlanner(cfg.OpenAIAPIKey, cfg.PlannerModel)

	taskService := service.NewTaskService(taskRepository, activityRepository, timeBankRepository, planner)
	activityService := service.NewActivityService(activityRepository, taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	activityHandler := handlers.NewActivityHandler(activityService)
	timelineHandler := handlers.NewTimelineHandler(taskService)
	scheduleHandler := handlers.NewScheduleHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, activityHandler, timelineHandler, scheduleHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
