package main

import (
	"errors"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusdesk/timetable-engine/internal/config"
	"github.com/campusdesk/timetable-engine/internal/logging"
)

var errBadCap = errors.New("cap must be a non-negative number of minutes")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.Init(cfg.Env)
	defer logger.Sync()

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		logger.Fatal("create upload dir", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	srv := &server{
		cfg:   cfg,
		store: newDatasetStore(),
		log:   logger,
	}

	r.POST("/allocations", srv.handlePostAllocations)
	r.GET("/allocations", srv.handleListAllocations)
	r.GET("/timetable/:id", srv.handleGetTimetable)
	r.GET("/timetable/:id/export", srv.handleExportTimetable)
	r.GET("/occupancy/:id", srv.handleGetOccupancy)

	logger.Info("listening", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
