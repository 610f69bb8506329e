package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"staff-weekly/internal/config"
	"staff-weekly/internal/handler"
	applog "staff-weekly/internal/logger"
	"staff-weekly/internal/middleware"
	"staff-weekly/internal/model"
	"staff-weekly/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)
	handler.Init(cfg.IsDev())

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.WeeklyReport{}, &model.KPIRecord{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	reportSvc := service.NewReportService(db)
	userSvc := service.NewUserService(db)
	kpiSvc := service.NewKPIService(db)

	secret := []byte(cfg.Auth.Secret)
	set := handler.Set{
		Auth:    handler.NewAuthHandler(authSvc, secret, cfg.TokenTTL()),
		Reports: handler.NewReportHandler(reportSvc),
		Admin:   handler.NewAdminHandler(reportSvc, userSvc, kpiSvc),
		Users:   handler.NewUserHandler(userSvc, reportSvc, kpiSvc),
		Secret:  secret,
		TTL:     cfg.TokenTTL(),
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.RateLimit(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
	}))

	set.Register(r)

	slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
