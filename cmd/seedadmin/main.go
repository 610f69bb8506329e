// Command seedadmin bootstraps the first administrator account. It is
// a no-op when an admin already exists.
package main

import (
	"flag"
	"log/slog"
	"os"

	"staff-weekly/internal/config"
	applog "staff-weekly/internal/logger"
	"staff-weekly/internal/model"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	configFile := flag.String("config", "", "config file path")
	email := flag.String("email", "admin@company.com", "admin email")
	password := flag.String("password", "Admin123!", "initial admin password")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	var existing model.User
	err = db.Where("role = ?", model.RoleAdmin).First(&existing).Error
	if err == nil {
		slog.Info("admin user already exists", "email", existing.Email)
		return
	}
	if err != gorm.ErrRecordNotFound {
		slog.Error("check admin failed", "err", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		os.Exit(1)
	}

	admin := model.User{
		Name:     "System Administrator",
		Email:    *email,
		Password: string(hash),
		Position: "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		slog.Error("create admin failed", "err", err)
		os.Exit(1)
	}

	slog.Info("admin user created", "email", admin.Email)
	slog.Warn("change these credentials after first login")
}
