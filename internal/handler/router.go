package handler

import (
	"net/http"
	"time"

	"staff-weekly/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Set bundles the handlers plus the auth material the route groups
// need. Register wires the full HTTP surface onto r.
type Set struct {
	Auth    *AuthHandler
	Reports *ReportHandler
	Admin   *AdminHandler
	Users   *UserHandler

	Secret []byte
	TTL    time.Duration
}

func (s Set) Register(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().Format(time.RFC3339)})
	})

	r.POST("/api/auth/register", s.Auth.Register)
	r.POST("/api/auth/login", s.Auth.Login)

	api := r.Group("/api", middleware.JWTAuth(s.Secret, s.TTL))

	reports := api.Group("/reports")
	reports.POST("", s.Reports.Create)
	reports.GET("/my-reports", s.Reports.MyReports)
	reports.GET("/current-week", s.Reports.CurrentWeek)
	reports.GET("/:id/export", s.Reports.Export)
	reports.GET("/:id/kpis", s.Reports.KPIs)

	users := api.Group("/users")
	users.GET("/profile", s.Users.Profile)
	users.PUT("/profile", s.Users.UpdateProfile)
	users.GET("/dashboard", s.Users.Dashboard)

	admin := api.Group("/admin", middleware.AdminOnly())
	admin.GET("/reports", s.Admin.Reports)
	admin.PUT("/reports/:id", s.Admin.Review)
	admin.GET("/users", s.Admin.Users)
	admin.GET("/dashboard", s.Admin.Dashboard)
	admin.GET("/users/:id/export", s.Admin.ExportUser)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
