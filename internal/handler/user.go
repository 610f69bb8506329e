package handler

import (
	"net/http"

	"staff-weekly/internal/middleware"
	"staff-weekly/internal/model"
	"staff-weekly/internal/period"
	"staff-weekly/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users   *service.UserService
	reports *service.ReportService
	kpis    *service.KPIService
}

func NewUserHandler(users *service.UserService, reports *service.ReportService, kpis *service.KPIService) *UserHandler {
	return &UserHandler{users: users, reports: reports, kpis: kpis}
}

// GET /api/users/profile
func (h *UserHandler) Profile(c *gin.Context) {
	u, err := h.users.ByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.users.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    u,
	})
}

// GET /api/users/dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	uid := middleware.UserID(c)

	stats, err := h.kpis.UserStats(ctx, uid)
	if err != nil {
		fail(c, err)
		return
	}
	recent, err := h.kpis.UserRecent(ctx, uid, 5)
	if err != nil {
		fail(c, err)
		return
	}
	current, err := h.reports.CurrentWeek(ctx, uid)
	if err != nil {
		fail(c, err)
		return
	}

	var currentWeek gin.H
	if current != nil {
		currentWeek = gin.H{
			"id":          current.ID,
			"status":      current.Status,
			"brand":       current.Brand,
			"submittedAt": current.SubmittedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":             stats,
		"recentReports":     recent,
		"currentWeekReport": currentWeek,
		"weekDates":         period.Current(),
	})
}
