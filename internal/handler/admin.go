package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"staff-weekly/internal/logger"
	"staff-weekly/internal/middleware"
	"staff-weekly/internal/model"
	"staff-weekly/internal/pdf"
	"staff-weekly/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reports *service.ReportService
	users   *service.UserService
	kpis    *service.KPIService
}

func NewAdminHandler(reports *service.ReportService, users *service.UserService, kpis *service.KPIService) *AdminHandler {
	return &AdminHandler{reports: reports, users: users, kpis: kpis}
}

// GET /api/admin/reports
func (h *AdminHandler) Reports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := service.ReportFilter{
		Status: c.Query("status"),
		Brand:  c.Query("brand"),
	}
	if v := c.Query("userId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
			return
		}
		filter.UserID = uint(id)
	}

	result, err := h.reports.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PUT /api/admin/reports/:id
func (h *AdminHandler) Review(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report, err := h.reports.Review(c.Request.Context(), uint(id), middleware.UserID(c), req.Status, req.AdminComments)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("report.reviewed",
		"report_id", report.ID,
		"status", report.Status,
		"reviewer", middleware.UserID(c))
	c.JSON(http.StatusOK, gin.H{
		"message": "Report updated successfully",
		"report":  report,
	})
}

// GET /api/admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.users.ListStaff(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.kpis.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GET /api/admin/users/:id/export
func (h *AdminHandler) ExportUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	user, err := h.users.ByID(c.Request.Context(), uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	// Last 10 reports, newest week first, feed the summary.
	page, err := h.reports.ListByUser(c.Request.Context(), user.ID, 1, 10)
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := pdf.UserSummary(&buf, user, page.Reports); err != nil {
		fail(c, err)
		return
	}

	filename := pdf.Filename("User_Report", user.Name, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
