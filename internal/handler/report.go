package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"staff-weekly/internal/logger"
	"staff-weekly/internal/middleware"
	"staff-weekly/internal/model"
	"staff-weekly/internal/pdf"
	"staff-weekly/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	uid := middleware.UserID(c)
	report, err := h.reports.Create(c.Request.Context(), uid, &req)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("report.submitted", "uid", uid, "report_id", report.ID, "brand", report.Brand)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Weekly report submitted successfully",
		"report":  report,
	})
}

// GET /api/reports/my-reports
func (h *ReportHandler) MyReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.reports.ListByUser(c.Request.Context(), middleware.UserID(c), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/reports/current-week
func (h *ReportHandler) CurrentWeek(c *gin.Context) {
	report, err := h.reports.CurrentWeek(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GET /api/reports/:id/export
func (h *ReportHandler) Export(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	report, err := h.reports.ByIDForUser(c.Request.Context(), uint(id), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := pdf.Report(&buf, report); err != nil {
		fail(c, err)
		return
	}

	name := ""
	if report.User != nil {
		name = report.User.Name
	}
	filename := pdf.Filename("Weekly_Report", name, report.WeekStartDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GET /api/reports/:id/kpis
func (h *ReportHandler) KPIs(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rec, err := h.reports.KPIForReport(c.Request.Context(), uint(id), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kpi": rec})
}
