package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staff-weekly/internal/model"
	"staff-weekly/internal/period"

	"gorm.io/gorm"
)

// ReportFilter narrows admin listings. Zero values mean "any".
type ReportFilter struct {
	Status string
	UserID uint
	Brand  string // case-insensitive substring
}

type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

// Create stores a new report stamped with the current computed week.
// Submission always inserts a new row; two submissions in the same week
// produce two reports. Status is always Submitted on creation.
func (s *ReportService) Create(ctx context.Context, userID uint, req *model.CreateReportRequest) (*model.WeeklyReport, error) {
	week := period.Current()
	now := time.Now()

	deliverables := make([]model.Deliverable, len(req.Deliverables))
	for i, d := range req.Deliverables {
		deliverables[i] = model.Deliverable{
			Title:          d.Title,
			Description:    d.Description,
			Status:         d.Status,
			CompletionDate: now,
		}
		if d.Status == "" {
			deliverables[i].Status = model.DeliverableCompleted
		}
		if d.CompletionDate != nil {
			deliverables[i].CompletionDate = *d.CompletionDate
		}
	}

	targets := make([]model.Target, len(req.NextWeekTargets))
	for i, t := range req.NextWeekTargets {
		targets[i] = model.Target{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Priority:    t.Priority,
		}
		if t.Priority == "" {
			targets[i].Priority = model.PriorityMedium
		}
	}

	report := &model.WeeklyReport{
		UserID:          userID,
		WeekStartDate:   week.Start,
		WeekEndDate:     week.End,
		Brand:           strings.TrimSpace(req.Brand),
		Deliverables:    deliverables,
		NextWeekTargets: targets,
		AdditionalNotes: req.AdditionalNotes,
		Status:          model.StatusSubmitted,
		SubmittedAt:     &now,
	}
	if req.KPIs != nil {
		report.KPIs = model.KPISnapshot{
			EngagementRate: req.KPIs.EngagementRate,
			Reach:          req.KPIs.Reach,
			Conversions:    req.KPIs.Conversions,
			CustomMetrics:  req.KPIs.CustomMetrics,
		}
	}

	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	// A full metrics payload spawns the standalone KPI record scoped to
	// the same reporting period.
	if req.KPIs != nil && req.KPIs.Metrics != nil {
		rec := &model.KPIRecord{
			UserID:      userID,
			ReportID:    report.ID,
			Metrics:     *req.KPIs.Metrics,
			CustomKPIs:  req.KPIs.CustomKPIs,
			PeriodStart: week.Start,
			PeriodEnd:   week.End,
		}
		if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
			return nil, fmt.Errorf("insert kpi record: %w", err)
		}
	}

	if err := s.db.WithContext(ctx).Preload("User").First(report, report.ID).Error; err != nil {
		return nil, fmt.Errorf("reload report: %w", err)
	}
	return report, nil
}

func (s *ReportService) ByID(ctx context.Context, id uint) (*model.WeeklyReport, error) {
	var r model.WeeklyReport
	err := s.db.WithContext(ctx).Preload("User").Preload("Reviewer").First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &r, nil
}

// ByIDForUser fetches one report only when owned by userID.
func (s *ReportService) ByIDForUser(ctx context.Context, id, userID uint) (*model.WeeklyReport, error) {
	var r model.WeeklyReport
	err := s.db.WithContext(ctx).Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &r, nil
}

// ListByUser returns one page of a user's history, newest week first.
func (s *ReportService) ListByUser(ctx context.Context, userID uint, pg, pageSize int) (*model.ReportPage, error) {
	pg, pageSize = clampPage(pg, pageSize, 10)
	q := s.db.WithContext(ctx).Model(&model.WeeklyReport{}).
		Where("user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	var reports []model.WeeklyReport
	err := q.Order("week_start_date DESC").
		Offset((pg - 1) * pageSize).Limit(pageSize).
		Preload("User").Preload("Reviewer").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return page(reports, pg, pageSize, total), nil
}

// List returns one filtered page across all users, newest first.
func (s *ReportService) List(ctx context.Context, f ReportFilter, pg, pageSize int) (*model.ReportPage, error) {
	pg, pageSize = clampPage(pg, pageSize, 20)
	q := s.db.WithContext(ctx).Model(&model.WeeklyReport{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Brand != "" {
		q = q.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(f.Brand)+"%")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	var reports []model.WeeklyReport
	err := q.Order("created_at DESC").
		Offset((pg - 1) * pageSize).Limit(pageSize).
		Preload("User").Preload("Reviewer").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return page(reports, pg, pageSize, total), nil
}

// CurrentWeek returns the user's report for the computed current
// window, or nil when none exists.
func (s *ReportService) CurrentWeek(ctx context.Context, userID uint) (*model.WeeklyReport, error) {
	week := period.Current()
	var r model.WeeklyReport
	err := s.db.WithContext(ctx).Preload("User").
		Where("user_id = ? AND week_start_date = ? AND week_end_date = ?", userID, week.Start, week.End).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find current week report: %w", err)
	}
	return &r, nil
}

// Review applies the admin lifecycle transition. Only Under Review,
// Approved, and Needs Revision are reachable; anything else fails
// before any write. On success the review fields are stamped.
func (s *ReportService) Review(ctx context.Context, reportID, reviewerID uint, status, comments string) (*model.WeeklyReport, error) {
	if !model.ReviewTarget(status) {
		return nil, ErrInvalidStatus
	}
	if reviewerID == 0 {
		return nil, ErrReviewerRequired
	}

	var r model.WeeklyReport
	err := s.db.WithContext(ctx).First(&r, reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}

	now := time.Now()
	r.Status = status
	r.AdminComments = comments
	r.ReviewedAt = &now
	r.ReviewedBy = &reviewerID
	if err := s.db.WithContext(ctx).Save(&r).Error; err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}

	if err := s.db.WithContext(ctx).Preload("User").Preload("Reviewer").First(&r, r.ID).Error; err != nil {
		return nil, fmt.Errorf("reload report: %w", err)
	}
	return &r, nil
}

// KPIForReport returns the standalone KPI record for one of the user's
// own reports.
func (s *ReportService) KPIForReport(ctx context.Context, reportID, userID uint) (*model.KPIRecord, error) {
	var rec model.KPIRecord
	err := s.db.WithContext(ctx).
		Where("report_id = ? AND user_id = ?", reportID, userID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKPINotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find kpi record: %w", err)
	}
	return &rec, nil
}

func clampPage(pg, pageSize, defaultSize int) (int, int) {
	if pg < 1 {
		pg = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pg, pageSize
}

func page(reports []model.WeeklyReport, pg, pageSize int, total int64) *model.ReportPage {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &model.ReportPage{
		Reports:    reports,
		Pagination: model.Pagination{Current: pg, Pages: pages, Total: total},
	}
}
