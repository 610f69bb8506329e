package service

import (
	"context"
	"fmt"
	"math"

	"staff-weekly/internal/model"

	"gorm.io/gorm"
)

// KPIService is the read-only aggregation layer. Every call recomputes
// from the store; nothing is cached.
type KPIService struct{ db *gorm.DB }

func NewKPIService(db *gorm.DB) *KPIService { return &KPIService{db: db} }

// UserStats derives one user's report counts and approval rate.
func (s *KPIService) UserStats(ctx context.Context, userID uint) (*model.UserStats, error) {
	counts := map[string]*int64{}
	stats := &model.UserStats{}
	counts[""] = &stats.TotalReports
	counts[model.StatusApproved] = &stats.ApprovedReports
	counts[model.StatusSubmitted] = &stats.PendingReports
	counts[model.StatusNeedsRevision] = &stats.NeedsRevision

	for status, dst := range counts {
		q := s.db.WithContext(ctx).Model(&model.WeeklyReport{}).Where("user_id = ?", userID)
		if status != "" {
			q = q.Where("status = ?", status)
		}
		if err := q.Count(dst).Error; err != nil {
			return nil, fmt.Errorf("count reports: %w", err)
		}
	}

	stats.ApprovalRate = approvalRate(stats.ApprovedReports, stats.TotalReports)
	return stats, nil
}

// UserRecent projects the user's n newest reports to summaries.
func (s *KPIService) UserRecent(ctx context.Context, userID uint, n int) ([]model.ReportSummary, error) {
	var reports []model.WeeklyReport
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(n).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("recent reports: %w", err)
	}
	return summarize(reports), nil
}

// Dashboard derives the organization-wide view for admins.
func (s *KPIService) Dashboard(ctx context.Context) (*model.AdminDashboard, error) {
	d := &model.AdminDashboard{}

	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ? AND is_active = ?", model.RoleStaff, true).
		Count(&d.Stats.TotalUsers).Error
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	reports := func() *gorm.DB { return s.db.WithContext(ctx).Model(&model.WeeklyReport{}) }
	if err := reports().Count(&d.Stats.TotalReports).Error; err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}
	if err := reports().Where("status = ?", model.StatusSubmitted).Count(&d.Stats.PendingReports).Error; err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}
	if err := reports().Where("status = ?", model.StatusApproved).Count(&d.Stats.ApprovedReports).Error; err != nil {
		return nil, fmt.Errorf("count approved: %w", err)
	}

	err = reports().
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&d.ReportsByStatus).Error
	if err != nil {
		return nil, fmt.Errorf("group by status: %w", err)
	}

	var recent []model.WeeklyReport
	err = s.db.WithContext(ctx).
		Order("created_at DESC").Limit(5).
		Preload("User").
		Find(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("recent reports: %w", err)
	}
	d.RecentReports = summarize(recent)

	// Approved reports grouped by owner, joined to identity, top 5.
	err = reports().
		Select("weekly_reports.user_id, users.name, users.position, COUNT(*) AS report_count").
		Joins("JOIN users ON users.id = weekly_reports.user_id").
		Where("weekly_reports.status = ?", model.StatusApproved).
		Group("weekly_reports.user_id, users.name, users.position").
		Order("report_count DESC").
		Limit(5).
		Scan(&d.TopPerformers).Error
	if err != nil {
		return nil, fmt.Errorf("top performers: %w", err)
	}

	return d, nil
}

// approvalRate is round(approved/total*100), 0 when total is 0.
func approvalRate(approved, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(approved) / float64(total) * 100))
}

func summarize(reports []model.WeeklyReport) []model.ReportSummary {
	out := make([]model.ReportSummary, len(reports))
	for i, r := range reports {
		out[i] = model.ReportSummary{
			ID:            r.ID,
			WeekStartDate: r.WeekStartDate,
			Brand:         r.Brand,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt,
		}
		if r.User != nil {
			out[i].UserName = r.User.Name
			out[i].Position = r.User.Position
		}
	}
	return out
}
