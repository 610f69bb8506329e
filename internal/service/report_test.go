package service

import (
	"testing"
	"time"

	"staff-weekly/internal/model"
	"staff-weekly/internal/period"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	staff := seedUser(t, db, "Jane Doe", "jane@company.com", model.RoleStaff)

	t.Run("Should submit with computed week and defaults", func(t *testing.T) {
		report, err := svc.Create(ctx(), staff.ID, createRequest())
		require.NoError(t, err)

		assert.Equal(t, model.StatusSubmitted, report.Status)
		require.NotNil(t, report.SubmittedAt)
		assert.Equal(t, "Acme", report.Brand)

		week := period.Current()
		assert.True(t, report.WeekStartDate.Equal(week.Start))
		assert.True(t, report.WeekEndDate.Equal(week.End))
		assert.Equal(t, time.Monday, report.WeekStartDate.Weekday())
		assert.Equal(t, time.Friday, report.WeekEndDate.Weekday())

		require.Len(t, report.Deliverables, 1)
		assert.Equal(t, model.DeliverableCompleted, report.Deliverables[0].Status)
		require.Len(t, report.NextWeekTargets, 1)
		assert.Equal(t, model.PriorityHigh, report.NextWeekTargets[0].Priority)
		require.NotNil(t, report.User)
		assert.Equal(t, "Jane Doe", report.User.Name)
	})

	t.Run("Should default target priority to Medium", func(t *testing.T) {
		req := createRequest()
		req.NextWeekTargets[0].Priority = ""
		report, err := svc.Create(ctx(), staff.ID, req)
		require.NoError(t, err)
		assert.Equal(t, model.PriorityMedium, report.NextWeekTargets[0].Priority)
	})

	t.Run("Should allow two submissions in the same week", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewReportService(db)
		u := seedUser(t, db, "Bob", "bob@company.com", model.RoleStaff)

		first, err := svc.Create(ctx(), u.ID, createRequest())
		require.NoError(t, err)
		second, err := svc.Create(ctx(), u.ID, createRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		var count int64
		require.NoError(t, db.Model(&model.WeeklyReport{}).Where("user_id = ?", u.ID).Count(&count).Error)
		assert.EqualValues(t, 2, count)
	})

	t.Run("Should spawn a KPI record from a full metrics payload", func(t *testing.T) {
		req := createRequest()
		req.KPIs = &model.KPIInput{
			EngagementRate: 4.2,
			Reach:          1200,
			Conversions:    30,
			Metrics: &model.KPIMetrics{
				SocialMediaFollowers: 9000,
				EngagementRate:       4.2,
				Reach:                1200,
				Conversions:          30,
				ContentCreated:       6,
			},
			CustomKPIs: []model.CustomKPI{{Name: "Newsletter signups", Value: 55, Unit: "count", Target: 100}},
		}
		report, err := svc.Create(ctx(), staff.ID, req)
		require.NoError(t, err)
		assert.InDelta(t, 4.2, report.KPIs.EngagementRate, 0.001)

		rec, err := svc.KPIForReport(ctx(), report.ID, staff.ID)
		require.NoError(t, err)
		assert.Equal(t, report.ID, rec.ReportID)
		assert.Equal(t, staff.ID, rec.UserID)
		assert.EqualValues(t, 9000, rec.Metrics.SocialMediaFollowers)
		require.Len(t, rec.CustomKPIs, 1)
		assert.Equal(t, "Newsletter signups", rec.CustomKPIs[0].Name)
		assert.True(t, rec.PeriodStart.Equal(report.WeekStartDate))
	})

	t.Run("Should not spawn a KPI record from a snapshot alone", func(t *testing.T) {
		req := createRequest()
		req.KPIs = &model.KPIInput{EngagementRate: 1.5}
		report, err := svc.Create(ctx(), staff.ID, req)
		require.NoError(t, err)

		_, err = svc.KPIForReport(ctx(), report.ID, staff.ID)
		assert.ErrorIs(t, err, ErrKPINotFound)
	})
}

func TestReportService_CurrentWeek(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	staff := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)

	t.Run("Should return nil when no report exists", func(t *testing.T) {
		report, err := svc.CurrentWeek(ctx(), staff.ID)
		require.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("Should find the report in this week's window", func(t *testing.T) {
		created, err := svc.Create(ctx(), staff.ID, createRequest())
		require.NoError(t, err)

		found, err := svc.CurrentWeek(ctx(), staff.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})
}

func TestReportService_Review(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	staff := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)
	admin := seedUser(t, db, "Boss", "boss@company.com", model.RoleAdmin)

	t.Run("Should reject a status outside the review set and leave the report unchanged", func(t *testing.T) {
		report := seedReport(t, db, staff.ID, "Acme", model.StatusSubmitted, 0)

		for _, bad := range []string{model.StatusDraft, model.StatusSubmitted, "Done", ""} {
			_, err := svc.Review(ctx(), report.ID, admin.ID, bad, "")
			assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", bad)
		}

		reloaded, err := svc.ByID(ctx(), report.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSubmitted, reloaded.Status)
		assert.Nil(t, reloaded.ReviewedAt)
		assert.Nil(t, reloaded.ReviewedBy)
	})

	t.Run("Should reject an unknown report", func(t *testing.T) {
		_, err := svc.Review(ctx(), 99999, admin.ID, model.StatusApproved, "")
		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("Should require a reviewer", func(t *testing.T) {
		report := seedReport(t, db, staff.ID, "Acme", model.StatusSubmitted, -1)
		_, err := svc.Review(ctx(), report.ID, 0, model.StatusApproved, "")
		assert.ErrorIs(t, err, ErrReviewerRequired)
	})

	t.Run("Should stamp review fields on success", func(t *testing.T) {
		report := seedReport(t, db, staff.ID, "Acme", model.StatusSubmitted, -2)

		updated, err := svc.Review(ctx(), report.ID, admin.ID, model.StatusApproved, "Good work")
		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, updated.Status)
		assert.Equal(t, "Good work", updated.AdminComments)
		require.NotNil(t, updated.ReviewedAt)
		require.NotNil(t, updated.ReviewedBy)
		assert.Equal(t, admin.ID, *updated.ReviewedBy)
		require.NotNil(t, updated.Reviewer)
		assert.Equal(t, "Boss", updated.Reviewer.Name)
	})

	t.Run("Should allow cycling through Needs Revision", func(t *testing.T) {
		report := seedReport(t, db, staff.ID, "Acme", model.StatusSubmitted, -3)

		_, err := svc.Review(ctx(), report.ID, admin.ID, model.StatusUnderReview, "")
		require.NoError(t, err)
		updated, err := svc.Review(ctx(), report.ID, admin.ID, model.StatusNeedsRevision, "Missing numbers")
		require.NoError(t, err)
		assert.Equal(t, model.StatusNeedsRevision, updated.Status)
	})
}

func TestReportService_List(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	jane := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)
	bob := seedUser(t, db, "Bob", "bob@company.com", model.RoleStaff)

	seedReport(t, db, jane.ID, "Acme Corp", model.StatusApproved, 0)
	seedReport(t, db, jane.ID, "Globex", model.StatusSubmitted, -1)
	seedReport(t, db, bob.ID, "acme industries", model.StatusSubmitted, 0)

	t.Run("Should filter by status", func(t *testing.T) {
		page, err := svc.List(ctx(), ReportFilter{Status: model.StatusApproved}, 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Reports, 1)
		assert.Equal(t, jane.ID, page.Reports[0].UserID)
		assert.EqualValues(t, 1, page.Pagination.Total)
	})

	t.Run("Should filter by brand substring case-insensitively", func(t *testing.T) {
		page, err := svc.List(ctx(), ReportFilter{Brand: "ACME"}, 1, 20)
		require.NoError(t, err)
		assert.Len(t, page.Reports, 2)
	})

	t.Run("Should filter by user", func(t *testing.T) {
		page, err := svc.List(ctx(), ReportFilter{UserID: bob.ID}, 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Reports, 1)
		assert.Equal(t, bob.ID, page.Reports[0].UserID)
	})

	t.Run("Should paginate with totals", func(t *testing.T) {
		page, err := svc.List(ctx(), ReportFilter{}, 1, 2)
		require.NoError(t, err)
		assert.Len(t, page.Reports, 2)
		assert.EqualValues(t, 3, page.Pagination.Total)
		assert.Equal(t, 2, page.Pagination.Pages)
		assert.Equal(t, 1, page.Pagination.Current)

		page, err = svc.List(ctx(), ReportFilter{}, 2, 2)
		require.NoError(t, err)
		assert.Len(t, page.Reports, 1)
	})

	t.Run("Should order user history by week start descending", func(t *testing.T) {
		page, err := svc.ListByUser(ctx(), jane.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Reports, 2)
		assert.True(t, page.Reports[0].WeekStartDate.After(page.Reports[1].WeekStartDate))
	})
}

func TestReportService_Ownership(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	jane := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)
	bob := seedUser(t, db, "Bob", "bob@company.com", model.RoleStaff)
	report := seedReport(t, db, jane.ID, "Acme", model.StatusSubmitted, 0)

	_, err := svc.ByIDForUser(ctx(), report.ID, jane.ID)
	require.NoError(t, err)

	_, err = svc.ByIDForUser(ctx(), report.ID, bob.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
