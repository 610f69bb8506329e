package service

import (
	"testing"

	"staff-weekly/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalRate(t *testing.T) {
	assert.Equal(t, 0, approvalRate(0, 0))
	assert.Equal(t, 67, approvalRate(2, 3))
	assert.Equal(t, 33, approvalRate(1, 3))
	assert.Equal(t, 100, approvalRate(4, 4))
	assert.Equal(t, 50, approvalRate(1, 2))
}

func TestKPIService_UserStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewKPIService(db)

	t.Run("Should be all zeroes for a user with no reports", func(t *testing.T) {
		u := seedUser(t, db, "Empty", "empty@company.com", model.RoleStaff)
		stats, err := svc.UserStats(ctx(), u.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, stats.TotalReports)
		assert.Equal(t, 0, stats.ApprovalRate)
	})

	t.Run("Should count by status and round the approval rate", func(t *testing.T) {
		u := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)
		seedReport(t, db, u.ID, "Acme", model.StatusApproved, 0)
		seedReport(t, db, u.ID, "Acme", model.StatusApproved, -1)
		seedReport(t, db, u.ID, "Acme", model.StatusSubmitted, -2)

		stats, err := svc.UserStats(ctx(), u.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 3, stats.TotalReports)
		assert.EqualValues(t, 2, stats.ApprovedReports)
		assert.EqualValues(t, 1, stats.PendingReports)
		assert.EqualValues(t, 0, stats.NeedsRevision)
		assert.Equal(t, 67, stats.ApprovalRate)
	})
}

func TestKPIService_Dashboard(t *testing.T) {
	db := newTestDB(t)
	svc := NewKPIService(db)

	jane := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)
	bob := seedUser(t, db, "Bob", "bob@company.com", model.RoleStaff)
	admin := seedUser(t, db, "Boss", "boss@company.com", model.RoleAdmin)
	inactive := seedUser(t, db, "Gone", "gone@company.com", model.RoleStaff)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	seedReport(t, db, jane.ID, "Acme", model.StatusApproved, 0)
	seedReport(t, db, jane.ID, "Acme", model.StatusApproved, -1)
	seedReport(t, db, jane.ID, "Acme", model.StatusApproved, -2)
	seedReport(t, db, bob.ID, "Globex", model.StatusApproved, 0)
	seedReport(t, db, bob.ID, "Globex", model.StatusSubmitted, -1)
	_ = admin

	d, err := svc.Dashboard(ctx())
	require.NoError(t, err)

	t.Run("Should count active staff and reports", func(t *testing.T) {
		assert.EqualValues(t, 2, d.Stats.TotalUsers) // active staff only
		assert.EqualValues(t, 5, d.Stats.TotalReports)
		assert.EqualValues(t, 1, d.Stats.PendingReports)
		assert.EqualValues(t, 4, d.Stats.ApprovedReports)
	})

	t.Run("Should group reports by status", func(t *testing.T) {
		byStatus := map[string]int64{}
		for _, sc := range d.ReportsByStatus {
			byStatus[sc.Status] = sc.Count
		}
		assert.EqualValues(t, 4, byStatus[model.StatusApproved])
		assert.EqualValues(t, 1, byStatus[model.StatusSubmitted])
	})

	t.Run("Should rank top performers by approved count", func(t *testing.T) {
		require.GreaterOrEqual(t, len(d.TopPerformers), 2)
		assert.Equal(t, "Jane", d.TopPerformers[0].Name)
		assert.EqualValues(t, 3, d.TopPerformers[0].ReportCount)
		assert.Equal(t, "Bob", d.TopPerformers[1].Name)
		assert.EqualValues(t, 1, d.TopPerformers[1].ReportCount)
	})

	t.Run("Should project recent reports with owner identity", func(t *testing.T) {
		require.Len(t, d.RecentReports, 5)
		for _, r := range d.RecentReports {
			assert.NotEmpty(t, r.UserName)
			assert.NotEmpty(t, r.Brand)
			assert.NotEmpty(t, r.Status)
		}
	})
}

func TestKPIService_UserRecent(t *testing.T) {
	db := newTestDB(t)
	svc := NewKPIService(db)
	u := seedUser(t, db, "Jane", "jane@company.com", model.RoleStaff)
	for i := 0; i < 7; i++ {
		seedReport(t, db, u.ID, "Acme", model.StatusSubmitted, -i)
	}

	recent, err := svc.UserRecent(ctx(), u.ID, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}
