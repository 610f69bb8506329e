package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"staff-weekly/internal/model"
	"staff-weekly/internal/period"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.WeeklyReport{}, &model.KPIRecord{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()
	u := &model.User{
		Name:     name,
		Email:    email,
		Password: "x",
		Position: "Content Creator",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedReport(t *testing.T, db *gorm.DB, userID uint, brand, status string, weekOffset int) *model.WeeklyReport {
	t.Helper()
	week := period.Of(time.Now().AddDate(0, 0, 7*weekOffset))
	now := time.Now()
	r := &model.WeeklyReport{
		UserID:        userID,
		WeekStartDate: week.Start,
		WeekEndDate:   week.End,
		Brand:         brand,
		Deliverables: []model.Deliverable{
			{Title: "Post", Description: "IG post", Status: model.DeliverableCompleted, CompletionDate: now},
		},
		NextWeekTargets: []model.Target{
			{Title: "Campaign", Description: "Launch", DueDate: now.AddDate(0, 0, 7), Priority: model.PriorityHigh},
		},
		Status:      status,
		SubmittedAt: &now,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createRequest() *model.CreateReportRequest {
	due := time.Now().AddDate(0, 0, 7)
	return &model.CreateReportRequest{
		Brand: "Acme",
		Deliverables: []model.DeliverableInput{
			{Title: "Post", Description: "IG post", Status: model.DeliverableCompleted},
		},
		NextWeekTargets: []model.TargetInput{
			{Title: "Campaign", Description: "Launch", DueDate: due, Priority: model.PriorityHigh},
		},
	}
}

func ctx() context.Context { return context.Background() }
