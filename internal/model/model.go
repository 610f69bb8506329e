package model

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Position string `json:"position" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type DeliverableInput struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Status         string     `json:"status" binding:"omitempty,oneof=Completed 'In Progress' Pending Cancelled"`
	CompletionDate *time.Time `json:"completionDate"`
}

type TargetInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
}

// KPIInput carries both the snapshot embedded in the report and,
// optionally, the full metrics bundle that spawns a standalone record.
type KPIInput struct {
	EngagementRate float64        `json:"engagementRate"`
	Reach          int64          `json:"reach"`
	Conversions    int64          `json:"conversions"`
	CustomMetrics  []CustomMetric `json:"customMetrics"`
	Metrics        *KPIMetrics    `json:"metrics"`
	CustomKPIs     []CustomKPI    `json:"customKPIs"`
}

type CreateReportRequest struct {
	Brand           string             `json:"brand" binding:"required"`
	Deliverables    []DeliverableInput `json:"deliverables" binding:"required,min=1,dive"`
	NextWeekTargets []TargetInput      `json:"nextWeekTargets" binding:"required,min=1,dive"`
	AdditionalNotes string             `json:"additionalNotes"`
	KPIs            *KPIInput          `json:"kpis"`
}

type ReviewRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminComments string `json:"adminComments"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Position *string `json:"position" binding:"omitempty"`
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type ReportPage struct {
	Reports    []WeeklyReport `json:"reports"`
	Pagination Pagination     `json:"pagination"`
}

// ReportSummary is the projection used for dashboard recents.
type ReportSummary struct {
	ID            uint      `json:"id"`
	WeekStartDate time.Time `json:"weekStartDate"`
	Brand         string    `json:"brand"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UserName      string    `json:"userName,omitempty"`
	Position      string    `json:"position,omitempty"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TopPerformer struct {
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	ReportCount int64  `json:"reportCount"`
}

type UserStats struct {
	TotalReports    int64 `json:"totalReports"`
	ApprovedReports int64 `json:"approvedReports"`
	PendingReports  int64 `json:"pendingReports"`
	NeedsRevision   int64 `json:"needsRevision"`
	ApprovalRate    int   `json:"approvalRate"`
}

type AdminStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalReports    int64 `json:"totalReports"`
	PendingReports  int64 `json:"pendingReports"`
	ApprovedReports int64 `json:"approvedReports"`
}

type AdminDashboard struct {
	Stats           AdminStats      `json:"stats"`
	RecentReports   []ReportSummary `json:"recentReports"`
	ReportsByStatus []StatusCount   `json:"reportsByStatus"`
	TopPerformers   []TopPerformer  `json:"topPerformers"`
}
