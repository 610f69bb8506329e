package model

import "time"

// Report review statuses. Creation always yields Submitted; Draft is
// declared in the schema but no current flow produces it.
const (
	StatusDraft         = "Draft"
	StatusSubmitted     = "Submitted"
	StatusUnderReview   = "Under Review"
	StatusApproved      = "Approved"
	StatusNeedsRevision = "Needs Revision"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

const (
	DeliverableCompleted  = "Completed"
	DeliverableInProgress = "In Progress"
	DeliverablePending    = "Pending"
	DeliverableCancelled  = "Cancelled"

	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Positions is the fixed set of labels a user may hold.
var Positions = []string{
	"Social Media Manager",
	"Content Creator",
	"Video Editor",
	"Creative Designer",
	"SEO",
	"Article writer",
	"Administrator",
	"Other",
}

func ValidPosition(p string) bool {
	for _, v := range Positions {
		if v == p {
			return true
		}
	}
	return false
}

// ReviewTarget reports whether s is a status an admin review may set.
func ReviewTarget(s string) bool {
	switch s {
	case StatusUnderReview, StatusApproved, StatusNeedsRevision:
		return true
	}
	return false
}

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password       string    `json:"-"`
	Position       string    `json:"position"`
	Role           string    `gorm:"default:staff" json:"role"`
	Department     string    `gorm:"default:Marketing" json:"department"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Deliverable is a work item reported for the current week. Owned by
// its report, stored inline as JSON.
type Deliverable struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CompletionDate time.Time `json:"completionDate"`
}

// Target is a planned work item for the upcoming week.
type Target struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
}

type CustomMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// KPISnapshot is the metrics bundle embedded in one report.
type KPISnapshot struct {
	EngagementRate float64        `json:"engagementRate"`
	Reach          int64          `json:"reach"`
	Conversions    int64          `json:"conversions"`
	CustomMetrics  []CustomMetric `gorm:"serializer:json" json:"customMetrics"`
}

type WeeklyReport struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          uint          `gorm:"index:idx_user_week" json:"userId"`
	WeekStartDate   time.Time     `gorm:"index:idx_user_week" json:"weekStartDate"`
	WeekEndDate     time.Time     `json:"weekEndDate"`
	Brand           string        `gorm:"index" json:"brand"`
	Deliverables    []Deliverable `gorm:"serializer:json" json:"deliverables"`
	NextWeekTargets []Target      `gorm:"serializer:json" json:"nextWeekTargets"`
	AdditionalNotes string        `json:"additionalNotes"`
	KPIs            KPISnapshot   `gorm:"embedded;embeddedPrefix:kpi_" json:"kpis"`
	Status          string        `gorm:"index;default:Draft" json:"status"`
	AdminComments   string        `json:"adminComments"`
	SubmittedAt     *time.Time    `json:"submittedAt"`
	ReviewedAt      *time.Time    `json:"reviewedAt"`
	ReviewedBy      *uint         `json:"reviewedBy"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	User     *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reviewer *User `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

// KPIMetrics is the full per-report metrics bundle on a standalone
// KPI record, wider than the embedded snapshot.
type KPIMetrics struct {
	SocialMediaFollowers int64   `json:"socialMediaFollowers"`
	EngagementRate       float64 `json:"engagementRate"`
	Reach                int64   `json:"reach"`
	Impressions          int64   `json:"impressions"`
	Clicks               int64   `json:"clicks"`
	Conversions          int64   `json:"conversions"`
	ContentCreated       int64   `json:"contentCreated"`
	CampaignsLaunched    int64   `json:"campaignsLaunched"`
}

type CustomKPI struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Target float64 `json:"target"`
}

// KPIRecord is created alongside a report when a full metrics payload
// is supplied. Its user and report references never change.
type KPIRecord struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index" json:"userId"`
	ReportID    uint        `gorm:"index" json:"reportId"`
	Metrics     KPIMetrics  `gorm:"embedded;embeddedPrefix:m_" json:"metrics"`
	CustomKPIs  []CustomKPI `gorm:"serializer:json" json:"customKPIs"`
	PeriodStart time.Time   `json:"periodStart"`
	PeriodEnd   time.Time   `json:"periodEnd"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (User) TableName() string         { return "users" }
func (WeeklyReport) TableName() string { return "weekly_reports" }
func (KPIRecord) TableName() string    { return "kpi_records" }
