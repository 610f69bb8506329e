// Package pdf renders textual report summaries to a byte stream. It is
// a leaf collaborator: it reads models and writes a document, nothing
// else.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"staff-weekly/internal/model"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "Mon Jan 02 2006"

// Filename builds an attachment name like Weekly_Report_Jane_Doe_2026-08-24.pdf.
func Filename(prefix, name string, date time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf",
		prefix,
		strings.ReplaceAll(strings.TrimSpace(name), " ", "_"),
		date.Format("2006-01-02"))
}

// Report renders one weekly report.
func Report(w io.Writer, r *model.WeeklyReport) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	title(doc, "Weekly Report")

	if r.User != nil {
		line(doc, "Employee: %s", r.User.Name)
		line(doc, "Position: %s", r.User.Position)
		line(doc, "Email: %s", r.User.Email)
	}
	line(doc, "Week: %s - %s", r.WeekStartDate.Format(dateLayout), r.WeekEndDate.Format(dateLayout))
	line(doc, "Brand: %s", r.Brand)
	line(doc, "Status: %s", r.Status)

	heading(doc, "Deliverables Completed:")
	for i, d := range r.Deliverables {
		line(doc, "%d. %s", i+1, d.Title)
		indented(doc, "Description: %s", d.Description)
		indented(doc, "Status: %s", d.Status)
	}

	heading(doc, "Next Week Targets:")
	for i, t := range r.NextWeekTargets {
		line(doc, "%d. %s", i+1, t.Title)
		indented(doc, "Description: %s", t.Description)
		indented(doc, "Due Date: %s", t.DueDate.Format(dateLayout))
		indented(doc, "Priority: %s", t.Priority)
	}

	if r.KPIs.EngagementRate != 0 || r.KPIs.Reach != 0 || r.KPIs.Conversions != 0 {
		heading(doc, "KPIs:")
		if r.KPIs.EngagementRate != 0 {
			indented(doc, "Engagement Rate: %.2f%%", r.KPIs.EngagementRate)
		}
		if r.KPIs.Reach != 0 {
			indented(doc, "Reach: %d", r.KPIs.Reach)
		}
		if r.KPIs.Conversions != 0 {
			indented(doc, "Conversions: %d", r.KPIs.Conversions)
		}
		for _, m := range r.KPIs.CustomMetrics {
			indented(doc, "%s: %g %s", m.Name, m.Value, m.Unit)
		}
	}

	if r.AdditionalNotes != "" {
		heading(doc, "Additional Notes:")
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 6, r.AdditionalNotes, "", "L", false)
	}

	return doc.Output(w)
}

// UserSummary renders an employee performance report over their most
// recent reports.
func UserSummary(w io.Writer, u *model.User, reports []model.WeeklyReport) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	title(doc, "Employee Performance Report")

	line(doc, "Name: %s", u.Name)
	line(doc, "Position: %s", u.Position)
	line(doc, "Email: %s", u.Email)
	line(doc, "Department: %s", u.Department)
	line(doc, "Date Joined: %s", u.CreatedAt.Format(dateLayout))
	line(doc, "Report Generated: %s", time.Now().Format(dateLayout))

	total := len(reports)
	var approved, pending int
	for _, r := range reports {
		switch r.Status {
		case model.StatusApproved:
			approved++
		case model.StatusSubmitted:
			pending++
		}
	}
	rate := 0
	if total > 0 {
		rate = int(float64(approved)/float64(total)*100 + 0.5)
	}

	heading(doc, "Summary Statistics:")
	indented(doc, "Total Reports Submitted: %d", total)
	indented(doc, "Approved Reports: %d", approved)
	indented(doc, "Pending Reports: %d", pending)
	indented(doc, "Approval Rate: %d%%", rate)

	if total > 0 {
		heading(doc, "Recent Reports:")
		n := total
		if n > 5 {
			n = 5
		}
		for i, r := range reports[:n] {
			line(doc, "%d. Week of %s", i+1, r.WeekStartDate.Format(dateLayout))
			indented(doc, "Brand: %s", r.Brand)
			indented(doc, "Status: %s", r.Status)
			indented(doc, "Deliverables: %d", len(r.Deliverables))
		}
	}

	return doc.Output(w)
}

func title(doc *gofpdf.Fpdf, s string) {
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, s, "", 1, "L", false, 0, "")
	doc.Ln(4)
	doc.SetFont("Helvetica", "", 11)
}

func heading(doc *gofpdf.Fpdf, s string) {
	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
}

func line(doc *gofpdf.Fpdf, format string, args ...any) {
	doc.CellFormat(0, 6, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
}

func indented(doc *gofpdf.Fpdf, format string, args ...any) {
	doc.CellFormat(8, 6, "", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf(format, args...), "", 1, "L", false, 0, "")
}
