package reports

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
)

type recruiterRow struct {
	Name        string
	Submissions int
	Consultants int
	Vendors     int
}

type reportData struct {
	Title       string
	RangeLabel  string
	Total       int
	Consultants int
	Vendors     int
	Recruiters  int
	ByRecruiter []recruiterRow
	Rows        []models.ReportRow
}

var statusColors = map[models.SubmissionStatus]string{
	models.SubmissionSubmitted:          "#2563eb",
	models.SubmissionUnderReview:        "#d97706",
	models.SubmissionInterviewScheduled: "#7c3aed",
	models.SubmissionHired:              "#16a34a",
	models.SubmissionRejected:           "#dc2626",
	models.SubmissionWithdrawn:          "#6b7280",
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"fmtDate": func(t time.Time) string { return t.Format("Jan 2, 2006") },
	"badgeColor": func(s models.SubmissionStatus) string {
		if c, ok := statusColors[s]; ok {
			return c
		}
		return "#6b7280"
	},
	"statusLabel": func(s models.SubmissionStatus) string {
		return strings.ReplaceAll(string(s), "_", " ")
	},
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;color:#111;margin:0;padding:24px;">
<h2 style="margin:0 0 4px 0;">{{.Title}}</h2>
<p style="margin:0 0 16px 0;color:#555;">{{.RangeLabel}}</p>

<table cellpadding="8" cellspacing="0" style="border-collapse:collapse;margin-bottom:24px;">
<tr>
<td style="border:1px solid #ddd;"><strong>{{.Total}}</strong> submissions</td>
<td style="border:1px solid #ddd;"><strong>{{.Consultants}}</strong> consultants</td>
<td style="border:1px solid #ddd;"><strong>{{.Vendors}}</strong> vendors</td>
<td style="border:1px solid #ddd;"><strong>{{.Recruiters}}</strong> recruiters</td>
</tr>
</table>

{{if eq .Total 0}}
<p style="color:#555;">No submissions were recorded in this period.</p>
{{else}}
<h3 style="margin:0 0 8px 0;">By recruiter</h3>
<table cellpadding="6" cellspacing="0" style="border-collapse:collapse;margin-bottom:24px;width:100%;">
<tr style="background:#f3f4f6;text-align:left;">
<th style="border:1px solid #ddd;">Recruiter</th>
<th style="border:1px solid #ddd;">Submissions</th>
<th style="border:1px solid #ddd;">Consultants</th>
<th style="border:1px solid #ddd;">Vendors</th>
</tr>
{{range .ByRecruiter}}
<tr>
<td style="border:1px solid #ddd;">{{.Name}}</td>
<td style="border:1px solid #ddd;">{{.Submissions}}</td>
<td style="border:1px solid #ddd;">{{.Consultants}}</td>
<td style="border:1px solid #ddd;">{{.Vendors}}</td>
</tr>
{{end}}
</table>

<h3 style="margin:0 0 8px 0;">Submissions</h3>
<table cellpadding="6" cellspacing="0" style="border-collapse:collapse;width:100%;">
<tr style="background:#f3f4f6;text-align:left;">
<th style="border:1px solid #ddd;">Date</th>
<th style="border:1px solid #ddd;">Consultant</th>
<th style="border:1px solid #ddd;">Position</th>
<th style="border:1px solid #ddd;">Client</th>
<th style="border:1px solid #ddd;">End Client</th>
<th style="border:1px solid #ddd;">Vendor</th>
<th style="border:1px solid #ddd;">Status</th>
<th style="border:1px solid #ddd;">Submitted By</th>
</tr>
{{range .Rows}}
<tr>
<td style="border:1px solid #ddd;">{{fmtDate .SubmissionDate}}</td>
<td style="border:1px solid #ddd;">{{.ConsultantName}}</td>
<td style="border:1px solid #ddd;">{{.PositionTitle}}</td>
<td style="border:1px solid #ddd;">{{.ClientName}}</td>
<td style="border:1px solid #ddd;">{{.EndClientName}}</td>
<td style="border:1px solid #ddd;">{{.VendorName}}</td>
<td style="border:1px solid #ddd;"><span style="color:#fff;background:{{badgeColor .Status}};padding:2px 8px;border-radius:10px;font-size:12px;">{{statusLabel .Status}}</span></td>
<td style="border:1px solid #ddd;">{{.SubmittedBy}}</td>
</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

// Generate renders the submission rows of one report period into a
// self-contained HTML document. Pure: no store or channel access.
func Generate(rows []models.ReportRow, p Period, from, to time.Time) (subject, html string, err error) {
	data := buildReportData(rows, p, from, to)

	var b strings.Builder
	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", "", err
	}
	subject = fmt.Sprintf("%s Submission Report – %s", p.Label(), data.RangeLabel)
	return subject, b.String(), nil
}

func buildReportData(rows []models.ReportRow, p Period, from, to time.Time) reportData {
	consultants := make(map[string]struct{})
	vendors := make(map[string]struct{})
	type agg struct {
		submissions int
		consultants map[string]struct{}
		vendors     map[string]struct{}
	}
	recruiters := make(map[string]*agg)

	for _, r := range rows {
		consultants[r.ConsultantName] = struct{}{}
		vendors[r.VendorName] = struct{}{}
		a, ok := recruiters[r.SubmittedBy]
		if !ok {
			a = &agg{consultants: make(map[string]struct{}), vendors: make(map[string]struct{})}
			recruiters[r.SubmittedBy] = a
		}
		a.submissions++
		a.consultants[r.ConsultantName] = struct{}{}
		a.vendors[r.VendorName] = struct{}{}
	}

	byRecruiter := make([]recruiterRow, 0, len(recruiters))
	for name, a := range recruiters {
		byRecruiter = append(byRecruiter, recruiterRow{
			Name:        name,
			Submissions: a.submissions,
			Consultants: len(a.consultants),
			Vendors:     len(a.vendors),
		})
	}
	sort.Slice(byRecruiter, func(i, j int) bool {
		if byRecruiter[i].Submissions != byRecruiter[j].Submissions {
			return byRecruiter[i].Submissions > byRecruiter[j].Submissions
		}
		return byRecruiter[i].Name < byRecruiter[j].Name
	})

	// to is exclusive; the last covered day is the day before it.
	lastDay := to.AddDate(0, 0, -1)
	rangeLabel := fmt.Sprintf("%s – %s", from.Format("Jan 2, 2006"), lastDay.Format("Jan 2, 2006"))
	if p == PeriodDaily {
		rangeLabel = from.Format("Jan 2, 2006")
	}

	return reportData{
		Title:       p.Label() + " Submission Report",
		RangeLabel:  rangeLabel,
		Total:       len(rows),
		Consultants: len(consultants),
		Vendors:     len(vendors),
		Recruiters:  len(recruiters),
		ByRecruiter: byRecruiter,
		Rows:        rows,
	}
}
