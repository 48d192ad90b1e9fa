package services

import (
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type Granularity string

const (
	GranularityNone    Granularity = ""
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityNone, GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(s), nil
	}
	return GranularityNone, utils.E(utils.CodeInvalidArgument, "ParseGranularity", "granularity must be daily, weekly or monthly", nil)
}

// StatusBreakdown is the five-way submission status count every analytics
// view shares. Withdrawn submissions count toward totals but have no
// bucket of their own.
type StatusBreakdown struct {
	Submitted          int `json:"submitted"`
	UnderReview        int `json:"under_review"`
	InterviewScheduled int `json:"interview_scheduled"`
	Hired              int `json:"hired"`
	Rejected           int `json:"rejected"`
}

func (b *StatusBreakdown) add(status models.SubmissionStatus, n int) {
	switch status {
	case models.SubmissionSubmitted:
		b.Submitted += n
	case models.SubmissionUnderReview:
		b.UnderReview += n
	case models.SubmissionInterviewScheduled:
		b.InterviewScheduled += n
	case models.SubmissionHired:
		b.Hired += n
	case models.SubmissionRejected:
		b.Rejected += n
	}
}

type TimePoint struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type DateRange struct {
	From *time.Time
	To   *time.Time
}

type DashboardStats struct {
	StatusBreakdown
}

type ConsultantAnalytics struct {
	ConsultantID   string          `json:"consultant_id"`
	ConsultantName string          `json:"consultant_name"`
	Total          int             `json:"total_submissions"`
	Breakdown      StatusBreakdown `json:"breakdown"`
	Trend          []TimePoint     `json:"trend,omitempty"`
}

type RecruiterAnalytics struct {
	RecruiterID   string          `json:"recruiter_id"`
	RecruiterName string          `json:"recruiter_name"`
	Total         int             `json:"total_submissions"`
	Consultants   int             `json:"distinct_consultants"`
	Breakdown     StatusBreakdown `json:"breakdown"`
	SuccessRate   int             `json:"success_rate"`
	Trend         []TimePoint     `json:"trend,omitempty"`
}

type ConversionRates struct {
	SubmittedToInterview int `json:"submitted_to_interview"`
	InterviewToHired     int `json:"interview_to_hired"`
	OverallSuccess       int `json:"overall_success"`
}

type PipelineAnalytics struct {
	Total                  int             `json:"total_submissions"`
	Breakdown              StatusBreakdown `json:"breakdown"`
	WaitingForVendorUpdate int             `json:"waiting_for_vendor_update"`
	Trend                  []TimePoint     `json:"trend,omitempty"`
	ConversionRates        ConversionRates `json:"conversion_rates"`
}

type VendorAnalytics struct {
	VendorID      string `json:"vendor_id"`
	VendorName    string `json:"vendor_name"`
	Submissions   int    `json:"submissions"`
	Interviews    int    `json:"interviews"`
	Placements    int    `json:"placements"`
	PlacementRate int    `json:"placement_rate"`
}

type VendorSummary struct {
	ActiveVendors        int    `json:"active_vendors"`
	OverallPlacementRate int    `json:"overall_placement_rate"`
	TopSpecialty         string `json:"top_specialty"`
	AvgResponseDays      int    `json:"avg_response_days"`
}

type VendorAnalyticsReport struct {
	Vendors []VendorAnalytics `json:"vendors"`
	Trend   []TimePoint       `json:"trend"`
	Summary VendorSummary     `json:"summary"`
}

type FollowUpReminder struct {
	Submission       models.Submission `json:"submission"`
	DaysSinceContact int               `json:"days_since_contact"`
	DaysPastDue      int               `json:"days_past_due"`
}
