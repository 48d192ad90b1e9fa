package services

import (
	"context"
	"sort"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

// AnalyticsService turns raw submission/interview rows into the dashboard
// numbers. Every call recomputes from the store; nothing is cached.
type AnalyticsService interface {
	DashboardStats(ctx context.Context, actor Actor, r DateRange) (*DashboardStats, error)
	ConsultantAnalytics(ctx context.Context, actor Actor, r DateRange, g Granularity) ([]ConsultantAnalytics, error)
	RecruiterAnalytics(ctx context.Context, actor Actor, r DateRange, g Granularity) ([]RecruiterAnalytics, error)
	PipelineAnalytics(ctx context.Context, actor Actor, r DateRange, g Granularity) (*PipelineAnalytics, error)
	VendorAnalytics(ctx context.Context, actor Actor, r DateRange) (*VendorAnalyticsReport, error)
	FollowUpReminders(ctx context.Context, actor Actor, overdueOnly bool) ([]FollowUpReminder, error)
}

type analyticsService struct {
	analytics   pgrepo.AnalyticsRepository
	submissions pgrepo.SubmissionRepository
	consultants pgrepo.ConsultantRepository
	vendors     pgrepo.VendorRepository
	users       pgrepo.UserRepository
	clock       func() time.Time
}

func NewAnalyticsService(
	analytics pgrepo.AnalyticsRepository,
	submissions pgrepo.SubmissionRepository,
	consultants pgrepo.ConsultantRepository,
	vendors pgrepo.VendorRepository,
	users pgrepo.UserRepository,
) AnalyticsService {
	return &analyticsService{
		analytics:   analytics,
		submissions: submissions,
		consultants: consultants,
		vendors:     vendors,
		users:       users,
		clock:       time.Now,
	}
}

func (s *analyticsService) DashboardStats(ctx context.Context, actor Actor, r DateRange) (*DashboardStats, error) {
	const op = "AnalyticsService.DashboardStats"

	counts, err := s.analytics.StatusCounts(ctx, actor.ScopeOwner(), r.From, r.To)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to compute dashboard stats", err)
	}
	var stats DashboardStats
	for status, n := range counts {
		stats.add(status, int(n))
	}
	return &stats, nil
}

func (s *analyticsService) ConsultantAnalytics(ctx context.Context, actor Actor, r DateRange, g Granularity) ([]ConsultantAnalytics, error) {
	const op = "AnalyticsService.ConsultantAnalytics"

	facts, err := s.analytics.SubmissionFacts(ctx, actor.ScopeOwner(), r.From, r.To)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load submissions", err)
	}
	names, err := s.consultantNames(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load consultants", err)
	}

	byConsultant := make(map[string]*ConsultantAnalytics)
	dates := make(map[string][]time.Time)
	for _, f := range facts {
		ca, ok := byConsultant[f.ConsultantID]
		if !ok {
			ca = &ConsultantAnalytics{
				ConsultantID:   f.ConsultantID,
				ConsultantName: names[f.ConsultantID],
			}
			byConsultant[f.ConsultantID] = ca
		}
		ca.Total++
		ca.Breakdown.add(f.Status, 1)
		if g != GranularityNone {
			dates[f.ConsultantID] = append(dates[f.ConsultantID], f.SubmissionDate)
		}
	}

	out := make([]ConsultantAnalytics, 0, len(byConsultant))
	for id, ca := range byConsultant {
		if g != GranularityNone {
			ca.Trend = bucketSeries(dates[id], g)
		}
		out = append(out, *ca)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].ConsultantName < out[j].ConsultantName
	})
	return out, nil
}

func (s *analyticsService) RecruiterAnalytics(ctx context.Context, actor Actor, r DateRange, g Granularity) ([]RecruiterAnalytics, error) {
	const op = "AnalyticsService.RecruiterAnalytics"

	facts, err := s.analytics.SubmissionFacts(ctx, actor.ScopeOwner(), r.From, r.To)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load submissions", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load users", err)
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	byRecruiter := make(map[string]*RecruiterAnalytics)
	consultantsSeen := make(map[string]map[string]struct{})
	dates := make(map[string][]time.Time)
	for _, f := range facts {
		ra, ok := byRecruiter[f.CreatedBy]
		if !ok {
			ra = &RecruiterAnalytics{
				RecruiterID:   f.CreatedBy,
				RecruiterName: names[f.CreatedBy],
			}
			byRecruiter[f.CreatedBy] = ra
			consultantsSeen[f.CreatedBy] = make(map[string]struct{})
		}
		ra.Total++
		ra.Breakdown.add(f.Status, 1)
		consultantsSeen[f.CreatedBy][f.ConsultantID] = struct{}{}
		if g != GranularityNone {
			dates[f.CreatedBy] = append(dates[f.CreatedBy], f.SubmissionDate)
		}
	}

	out := make([]RecruiterAnalytics, 0, len(byRecruiter))
	for id, ra := range byRecruiter {
		ra.Consultants = len(consultantsSeen[id])
		ra.SuccessRate = roundPct(ra.Breakdown.Hired, ra.Total)
		if g != GranularityNone {
			ra.Trend = bucketSeries(dates[id], g)
		}
		out = append(out, *ra)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].RecruiterName < out[j].RecruiterName
	})
	return out, nil
}

func (s *analyticsService) PipelineAnalytics(ctx context.Context, actor Actor, r DateRange, g Granularity) (*PipelineAnalytics, error) {
	const op = "AnalyticsService.PipelineAnalytics"

	facts, err := s.analytics.SubmissionFacts(ctx, actor.ScopeOwner(), r.From, r.To)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load submissions", err)
	}

	p := &PipelineAnalytics{Total: len(facts)}
	var dates []time.Time
	for _, f := range facts {
		p.Breakdown.add(f.Status, 1)
		if g != GranularityNone {
			dates = append(dates, f.SubmissionDate)
		}
	}
	p.WaitingForVendorUpdate = p.Breakdown.Submitted + p.Breakdown.UnderReview
	if g != GranularityNone {
		p.Trend = bucketSeries(dates, g)
	}
	p.ConversionRates = ConversionRates{
		SubmittedToInterview: roundPct(p.Breakdown.InterviewScheduled, p.Total),
		InterviewToHired:     roundPct(p.Breakdown.Hired, p.Breakdown.InterviewScheduled),
		OverallSuccess:       roundPct(p.Breakdown.Hired, p.Total),
	}
	return p, nil
}

func (s *analyticsService) VendorAnalytics(ctx context.Context, actor Actor, r DateRange) (*VendorAnalyticsReport, error) {
	const op = "AnalyticsService.VendorAnalytics"

	owner := actor.ScopeOwner()
	facts, err := s.analytics.SubmissionFacts(ctx, owner, r.From, r.To)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load submissions", err)
	}
	interviews, err := s.analytics.InterviewFacts(ctx, owner, r.From, r.To)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load interviews", err)
	}
	vendors, err := s.vendors.List(ctx, pgrepo.VendorFilter{CreatedBy: owner})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load vendors", err)
	}

	byVendor := make(map[string]*VendorAnalytics, len(vendors))
	for _, v := range vendors {
		byVendor[v.ID] = &VendorAnalytics{VendorID: v.ID, VendorName: v.Name}
	}

	var (
		dates             []time.Time
		totalPlacements   int
		responseDaysSum   int
		responseDaysCount int
	)
	for _, f := range facts {
		va, ok := byVendor[f.VendorID]
		if !ok {
			va = &VendorAnalytics{VendorID: f.VendorID}
			byVendor[f.VendorID] = va
		}
		va.Submissions++
		if f.Status == models.SubmissionHired {
			va.Placements++
			totalPlacements++
		}
		if f.LastVendorContact != nil {
			responseDaysSum += calendarDays(f.SubmissionDate, *f.LastVendorContact)
			responseDaysCount++
		}
		dates = append(dates, f.SubmissionDate)
	}
	for _, iv := range interviews {
		if va, ok := byVendor[iv.VendorID]; ok {
			va.Interviews++
		}
	}

	out := make([]VendorAnalytics, 0, len(byVendor))
	for _, va := range byVendor {
		va.PlacementRate = roundPct(va.Placements, va.Submissions)
		out = append(out, *va)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Submissions != out[j].Submissions {
			return out[i].Submissions > out[j].Submissions
		}
		return out[i].VendorName < out[j].VendorName
	})

	summary := VendorSummary{
		OverallPlacementRate: roundPct(totalPlacements, len(facts)),
		TopSpecialty:         topSpecialty(vendors),
	}
	for _, v := range vendors {
		if v.Status == models.VendorActive {
			summary.ActiveVendors++
		}
	}
	if responseDaysCount > 0 {
		summary.AvgResponseDays = responseDaysSum / responseDaysCount
	}

	return &VendorAnalyticsReport{
		Vendors: out,
		Trend:   bucketSeries(dates, GranularityMonthly),
		Summary: summary,
	}, nil
}

// topSpecialty is the modal specialty among active vendors, ties broken
// alphabetically.
func topSpecialty(vendors []models.Vendor) string {
	counts := make(map[string]int)
	for _, v := range vendors {
		if v.Status != models.VendorActive {
			continue
		}
		for _, sp := range v.Specialties {
			counts[sp]++
		}
	}
	best := ""
	for sp, n := range counts {
		if best == "" || n > counts[best] || (n == counts[best] && sp < best) {
			best = sp
		}
	}
	return best
}

func (s *analyticsService) FollowUpReminders(ctx context.Context, actor Actor, overdueOnly bool) ([]FollowUpReminder, error) {
	const op = "AnalyticsService.FollowUpReminders"

	now := s.clock().UTC()
	var dueBefore *time.Time
	if overdueOnly {
		dueBefore = &now
	}
	subs, err := s.submissions.PendingFollowUps(ctx, actor.ScopeOwner(), dueBefore)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load follow-ups", err)
	}

	out := make([]FollowUpReminder, 0, len(subs))
	for _, sub := range subs {
		rem := FollowUpReminder{Submission: sub}
		if sub.LastVendorContact != nil {
			rem.DaysSinceContact = calendarDays(*sub.LastVendorContact, now)
		}
		if sub.NextFollowUpDate != nil {
			rem.DaysPastDue = calendarDays(*sub.NextFollowUpDate, now)
		}
		out = append(out, rem)
	}
	return out, nil
}

// consultantNames maps every consultant id to its display name. The pool
// is shared, so the lookup is never actor-scoped: a recruiter's facts may
// reference consultants an admin created.
func (s *analyticsService) consultantNames(ctx context.Context) (map[string]string, error) {
	consultants, err := s.consultants.List(ctx, pgrepo.ConsultantFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(consultants))
	for _, c := range consultants {
		names[c.ID] = c.FullName
	}
	return names, nil
}
