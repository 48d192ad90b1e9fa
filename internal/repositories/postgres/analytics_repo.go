package postgres

import (
	"context"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"gorm.io/gorm"
)

// SubmissionFact is the lean projection the aggregation layer works from.
type SubmissionFact struct {
	ID             string
	ConsultantID   string
	VendorID       string
	CreatedBy      string
	Status         models.SubmissionStatus
	SubmissionDate time.Time
	// LastVendorContact feeds the vendor response-time metric.
	LastVendorContact *time.Time
}

type InterviewFact struct {
	SubmissionID  string
	VendorID      string
	InterviewDate time.Time
}

type AnalyticsRepository interface {
	// StatusCounts groups submissions by status in SQL.
	StatusCounts(ctx context.Context, createdBy string, from, to *time.Time) (map[models.SubmissionStatus]int64, error)

	SubmissionFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]SubmissionFact, error)

	// InterviewFacts joins interviews to their submission's vendor.
	InterviewFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]InterviewFact, error)

	// ReportRows returns the joined, name-resolved rows a report renders.
	// Unscoped: reports always cover every recruiter.
	ReportRows(ctx context.Context, from, to time.Time) ([]models.ReportRow, error)
}

type analyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func scopeSubmissions(q *gorm.DB, createdBy string, from, to *time.Time) *gorm.DB {
	if createdBy != "" {
		q = q.Where("created_by = ?", createdBy)
	}
	if from != nil {
		q = q.Where("submission_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("submission_date < ?", *to)
	}
	return q
}

func (r *analyticsRepo) StatusCounts(ctx context.Context, createdBy string, from, to *time.Time) (map[models.SubmissionStatus]int64, error) {
	type row struct {
		Status models.SubmissionStatus
		Count  int64
	}
	var rows []row
	q := r.db.WithContext(ctx).Model(&models.Submission{}).
		Select("status, count(*) AS count").
		Group("status")
	q = scopeSubmissions(q, createdBy, from, to)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[models.SubmissionStatus]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.Count
	}
	return out, nil
}

func (r *analyticsRepo) SubmissionFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]SubmissionFact, error) {
	var out []SubmissionFact
	q := r.db.WithContext(ctx).Model(&models.Submission{}).
		Select("id, consultant_id, vendor_id, created_by, status, submission_date, last_vendor_contact")
	q = scopeSubmissions(q, createdBy, from, to)
	err := q.Order("submission_date ASC").Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) InterviewFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]InterviewFact, error) {
	var out []InterviewFact
	q := r.db.WithContext(ctx).Table("interviews i").
		Select("i.submission_id, s.vendor_id, i.interview_date").
		Joins("JOIN submissions s ON s.id = i.submission_id")
	if createdBy != "" {
		q = q.Where("s.created_by = ?", createdBy)
	}
	if from != nil {
		q = q.Where("i.interview_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("i.interview_date < ?", *to)
	}
	err := q.Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) ReportRows(ctx context.Context, from, to time.Time) ([]models.ReportRow, error) {
	var out []models.ReportRow
	err := r.db.WithContext(ctx).Table("submissions s").
		Select(`s.submission_date,
			c.full_name AS consultant_name,
			s.position_title,
			s.client_name,
			s.end_client_name,
			v.name AS vendor_name,
			s.status,
			u.full_name AS submitted_by`).
		Joins("LEFT JOIN consultants c ON c.id = s.consultant_id").
		Joins("LEFT JOIN vendors v ON v.id = s.vendor_id").
		Joins("LEFT JOIN users u ON u.id = s.created_by").
		Where("s.submission_date >= ? AND s.submission_date < ?", from, to).
		Order("s.submission_date ASC").
		Scan(&out).Error
	return out, err
}
