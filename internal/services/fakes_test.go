package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type fakeAnalyticsRepo struct {
	statusCounts map[models.SubmissionStatus]int64
	facts        []pgrepo.SubmissionFact
	interviews   []pgrepo.InterviewFact
	reportRows   []models.ReportRow
	err          error

	interviewFrom, interviewTo *time.Time
}

func (f *fakeAnalyticsRepo) StatusCounts(ctx context.Context, createdBy string, from, to *time.Time) (map[models.SubmissionStatus]int64, error) {
	return f.statusCounts, f.err
}

func (f *fakeAnalyticsRepo) SubmissionFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]pgrepo.SubmissionFact, error) {
	return f.facts, f.err
}

func (f *fakeAnalyticsRepo) InterviewFacts(ctx context.Context, createdBy string, from, to *time.Time) ([]pgrepo.InterviewFact, error) {
	f.interviewFrom, f.interviewTo = from, to
	return f.interviews, f.err
}

func (f *fakeAnalyticsRepo) ReportRows(ctx context.Context, from, to time.Time) ([]models.ReportRow, error) {
	return f.reportRows, f.err
}

type statusChange struct {
	id     string
	status models.SubmissionStatus
}

type fakeSubmissionRepo struct {
	byID          map[string]*models.Submission
	created       []*models.Submission
	updated       []*models.Submission
	statusChanges []statusChange
	pending       []models.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{byID: make(map[string]*models.Submission)}
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	cp := *s
	f.byID[s.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSubmissionRepo) List(ctx context.Context, flt pgrepo.SubmissionFilter) ([]models.Submission, error) {
	var out []models.Submission
	for _, s := range f.byID {
		if flt.CreatedBy != "" && s.CreatedBy != flt.CreatedBy {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSubmissionRepo) Update(ctx context.Context, s *models.Submission) error {
	cp := *s
	f.byID[s.ID] = &cp
	f.updated = append(f.updated, &cp)
	return nil
}

func (f *fakeSubmissionRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeSubmissionRepo) SetStatus(ctx context.Context, id string, status models.SubmissionStatus, now time.Time) error {
	if s, ok := f.byID[id]; ok {
		s.Status = status
		s.UpdatedAt = now
	}
	f.statusChanges = append(f.statusChanges, statusChange{id: id, status: status})
	return nil
}

func (f *fakeSubmissionRepo) PendingFollowUps(ctx context.Context, createdBy string, dueBefore *time.Time) ([]models.Submission, error) {
	var out []models.Submission
	for _, s := range f.pending {
		if createdBy != "" && s.CreatedBy != createdBy {
			continue
		}
		if dueBefore != nil && (s.NextFollowUpDate == nil || s.NextFollowUpDate.After(*dueBefore)) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeConsultantRepo struct {
	byID map[string]*models.Consultant
}

func newFakeConsultantRepo(cs ...*models.Consultant) *fakeConsultantRepo {
	f := &fakeConsultantRepo{byID: make(map[string]*models.Consultant)}
	for _, c := range cs {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeConsultantRepo) Create(ctx context.Context, c *models.Consultant) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConsultantRepo) GetByID(ctx context.Context, id string) (*models.Consultant, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return c, nil
}

func (f *fakeConsultantRepo) List(ctx context.Context, flt pgrepo.ConsultantFilter) ([]models.Consultant, error) {
	var out []models.Consultant
	for _, c := range f.byID {
		if flt.CreatedBy != "" && c.CreatedBy != flt.CreatedBy {
			continue
		}
		if flt.Status != "" && c.Status != flt.Status {
			continue
		}
		if flt.Search != "" && !strings.Contains(strings.ToLower(c.FullName+" "+c.Email), strings.ToLower(flt.Search)) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeConsultantRepo) Update(ctx context.Context, c *models.Consultant) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConsultantRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeVendorRepo struct {
	byID map[string]*models.Vendor
}

func newFakeVendorRepo(vs ...*models.Vendor) *fakeVendorRepo {
	f := &fakeVendorRepo{byID: make(map[string]*models.Vendor)}
	for _, v := range vs {
		f.byID[v.ID] = v
	}
	return f
}

func (f *fakeVendorRepo) Create(ctx context.Context, v *models.Vendor) error {
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVendorRepo) GetByID(ctx context.Context, id string) (*models.Vendor, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return v, nil
}

func (f *fakeVendorRepo) List(ctx context.Context, flt pgrepo.VendorFilter) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, v := range f.byID {
		if flt.CreatedBy != "" && v.CreatedBy != flt.CreatedBy {
			continue
		}
		if flt.Status != "" && v.Status != flt.Status {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVendorRepo) Update(ctx context.Context, v *models.Vendor) error {
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVendorRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *models.User) error {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	out := f.users[:0]
	for _, u := range f.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	f.users = out
	return nil
}

type fakeInterviewRepo struct {
	byID    map[string]*models.Interview
	created []*models.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byID: make(map[string]*models.Interview)}
}

func (f *fakeInterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	cp := *iv
	f.byID[iv.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	iv, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *iv
	return &cp, nil
}

func (f *fakeInterviewRepo) ListBySubmission(ctx context.Context, submissionID string) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range f.byID {
		if iv.SubmissionID == submissionID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) ListUpcoming(ctx context.Context, createdBy string) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range f.byID {
		if createdBy != "" && iv.CreatedBy != createdBy {
			continue
		}
		out = append(out, *iv)
	}
	return out, nil
}

func (f *fakeInterviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	cp := *iv
	f.byID[iv.ID] = &cp
	return nil
}

func (f *fakeInterviewRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeResumeRepo struct {
	rows []models.ResumeFile
}

func (f *fakeResumeRepo) Insert(ctx context.Context, row *models.ResumeFile) error {
	f.rows = append(f.rows, *row)
	return nil
}

func (f *fakeResumeRepo) LatestByConsultant(ctx context.Context, consultantID string) (*models.ResumeFile, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].ConsultantID == consultantID {
			cp := f.rows[i]
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

type fakeUploader struct {
	objectName  string
	contentType string
	err         error
}

func (f *fakeUploader) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.objectName = objectName
	f.contentType = contentType
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "gs://bucket/" + objectName, nil
}
