package models

import "time"

type SubmissionStatus string

const (
	SubmissionSubmitted          SubmissionStatus = "submitted"
	SubmissionUnderReview        SubmissionStatus = "under_review"
	SubmissionInterviewScheduled SubmissionStatus = "interview_scheduled"
	SubmissionHired              SubmissionStatus = "hired"
	SubmissionRejected           SubmissionStatus = "rejected"
	SubmissionWithdrawn          SubmissionStatus = "withdrawn"
)

// IsTerminal reports whether follow-up tracking stops for this status.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionHired || s == SubmissionRejected
}

type Submission struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	ConsultantID string `gorm:"column:consultant_id;type:uuid;not null;index" json:"consultant_id"`
	VendorID     string `gorm:"column:vendor_id;type:uuid;not null;index" json:"vendor_id"`

	Consultant *Consultant `gorm:"foreignKey:ConsultantID;references:ID" json:"consultant,omitempty"`
	Vendor     *Vendor     `gorm:"foreignKey:VendorID;references:ID" json:"vendor,omitempty"`

	PositionTitle string `gorm:"column:position_title;type:text" json:"position_title"`
	ClientName    string `gorm:"column:client_name;type:text" json:"client_name"`
	EndClientName string `gorm:"column:end_client_name;type:text" json:"end_client_name"`

	Status         SubmissionStatus `gorm:"column:status;type:text;index" json:"status"`
	SubmissionDate time.Time        `gorm:"column:submission_date;type:timestamptz;index" json:"submission_date"`

	LastVendorContact *time.Time `gorm:"column:last_vendor_contact;type:timestamptz" json:"last_vendor_contact,omitempty"`
	NextFollowUpDate  *time.Time `gorm:"column:next_follow_up_date;type:timestamptz;index" json:"next_follow_up_date,omitempty"`

	VendorFeedback   string     `gorm:"column:vendor_feedback;type:text" json:"vendor_feedback"`
	VendorFeedbackAt *time.Time `gorm:"column:vendor_feedback_at;type:timestamptz" json:"vendor_feedback_at,omitempty"`

	Notes   string     `gorm:"column:notes;type:text" json:"notes"`
	NotesAt *time.Time `gorm:"column:notes_at;type:timestamptz" json:"notes_at,omitempty"`

	CreatedBy string    `gorm:"column:created_by;type:uuid;index" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Submission) TableName() string { return "submissions" }
