package models

import "time"

type InterviewType string

const (
	InterviewPhone  InterviewType = "phone"
	InterviewVideo  InterviewType = "video"
	InterviewOnsite InterviewType = "onsite"
)

type InterviewRound string

const (
	RoundScreening InterviewRound = "screening"
	RoundTechnical InterviewRound = "technical"
	RoundManager   InterviewRound = "manager"
	RoundFinal     InterviewRound = "final"
	RoundHR        InterviewRound = "hr"
)

type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "scheduled"
	InterviewCompleted   InterviewStatus = "completed"
	InterviewCancelled   InterviewStatus = "cancelled"
	InterviewRescheduled InterviewStatus = "rescheduled"
)

type InterviewOutcome string

const (
	OutcomePass     InterviewOutcome = "pass"
	OutcomeFail     InterviewOutcome = "fail"
	OutcomePending  InterviewOutcome = "pending"
	OutcomeHired    InterviewOutcome = "hired"
	OutcomeRejected InterviewOutcome = "rejected"
)

type Interview struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SubmissionID string `gorm:"column:submission_id;type:uuid;not null;index" json:"submission_id"`

	Submission *Submission `gorm:"foreignKey:SubmissionID;references:ID" json:"submission,omitempty"`

	InterviewDate time.Time       `gorm:"column:interview_date;type:timestamptz;index" json:"interview_date"`
	InterviewType InterviewType   `gorm:"column:interview_type;type:text" json:"interview_type"`
	RoundType     InterviewRound  `gorm:"column:round_type;type:text" json:"round_type"`
	Status        InterviewStatus `gorm:"column:status;type:text" json:"status"`

	Feedback     string           `gorm:"column:feedback;type:text" json:"feedback"`
	Rating       *int             `gorm:"column:rating;type:integer" json:"rating,omitempty"`
	Outcome      InterviewOutcome `gorm:"column:outcome;type:text" json:"outcome"`
	NextSteps    string           `gorm:"column:next_steps;type:text" json:"next_steps"`
	FollowUpDate *time.Time       `gorm:"column:follow_up_date;type:timestamptz" json:"follow_up_date,omitempty"`

	CreatedBy string    `gorm:"column:created_by;type:uuid;index" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Interview) TableName() string { return "interviews" }
