package models

import (
	"time"

	"github.com/lib/pq"
)

type ConsultantStatus string

const (
	ConsultantActive   ConsultantStatus = "active"
	ConsultantPlaced   ConsultantStatus = "placed"
	ConsultantInactive ConsultantStatus = "inactive"
)

type Consultant struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName    string `gorm:"column:full_name;type:text" json:"full_name"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	PhoneNumber string `gorm:"column:phone_number;type:text" json:"phone_number"`

	Skills     pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`
	Experience string         `gorm:"column:experience;type:text" json:"experience"`

	Status ConsultantStatus `gorm:"column:status;type:text" json:"status"`

	// Latest uploaded resume, nil until one is attached.
	ResumeFileID *string `gorm:"column:resume_file_id;type:uuid" json:"resume_file_id,omitempty"`

	CreatedBy string    `gorm:"column:created_by;type:uuid;index" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Consultant) TableName() string { return "consultants" }
