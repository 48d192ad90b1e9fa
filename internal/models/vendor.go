package models

import (
	"time"

	"github.com/lib/pq"
)

type VendorStatus string

const (
	VendorActive   VendorStatus = "active"
	VendorPending  VendorStatus = "pending"
	VendorInactive VendorStatus = "inactive"
)

type Vendor struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:text" json:"name"`
	ContactName string `gorm:"column:contact_name;type:text" json:"contact_name"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	PhoneNumber string `gorm:"column:phone_number;type:text" json:"phone_number"`

	Specialties pq.StringArray `gorm:"column:specialties;type:text[]" json:"specialties"`

	Status VendorStatus `gorm:"column:status;type:text" json:"status"`

	// Recruiter the vendor relationship is assigned to.
	RecruiterID string `gorm:"column:recruiter_id;type:uuid;index" json:"recruiter_id"`

	CreatedBy string    `gorm:"column:created_by;type:uuid;index" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Vendor) TableName() string { return "vendors" }
