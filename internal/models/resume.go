package models

import (
	"time"

	"gorm.io/datatypes"
)

type ResumeFile struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ConsultantID string `gorm:"column:consultant_id;type:uuid;index" json:"consultant_id"`
	FileName     string `gorm:"column:file_name;type:text" json:"file_name"`
	FilePath     string `gorm:"column:file_path;type:text" json:"file_path"`

	FileSize int    `gorm:"column:file_size;type:integer" json:"file_size"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mime_type"`

	// Free-form upload metadata (original form fields, uploader notes).
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb" json:"meta,omitempty"`

	UploadedBy string    `gorm:"column:uploaded_by;type:uuid" json:"uploaded_by"`
	UploadedAt time.Time `gorm:"column:uploaded_at;type:timestamptz" json:"uploaded_at"`
}

func (ResumeFile) TableName() string { return "resume_files" }
