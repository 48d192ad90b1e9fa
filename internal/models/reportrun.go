package models

import "time"

const (
	ReportRunSent    = "sent"
	ReportRunFailed  = "failed"
	ReportRunSkipped = "skipped"
)

// ReportRun is one delivery attempt of a scheduled or manually triggered
// report. Stored append-only in the report_runs collection.
type ReportRun struct {
	ID              string    `bson:"_id" json:"id"`
	Period          string    `bson:"period" json:"period"`
	RangeStart      time.Time `bson:"range_start" json:"range_start"`
	RangeEnd        time.Time `bson:"range_end" json:"range_end"`
	SubmissionCount int       `bson:"submission_count" json:"submission_count"`
	Recipients      []string  `bson:"recipients" json:"recipients"`
	Manual          bool      `bson:"manual" json:"manual"`
	Status          string    `bson:"status" json:"status"`
	Error           string    `bson:"error,omitempty" json:"error,omitempty"`
	RanAt           time.Time `bson:"ran_at" json:"ran_at"`
}
