package models

import "time"

// ReportRow is the denormalized submission row rendered into report
// documents: submission joined with consultant, vendor and creator names.
type ReportRow struct {
	SubmissionDate time.Time        `json:"submission_date"`
	ConsultantName string           `json:"consultant_name"`
	PositionTitle  string           `json:"position_title"`
	ClientName     string           `json:"client_name"`
	EndClientName  string           `json:"end_client_name"`
	VendorName     string           `json:"vendor_name"`
	Status         SubmissionStatus `json:"status"`
	SubmittedBy    string           `json:"submitted_by"`
}
