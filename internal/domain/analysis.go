package domain

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is the journal entry written for every analyze request.
type Analysis struct {
	ID             uuid.UUID          `db:"id"              json:"id"`
	Mode           Mode               `db:"mode"            json:"mode"`
	Status         Status             `db:"status"          json:"status"`
	FilesProcessed int                `db:"files_processed" json:"files_processed"`
	TotalRows      int                `db:"total_rows"      json:"total_rows"`
	Risk           Risk               `db:"risk"            json:"risk,omitempty"`
	Recommendation RecommendationType `db:"recommendation"  json:"recommendation,omitempty"`
	ReportFile     string             `db:"report_file"     json:"report_file,omitempty"`
	ErrorMessage   string             `db:"error_message"   json:"error_message,omitempty"`
	CreatedAt      time.Time          `db:"created_at"      json:"created_at"`
	Files          []FileSummary      `db:"-"               json:"files,omitempty"`
}
