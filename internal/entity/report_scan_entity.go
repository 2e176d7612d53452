package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportScan is the audit record of one medical-report extraction: which
// session and user slot it belonged to, the document kind, and the conditions
// matched in the extracted text.
type ReportScan struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	UserIndex  int
	Source     string // "pdf" | "image"
	Conditions []string
	Chars      int
	CreatedAt  time.Time
}
