package dto

import "github.com/google/uuid"

// PublishReportScannedMessage is the payload sent over the internal bus when
// a report has been extracted, consumed asynchronously into the audit table.
type PublishReportScannedMessage struct {
	SessionId  uuid.UUID `json:"session_id"`
	UserIndex  int       `json:"user_index"`
	Source     string    `json:"source"`
	Conditions []string  `json:"conditions"`
	Chars      int       `json:"chars"`
}
