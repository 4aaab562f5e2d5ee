package model

import "time"

// Email audit outcomes.
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// Email audit record kinds.
const (
	EmailTypeConsultation = "consultation"
	EmailTypeContact      = "contact"
)

// EmailLog is an append-only audit record of a submitter-confirmation
// send attempt. ErrorMessage is set only for failed attempts.
type EmailLog struct {
	ID           int64     `json:"id"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	ErrorMessage *string   `json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
}
