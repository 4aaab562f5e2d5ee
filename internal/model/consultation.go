package model

import "time"

// Submission statuses shared by consultations and contact messages.
// The admin API accepts arbitrary status strings; these are the values
// the dashboard knows how to render.
const (
	StatusNew       = "new"
	StatusViewed    = "viewed"
	StatusContacted = "contacted"
)

// Consultation represents a consultation request submitted via the booking form.
// Phone and Message are nullable and serialize as JSON null when absent.
type Consultation struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	Type          string    `json:"type"`
	Message       *string   `json:"message"`
	PreferredDate string    `json:"preferred_date"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
}
