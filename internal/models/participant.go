package models

import "github.com/shopspring/decimal"

// ParticipantIDPrefix prefixes every participant identifier (e.g. "P001").
const ParticipantIDPrefix = "P"

// Status is the lifecycle state of a participant.
type Status string

const (
	// StatusActive is the state every participant starts in.
	StatusActive Status = "Active"

	// StatusCompleted marks a participant who finished their programme.
	StatusCompleted Status = "Completed"

	// StatusInactive marks a participant who dropped out or paused.
	StatusInactive Status = "Inactive"
)

// Programs is the canonical set offered at intake. A participant's Program
// is free text, so custom names outside this set are valid.
var Programs = []string{
	"Job Readiness",
	"Digital Skills",
	"Entrepreneurship",
	"Financial Literacy",
}

// Participant is one enrolled person.
type Participant struct {
	// ID is the unique identifier, ParticipantIDPrefix plus a zero-padded
	// sequence number.
	ID string `json:"id"`

	// Name is the participant's full name.
	Name string `json:"name"`

	// Email is unique across all participants.
	Email string `json:"email"`

	// Phone is optional.
	Phone string `json:"phone,omitempty"`

	// Program is the programme name, canonical or custom.
	Program string `json:"program"`

	// StartDate is the enrollment date in DateLayout format.
	StartDate string `json:"startDate"`

	// Progress is the completion percentage, 0 to 100.
	Progress int `json:"progress"`

	// Status is the lifecycle state.
	Status Status `json:"status"`

	// Notes is free text.
	Notes string `json:"notes,omitempty"`

	// Attendance counts attended sessions.
	Attendance int `json:"attendance"`

	// Revenue is the income attributed to this participant.
	Revenue decimal.Decimal `json:"revenue"`

	// JobsCreated counts jobs attributed to this participant.
	JobsCreated int `json:"jobsCreated"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last status change, zero until
	// the record is first updated.
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}
