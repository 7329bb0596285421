package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"impactrack/internal/models"
)

// ProgramCustom is the sentinel programme selection that resolves to the
// caller-supplied custom name.
const ProgramCustom = "custom"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ParticipantInput carries the intake form fields for a new participant.
type ParticipantInput struct {
	Name          string
	Email         string
	Phone         string
	Program       string
	CustomProgram string // used when Program is ProgramCustom
	StartDate     string
	Notes         string
}

// CreateParticipant validates in, builds the full record, appends it, and
// persists. New participants start Active with zero progress and zero
// counters. Returns the created record.
func (t *Tracker) CreateParticipant(in ParticipantInput) (models.Participant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Participant{}, &ValidationError{Field: "name", Reason: "required"}
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return models.Participant{}, &ValidationError{Field: "email", Reason: "required"}
	}
	if !emailRe.MatchString(email) {
		return models.Participant{}, &ValidationError{Field: "email", Reason: "malformed address"}
	}

	program := strings.TrimSpace(in.Program)
	if strings.EqualFold(program, ProgramCustom) {
		program = strings.TrimSpace(in.CustomProgram)
		if program == "" {
			return models.Participant{}, &ValidationError{Field: "program", Reason: "custom programme name required"}
		}
	}
	if program == "" {
		return models.Participant{}, &ValidationError{Field: "program", Reason: "required"}
	}

	startDate := strings.TrimSpace(in.StartDate)
	if startDate == "" {
		return models.Participant{}, &ValidationError{Field: "startDate", Reason: "required"}
	}
	if _, err := time.Parse(models.DateLayout, startDate); err != nil {
		return models.Participant{}, &ValidationError{Field: "startDate", Reason: "must be " + models.DateLayout}
	}

	for _, p := range t.participants.All() {
		if strings.EqualFold(p.Email, email) {
			return models.Participant{}, &ValidationError{Field: "email", Reason: "already registered"}
		}
	}

	p := models.Participant{
		ID:        t.participants.NextID(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Program:   program,
		StartDate: startDate,
		Progress:  0,
		Status:    models.StatusActive,
		Notes:     strings.TrimSpace(in.Notes),
		Revenue:   decimal.Zero,
		CreatedAt: t.now().Unix(),
	}
	t.participants.Append(p)

	if err := t.participants.Persist(); err != nil {
		t.logger.Error("create participant: persist failed", "id", p.ID, "error", err)
		return models.Participant{}, err
	}

	t.logger.Info("participant created", "id", p.ID, "program", p.Program)
	t.notifier.Notify(EventParticipantsChanged)
	return p, nil
}

// RemoveParticipant deletes the participant with the given id and persists
// the remainder.
func (t *Tracker) RemoveParticipant(id string) error {
	if !t.participants.Remove(id) {
		return &NotFoundError{Kind: "participant", ID: id}
	}
	if err := t.participants.Persist(); err != nil {
		t.logger.Error("remove participant: persist failed", "id", id, "error", err)
		return err
	}
	t.logger.Info("participant removed", "id", id)
	t.notifier.Notify(EventParticipantsChanged)
	return nil
}

// MarkCompleted sets the participant's status to Completed and stamps the
// update time.
func (t *Tracker) MarkCompleted(id string) error {
	ok := t.participants.Update(id, func(p *models.Participant) {
		p.Status = models.StatusCompleted
		p.UpdatedAt = t.now().Unix()
	})
	if !ok {
		return &NotFoundError{Kind: "participant", ID: id}
	}
	if err := t.participants.Persist(); err != nil {
		t.logger.Error("mark completed: persist failed", "id", id, "error", err)
		return err
	}
	t.logger.Info("participant completed", "id", id)
	t.notifier.Notify(EventParticipantsChanged)
	return nil
}
