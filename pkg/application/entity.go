package application

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status — состояние отклика в воронке найма.
type Status string

const (
	StatusPending            Status = "PENDING"
	StatusReviewed           Status = "REVIEWED"
	StatusAccepted           Status = "ACCEPTED"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusRejected           Status = "REJECTED"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusInterviewScheduled, StatusRejected:
		return true
	default:
		return false
	}
}

// Shortlisted reports whether the status counts as shortlisted.
func (s Status) Shortlisted() bool {
	return s == StatusAccepted || s == StatusInterviewScheduled
}

// Answer — каноничный ответ на вопрос оффера. Для CHECKBOX выбранные варианты
// склеены через ';' (сами варианты точек с запятой не содержат).
type Answer struct {
	FieldID uuid.UUID `json:"fieldId"`
	Value   string    `json:"value"`
}

// SubmittedAnswer — ответ в том виде, как его прислал кандидат: либо одно
// значение (TEXT/TEXTAREA/RADIO), либо список выбранных вариантов (CHECKBOX).
type SubmittedAnswer struct {
	FieldID  uuid.UUID `json:"fieldId"`
	Value    string    `json:"value,omitempty"`
	Selected []string  `json:"selected,omitempty"`
}

// Application — отклик кандидата на оффер. Ровно одна запись на пару
// (оффер, кандидат): повторная подача обновляет существующую запись.
type Application struct {
	ID             uuid.UUID `json:"id"`
	OfferID        uuid.UUID `json:"offerId"`
	ApplicantID    uuid.UUID `json:"applicantId"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail,omitempty"`
	AppliedAt      time.Time `json:"appliedAt"`
	Status         Status    `json:"status"`
	// CVFileRef — непрозрачная ссылка на файл резюме в хранилище.
	CVFileRef string `json:"cvFileReference"`
	// CVScore — null, пока внешний анализатор не обработал отклик; затем 0..100.
	CVScore *int `json:"cvScore"`
	// InternalNotes видны только работодателю, кандидату не отдаются.
	InternalNotes string   `json:"internalNotes,omitempty"`
	Answers       []Answer `json:"answers"`
	// ParsedCV — извлечённый текст резюме, служебное поле для анализа.
	ParsedCV string `json:"-"`
}

// Resubmission переносит новую подачу на существующую запись.
type Resubmission struct {
	ID        uuid.UUID
	CVFileRef string
	ParsedCV  string
	Answers   []Answer
}

// Repository — порт хранения откликов.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetByOfferAndApplicant(ctx context.Context, offerID, applicantID uuid.UUID) (Application, error)
	// Resubmit заменяет файл резюме, извлечённый текст и ответы, не трогая
	// статус, скор и заметки.
	Resubmit(ctx context.Context, r Resubmission) error
	ListByOffer(ctx context.Context, offerID uuid.UUID) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetScore(ctx context.Context, id uuid.UUID, score int) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
}
