package offer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status — жизненный цикл оффера.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// ValidStatus reports whether s is a known offer status.
func ValidStatus(s Status) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// Offer описывает вакансию работодателя. Deadline, если задан, закрывает
// массовый отбор до своего наступления (строго после даты).
type Offer struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"ownerId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	ContractType string     `json:"contractType"`
	Status       Status     `json:"status"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// FieldType — тип кастомного вопроса оффера.
type FieldType string

const (
	FieldText     FieldType = "TEXT"
	FieldTextarea FieldType = "TEXTAREA"
	FieldRadio    FieldType = "RADIO"
	FieldCheckbox FieldType = "CHECKBOX"
)

// ValidFieldType reports whether t is a known field type.
func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldText, FieldTextarea, FieldRadio, FieldCheckbox:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the type carries a list of choices.
func (t FieldType) HasOptions() bool { return t == FieldRadio || t == FieldCheckbox }

// CustomField — вопрос, задаваемый кандидату при отклике.
// Options непусты тогда и только тогда, когда тип RADIO или CHECKBOX.
type CustomField struct {
	ID       uuid.UUID `json:"id"`
	OfferID  uuid.UUID `json:"offerId"`
	Label    string    `json:"label"`
	Type     FieldType `json:"fieldType"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"isRequired"`
	Position int       `json:"position"`
}

// Repository — порт для работы с офферами и их схемой вопросов.
type Repository interface {
	Create(ctx context.Context, o Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (Offer, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Offer, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Offer, error)
	ListPublished(ctx context.Context, limit, offset int) ([]Offer, error)
	UpdateForOwner(ctx context.Context, o Offer) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	// schema
	AddField(ctx context.Context, f CustomField) error
	GetField(ctx context.Context, fieldID uuid.UUID) (CustomField, error)
	// RemoveField удаляет поле оффера; возвращает false, если пары (offer, field) нет.
	RemoveField(ctx context.Context, offerID, fieldID uuid.UUID) (bool, error)
	ListFields(ctx context.Context, offerID uuid.UUID) ([]CustomField, error)
}
