package offer

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
)

// FieldDefinition — входные данные для создания вопроса. Options задаются
// одной строкой, варианты разделяются точкой с запятой.
type FieldDefinition struct {
	Label      string
	Type       FieldType
	RawOptions string
	Required   bool
}

// UseCase инкапсулирует сценарии работы с офферами и их схемой вопросов.
type UseCase interface {
	Create(ctx context.Context, o Offer) (Offer, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Offer, error)
	GetPublished(ctx context.Context, id uuid.UUID) (Offer, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Offer, error)
	ListPublished(ctx context.Context, limit, offset int) ([]Offer, error)
	Update(ctx context.Context, ownerID uuid.UUID, o Offer) (Offer, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	AddField(ctx context.Context, ownerID, offerID uuid.UUID, def FieldDefinition) (CustomField, error)
	RemoveField(ctx context.Context, ownerID, offerID, fieldID uuid.UUID) error
	ListFields(ctx context.Context, offerID uuid.UUID) ([]CustomField, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, o Offer) (Offer, error) {
	o.Title = strings.TrimSpace(o.Title)
	if o.Title == "" {
		return Offer{}, apperr.Validation("невалидный оффер", map[string]string{"title": "обязательное поле"})
	}
	if o.Status == "" {
		o.Status = StatusDraft
	}
	if !ValidStatus(o.Status) {
		return Offer{}, apperr.Validation("невалидный оффер", map[string]string{"status": "допустимы DRAFT, PUBLISHED, ARCHIVED"})
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return Offer{}, err
	}
	return o, nil
}

func (s *service) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Offer, error) {
	return s.repo.GetByIDForOwner(ctx, ownerID, id)
}

// GetPublished возвращает оффер для кандидата: только опубликованные видимы.
func (s *service) GetPublished(ctx context.Context, id uuid.UUID) (Offer, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Offer{}, err
	}
	if o.Status != StatusPublished {
		return Offer{}, apperr.New(apperr.CodeNotFound, "оффер не найден")
	}
	return o, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Offer, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) ListPublished(ctx context.Context, limit, offset int) ([]Offer, error) {
	return s.repo.ListPublished(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID uuid.UUID, o Offer) (Offer, error) {
	o.OwnerID = ownerID
	o.Title = strings.TrimSpace(o.Title)
	if o.Title == "" {
		return Offer{}, apperr.Validation("невалидный оффер", map[string]string{"title": "обязательное поле"})
	}
	if !ValidStatus(o.Status) {
		return Offer{}, apperr.Validation("невалидный оффер", map[string]string{"status": "допустимы DRAFT, PUBLISHED, ARCHIVED"})
	}
	if err := s.repo.UpdateForOwner(ctx, o); err != nil {
		return Offer{}, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

// ParseOptions разбирает сырую строку вариантов: split по ';', trim, пустые
// отбрасываются, порядок сохраняется.
func ParseOptions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *service) AddField(ctx context.Context, ownerID, offerID uuid.UUID, def FieldDefinition) (CustomField, error) {
	if _, err := s.repo.GetByIDForOwner(ctx, ownerID, offerID); err != nil {
		return CustomField{}, err
	}

	fields := map[string]string{}
	label := strings.TrimSpace(def.Label)
	if label == "" {
		fields["label"] = "обязательное поле"
	}
	if def.Type == "" {
		fields["fieldType"] = "обязательное поле"
	} else if !ValidFieldType(def.Type) {
		fields["fieldType"] = "допустимы TEXT, TEXTAREA, RADIO, CHECKBOX"
	}
	options := ParseOptions(def.RawOptions)
	if def.Type.HasOptions() && len(options) == 0 {
		fields["options"] = "для RADIO/CHECKBOX нужен хотя бы один вариант"
	}
	if len(fields) > 0 {
		return CustomField{}, apperr.Validation("невалидное описание вопроса", fields)
	}
	if !def.Type.HasOptions() {
		// invariant: options only for RADIO/CHECKBOX
		options = nil
	}

	existing, err := s.repo.ListFields(ctx, offerID)
	if err != nil {
		return CustomField{}, err
	}
	f := CustomField{
		ID:       uuid.New(),
		OfferID:  offerID,
		Label:    label,
		Type:     def.Type,
		Options:  options,
		Required: def.Required,
		Position: len(existing),
	}
	if err := s.repo.AddField(ctx, f); err != nil {
		return CustomField{}, err
	}
	return f, nil
}

// RemoveField — удаление как операция над множеством: отсутствующее поле не
// ошибка, но чужое поле (другого оффера) — NotFound. Существующие ответы
// кандидатов не затрагиваются.
func (s *service) RemoveField(ctx context.Context, ownerID, offerID, fieldID uuid.UUID) error {
	if _, err := s.repo.GetByIDForOwner(ctx, ownerID, offerID); err != nil {
		return err
	}
	removed, err := s.repo.RemoveField(ctx, offerID, fieldID)
	if err != nil {
		return err
	}
	if removed {
		return nil
	}
	if f, err := s.repo.GetField(ctx, fieldID); err == nil && f.OfferID != offerID {
		return apperr.New(apperr.CodeNotFound, "вопрос не принадлежит этому офферу")
	}
	// already absent: idempotent success
	return nil
}

func (s *service) ListFields(ctx context.Context, offerID uuid.UUID) ([]CustomField, error) {
	return s.repo.ListFields(ctx, offerID)
}
