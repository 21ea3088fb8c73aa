package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

// Submission — входные данные подачи отклика.
type Submission struct {
	OfferID        uuid.UUID
	ApplicantID    uuid.UUID
	ApplicantName  string
	ApplicantEmail string
	CVFileRef      string
	ParsedCV       string
	Answers        []SubmittedAnswer
}

// UseCase — сценарии жизненного цикла отклика.
type UseCase interface {
	// Submit валидирует ответы против схемы оффера и создаёт отклик либо,
	// при повторной подаче того же кандидата, обновляет существующую запись.
	Submit(ctx context.Context, sub Submission) (Application, error)
	ListForOwner(ctx context.Context, ownerID, offerID uuid.UUID, f Filter) ([]Application, error)
	ListMine(ctx context.Context, applicantID uuid.UUID, limit, offset int) ([]Application, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Application, error)
	GetForApplicant(ctx context.Context, applicantID, id uuid.UUID) (Application, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (Application, error)
	UpdateNotes(ctx context.Context, ownerID, id uuid.UUID, notes string) error
}

type service struct {
	repo   Repository
	offers offer.Repository
}

func NewService(repo Repository, offers offer.Repository) UseCase {
	return &service{repo: repo, offers: offers}
}

func (s *service) Submit(ctx context.Context, sub Submission) (Application, error) {
	o, err := s.offers.GetByID(ctx, sub.OfferID)
	if err != nil {
		return Application{}, err
	}
	if o.Status != offer.StatusPublished {
		return Application{}, apperr.New(apperr.CodeValidation, "оффер не принимает отклики")
	}

	schema, err := s.offers.ListFields(ctx, sub.OfferID)
	if err != nil {
		return Application{}, err
	}
	canonical, err := ValidateSubmission(schema, sub.Answers, sub.CVFileRef != "")
	if err != nil {
		return Application{}, err
	}

	// Повторная подача: одна запись на пару (оффер, кандидат).
	if existing, err := s.repo.GetByOfferAndApplicant(ctx, sub.OfferID, sub.ApplicantID); err == nil {
		r := Resubmission{
			ID:        existing.ID,
			CVFileRef: sub.CVFileRef,
			ParsedCV:  sub.ParsedCV,
			Answers:   canonical,
		}
		if err := s.repo.Resubmit(ctx, r); err != nil {
			return Application{}, err
		}
		existing.CVFileRef = sub.CVFileRef
		existing.ParsedCV = sub.ParsedCV
		existing.Answers = canonical
		return existing, nil
	} else if !apperr.Is(err, apperr.CodeNotFound) {
		return Application{}, err
	}

	a := Application{
		ID:             uuid.New(),
		OfferID:        sub.OfferID,
		ApplicantID:    sub.ApplicantID,
		ApplicantName:  sub.ApplicantName,
		ApplicantEmail: sub.ApplicantEmail,
		AppliedAt:      time.Now().UTC(),
		Status:         StatusPending,
		CVFileRef:      sub.CVFileRef,
		CVScore:        nil,
		Answers:        canonical,
		ParsedCV:       sub.ParsedCV,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) ListForOwner(ctx context.Context, ownerID, offerID uuid.UUID, f Filter) ([]Application, error) {
	if _, err := s.offers.GetByIDForOwner(ctx, ownerID, offerID); err != nil {
		return nil, err
	}
	if !ValidFilter(f) {
		f = FilterAll
	}
	apps, err := s.repo.ListByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	return Project(apps, f), nil
}

func (s *service) ListMine(ctx context.Context, applicantID uuid.UUID, limit, offset int) ([]Application, error) {
	apps, err := s.repo.ListByApplicant(ctx, applicantID, limit, offset)
	if err != nil {
		return nil, err
	}
	// Кандидат не видит внутренние заметки.
	for i := range apps {
		apps[i].InternalNotes = ""
	}
	return apps, nil
}

func (s *service) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if _, err := s.offers.GetByIDForOwner(ctx, ownerID, a.OfferID); err != nil {
		return Application{}, apperr.New(apperr.CodeForbidden, "отклик принадлежит чужому офферу")
	}
	return a, nil
}

func (s *service) GetForApplicant(ctx context.Context, applicantID, id uuid.UUID) (Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if a.ApplicantID != applicantID {
		return Application{}, apperr.New(apperr.CodeForbidden, "чужой отклик")
	}
	a.InternalNotes = ""
	return a, nil
}

// UpdateStatus — ручной перевод статуса рекрутером. Возврат в PENDING не
// предусмотрен; терминальной блокировки нет, отобранные могут быть
// переотобраны следующим прогоном массового отбора.
func (s *service) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (Application, error) {
	if !ValidStatus(status) || status == StatusPending {
		return Application{}, apperr.Validation("невалидный статус", map[string]string{
			"status": "допустимы REVIEWED, ACCEPTED, INTERVIEW_SCHEDULED, REJECTED",
		})
	}
	a, err := s.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Application{}, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return Application{}, err
	}
	a.Status = status
	return a, nil
}

func (s *service) UpdateNotes(ctx context.Context, ownerID, id uuid.UUID, notes string) error {
	if _, err := s.GetForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.UpdateNotes(ctx, id, notes)
}
