package selection

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/application"
	"github.com/aazdagabde/smart-hire/pkg/notify"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

// ActionType — действие массового отбора.
type ActionType string

const (
	ActionInterview ActionType = "INTERVIEW"
	ActionAccept    ActionType = "ACCEPT"
)

func (t ActionType) status() (application.Status, bool) {
	switch t {
	case ActionInterview:
		return application.StatusInterviewScheduled, true
	case ActionAccept:
		return application.StatusAccepted, true
	default:
		return "", false
	}
}

func (t ActionType) template() notify.TemplateType {
	if t == ActionAccept {
		return notify.TemplateAccept
	}
	return notify.TemplateInterview
}

// Request — параметры массового отбора. Confirmed — явное подтверждение
// оператора; требуется, когда у оффера нет дедлайна.
type Request struct {
	OfferID   uuid.UUID
	TopCount  int
	Action    ActionType
	Message   string
	Confirmed bool
}

// Failure — сбой по одному выбранному отклику; не откатывает остальных.
type Failure struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	ApplicantID   uuid.UUID `json:"applicantId"`
	Stage         string    `json:"stage"` // "status" либо "notify"
	Reason        string    `json:"reason"`
}

// Result — итог массового отбора: сколько переведено и какие доставки упали.
type Result struct {
	UpdatedCount int         `json:"updatedCount"`
	SelectedIDs  []uuid.UUID `json:"selectedIds"`
	Failures     []Failure   `json:"failures"`
}

// UseCase — массовый отбор топ-N откликов по скору.
type UseCase interface {
	RunBulkSelection(ctx context.Context, ownerID uuid.UUID, req Request) (Result, error)
}

type service struct {
	apps   application.Repository
	offers offer.Repository
	sender notify.Sender
	log    *zap.Logger
}

func NewService(apps application.Repository, offers offer.Repository, sender notify.Sender, log *zap.Logger) UseCase {
	return &service{apps: apps, offers: offers, sender: sender, log: log}
}

// Rank упорядочивает отклики для отбора: скор по убыванию (без скора — как -1),
// при равенстве — более свежая подача раньше. Вход не мутируется.
func Rank(apps []application.Application) []application.Application {
	out := make([]application.Application, len(apps))
	copy(out, apps)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rankScore(out[i]), rankScore(out[j])
		if ri != rj {
			return ri > rj
		}
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out
}

func rankScore(a application.Application) int {
	if a.CVScore == nil {
		return -1
	}
	return *a.CVScore
}

// RunBulkSelection проверяет гейт и входные данные до любых мутаций, затем
// переводит топ-N откликов по одному: смена статуса и отправка уведомления.
// Кросс-откликовой атомарности нет: частичное выполнение допустимо и
// отражается в Result, невыбранные отклики не меняются (авто-отказа нет).
func (s *service) RunBulkSelection(ctx context.Context, ownerID uuid.UUID, req Request) (Result, error) {
	o, err := s.offers.GetByIDForOwner(ctx, ownerID, req.OfferID)
	if err != nil {
		return Result{}, err
	}

	// Гейт по дедлайну: операция доступна строго после его прохождения.
	now := time.Now().UTC()
	if o.Deadline != nil {
		if !now.After(*o.Deadline) {
			return Result{}, apperr.Newf(apperr.CodeGate,
				"дедлайн оффера ещё не прошёл (%s)", o.Deadline.Format("2006-01-02"))
		}
	} else if !req.Confirmed {
		return Result{}, apperr.New(apperr.CodeGate,
			"у оффера нет дедлайна: требуется явное подтверждение операции")
	}

	target, ok := req.Action.status()
	if !ok {
		return Result{}, apperr.Validation("невалидное действие", map[string]string{
			"actionType": "допустимы INTERVIEW и ACCEPT",
		})
	}

	apps, err := s.apps.ListByOffer(ctx, req.OfferID)
	if err != nil {
		return Result{}, err
	}
	if req.TopCount < 1 || req.TopCount > len(apps) {
		return Result{}, apperr.Validation("невалидный размер выборки", map[string]string{
			"topCount": "должен быть от 1 до числа откликов оффера",
		})
	}

	selected := Rank(apps)[:req.TopCount]
	res := Result{SelectedIDs: make([]uuid.UUID, 0, len(selected))}
	for _, a := range selected {
		res.SelectedIDs = append(res.SelectedIDs, a.ID)
		if err := s.apps.UpdateStatus(ctx, a.ID, target); err != nil {
			res.Failures = append(res.Failures, Failure{
				ApplicationID: a.ID,
				ApplicantID:   a.ApplicantID,
				Stage:         "status",
				Reason:        err.Error(),
			})
			continue
		}
		res.UpdatedCount++

		// Доставка — at-least-once и не откатывает смену статуса.
		err := s.sender.Send(ctx, notify.Message{
			RecipientEmail: a.ApplicantEmail,
			RecipientName:  a.ApplicantName,
			Template:       req.Action.template(),
			Body:           req.Message,
		})
		if err != nil {
			s.log.Warn("outreach delivery failed",
				zap.String("applicationId", a.ID.String()),
				zap.Error(err))
			res.Failures = append(res.Failures, Failure{
				ApplicationID: a.ID,
				ApplicantID:   a.ApplicantID,
				Stage:         "notify",
				Reason:        apperr.Wrap(apperr.CodeDelivery, "уведомление не доставлено", err).Error(),
			})
		}
	}
	return res, nil
}
