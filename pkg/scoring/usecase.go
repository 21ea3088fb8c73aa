package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aazdagabde/smart-hire/pkg/application"
	"github.com/aazdagabde/smart-hire/pkg/llm"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

// UseCase — запуск анализа откликов и наративные артефакты по одному отклику.
type UseCase interface {
	// RequestAnalysis отправляет все неоценённые отклики оффера на анализ и
	// сразу возвращается; скоры появляются асинхронно, клиент перечитывает
	// список (at-least-once, eventual consistency).
	RequestAnalysis(ctx context.Context, ownerID, offerID uuid.UUID) error
	// Summarize и SuggestQuestions — синхронные запросы без кэширования;
	// ошибка — только для отображения, состояние не меняется.
	Summarize(ctx context.Context, ownerID, applicationID uuid.UUID) (string, error)
	SuggestQuestions(ctx context.Context, ownerID, applicationID uuid.UUID) (string, error)
}

type service struct {
	apps     application.Repository
	offers   offer.Repository
	model    llm.ChatModel
	log      *zap.Logger
	maxChars int
	// scoreTimeout bounds one detached scoring call.
	scoreTimeout time.Duration
}

func NewService(apps application.Repository, offers offer.Repository, model llm.ChatModel, log *zap.Logger) UseCase {
	return &service{
		apps:         apps,
		offers:       offers,
		model:        model,
		log:          log,
		maxChars:     12000,
		scoreTimeout: 90 * time.Second,
	}
}

func (s *service) RequestAnalysis(ctx context.Context, ownerID, offerID uuid.UUID) error {
	o, err := s.offers.GetByIDForOwner(ctx, ownerID, offerID)
	if err != nil {
		return err
	}
	apps, err := s.apps.ListByOffer(ctx, offerID)
	if err != nil {
		return err
	}
	var pending []application.Application
	for _, a := range apps {
		if a.CVScore == nil {
			pending = append(pending, a)
		}
	}
	// Отсоединяемся от запроса: вызывающий не ждёт завершения анализа.
	go s.scoreAll(o, pending)
	return nil
}

func (s *service) scoreAll(o offer.Offer, apps []application.Application) {
	for _, a := range apps {
		ctx, cancel := context.WithTimeout(context.Background(), s.scoreTimeout)
		score, err := s.scoreOne(ctx, o, a)
		cancel()
		if err != nil {
			s.log.Warn("cv scoring failed",
				zap.String("applicationId", a.ID.String()),
				zap.Error(err))
			continue
		}
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		err = s.apps.SetScore(ctx, a.ID, score)
		cancel()
		if err != nil {
			s.log.Warn("cv score not persisted",
				zap.String("applicationId", a.ID.String()),
				zap.Error(err))
		}
	}
}

func (s *service) scoreOne(ctx context.Context, o offer.Offer, a application.Application) (int, error) {
	text := strings.TrimSpace(a.ParsedCV)
	if text == "" {
		return 0, errors.New("пустой текст резюме")
	}
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}
	system := "Ты HR-аналитик. Оцени соответствие кандидата вакансии. Верни результат строго в JSON без пояснений."
	user := fmt.Sprintf(
		"Вакансия:\nНазвание: %s\nОписание: %s\n\nТекст резюме:\n<<<\n%s\n>>>\n\nВерни JSON с одним полем:\n- score (целое число от 0 до 100 — соответствие кандидата вакансии)\n",
		o.Title, o.Description, text,
	)
	raw, err := s.model.Ask(ctx, system, user)
	if err != nil {
		return 0, err
	}
	var out struct {
		Score *int `json:"score"`
	}
	raw = strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out.Score == nil {
		// try to extract JSON from fenced block
		if i := strings.Index(raw, "{"); i >= 0 {
			if j := strings.LastIndex(raw, "}"); j > i {
				_ = json.Unmarshal([]byte(raw[i:j+1]), &out)
			}
		}
	}
	if out.Score == nil {
		return 0, fmt.Errorf("не удалось распарсить JSON ответ LLM")
	}
	score := *out.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

func (s *service) narrativeInput(ctx context.Context, ownerID, applicationID uuid.UUID) (application.Application, offer.Offer, error) {
	a, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return application.Application{}, offer.Offer{}, err
	}
	o, err := s.offers.GetByIDForOwner(ctx, ownerID, a.OfferID)
	if err != nil {
		return application.Application{}, offer.Offer{}, err
	}
	return a, o, nil
}

func (s *service) Summarize(ctx context.Context, ownerID, applicationID uuid.UUID) (string, error) {
	a, o, err := s.narrativeInput(ctx, ownerID, applicationID)
	if err != nil {
		return "", err
	}
	text := truncate(a.ParsedCV, s.maxChars)
	system := "Ты HR-аналитик. Отвечай на русском, аккуратно и без лишней воды."
	user := fmt.Sprintf(
		"Вакансия: %s\n\nТекст резюме кандидата:\n<<<\n%s\n>>>\n\nСформируй краткий профиль кандидата (3-5 предложений): опыт, ключевые навыки, сильные стороны относительно вакансии.",
		o.Title, text,
	)
	return s.model.Ask(ctx, system, user)
}

func (s *service) SuggestQuestions(ctx context.Context, ownerID, applicationID uuid.UUID) (string, error) {
	a, o, err := s.narrativeInput(ctx, ownerID, applicationID)
	if err != nil {
		return "", err
	}
	text := truncate(a.ParsedCV, s.maxChars)
	system := "Ты HR-аналитик. Отвечай на русском, аккуратно и без лишней воды."
	user := fmt.Sprintf(
		"Вакансия: %s\nОписание: %s\n\nТекст резюме кандидата:\n<<<\n%s\n>>>\n\nПредложи 5-7 вопросов для собеседования с этим кандидатом: по опыту из резюме и по пробелам относительно вакансии. Нумерованным списком.",
		o.Title, o.Description, text,
	)
	return s.model.Ask(ctx, system, user)
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max]
	}
	return s
}
