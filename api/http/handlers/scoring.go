package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/api/http/presenter"
	"github.com/aazdagabde/smart-hire/pkg/application"
	"github.com/aazdagabde/smart-hire/pkg/scoring"
)

type ScoringHandler struct {
	svc  scoring.UseCase
	apps application.UseCase
}

func NewScoringHandler(svc scoring.UseCase, apps application.UseCase) *ScoringHandler {
	return &ScoringHandler{svc: svc, apps: apps}
}

// @Summary Запустить анализ резюме по офферу
// @Description Ставит все неоценённые отклики в очередь на скоринг и возвращает 202; результаты появляются асинхронно.
// @Tags    Анализ
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Security BearerAuth
// @Success 202 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/analyze [post]
func (h *ScoringHandler) Analyze(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	if err := h.svc.RequestAnalysis(c.Context(), uid, offerID); err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusAccepted, fiber.Map{"status": "queued"})
}

// @Summary Статистика по откликам оффера
// @Description Всего откликов, сколько проанализировано, сколько в шортлисте и средний скор.
// @Tags    Анализ
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Security BearerAuth
// @Success 200 {object} scoring.Stats
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/stats [get]
func (h *ScoringHandler) Stats(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	items, err := h.apps.ListForOwner(c.Context(), uid, offerID, application.FilterAll)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, scoring.Aggregate(items))
}

// @Summary Краткий профиль кандидата
// @Description Синхронный запрос к LLM; результат не кэшируется.
// @Tags    Анализ
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /applications/{id}/summary [get]
func (h *ScoringHandler) Summary(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	text, err := h.svc.Summarize(c.Context(), uid, id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"summary": text})
}

// @Summary Вопросы для собеседования
// @Description Синхронный запрос к LLM; результат не кэшируется.
// @Tags    Анализ
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /applications/{id}/questions [get]
func (h *ScoringHandler) Questions(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	text, err := h.svc.SuggestQuestions(c.Context(), uid, id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"questions": text})
}
