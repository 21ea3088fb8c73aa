package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/api/http/presenter"
	"github.com/aazdagabde/smart-hire/pkg/selection"
)

type SelectionHandler struct {
	svc selection.UseCase
}

func NewSelectionHandler(svc selection.UseCase) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

type selectionRequest struct {
	TopCount int    `json:"topCount"`
	Action   string `json:"actionType"` // INTERVIEW | ACCEPT
	Message  string `json:"message"`
	// Confirmed требуется, когда у оффера нет дедлайна.
	Confirmed bool `json:"confirmed"`
}

// @Summary Массовый отбор топ-N кандидатов
// @Description Доступен строго после дедлайна оффера (либо с confirmed=true, если дедлайна нет). Переводит топ-N откликов по скору в INTERVIEW_SCHEDULED или ACCEPTED и рассылает уведомления; частичные сбои возвращаются в failures.
// @Tags    Отбор
// @Accept  json
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Param   input body selectionRequest true "Параметры отбора"
// @Security BearerAuth
// @Success 200 {object} selection.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /offers/{id}/selection [post]
func (h *SelectionHandler) Run(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	res, err := h.svc.RunBulkSelection(c.Context(), uid, selection.Request{
		OfferID:   offerID,
		TopCount:  req.TopCount,
		Action:    selection.ActionType(strings.ToUpper(strings.TrimSpace(req.Action))),
		Message:   req.Message,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}
