package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/api/http/presenter"
	"github.com/aazdagabde/smart-hire/pkg/auth"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

type OfferHandler struct {
	uc offer.UseCase
}

func NewOfferHandler(uc offer.UseCase) *OfferHandler { return &OfferHandler{uc: uc} }

type offerRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContractType string `json:"contractType"`
	Status       string `json:"status"`
	// Deadline в формате YYYY-MM-DD; пустая строка — без дедлайна.
	Deadline string `json:"deadline"`
}

func (r offerRequest) toDomain() (offer.Offer, error) {
	o := offer.Offer{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		ContractType: r.ContractType,
		Status:       offer.Status(r.Status),
	}
	if d := strings.TrimSpace(r.Deadline); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return offer.Offer{}, err
		}
		o.Deadline = &t
	}
	return o, nil
}

// @Summary Создать оффер
// @Description Создаёт оффер работодателя; по умолчанию в статусе DRAFT.
// @Tags        Офферы
// @Accept      json
// @Produce     json
// @Param       input body offerRequest true "Данные оффера"
// @Security    BearerAuth
// @Success     201 {object} offer.Offer
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	if actorRole(c) != auth.RoleEmployer {
		return presenter.Error(c, http.StatusForbidden, "доступно только работодателю")
	}
	var req offerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	o, err := req.toDomain()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный дедлайн: ожидается YYYY-MM-DD")
	}
	o.ID = uuid.New()
	o.OwnerID = uid
	o, err = h.uc.Create(c.Context(), o)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, o)
}

// @Summary Список офферов
// @Description Работодателю — его офферы, кандидату — опубликованные.
// @Tags    Офферы
// @Produce json
// @Security BearerAuth
// @Success 200 {array} offer.Offer
// @Router  /offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	limit, offset := parseLimitOffset(c, 50)
	var items []offer.Offer
	if actorRole(c) == auth.RoleEmployer {
		items, err = h.uc.ListByOwner(c.Context(), uid, limit, offset)
	} else {
		items, err = h.uc.ListPublished(c.Context(), limit, offset)
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary Получить оффер по ID
// @Tags    Офферы
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Security BearerAuth
// @Success 200 {object} offer.Offer
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id} [get]
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var o offer.Offer
	if actorRole(c) == auth.RoleEmployer {
		o, err = h.uc.GetForOwner(c.Context(), uid, id)
	} else {
		o, err = h.uc.GetPublished(c.Context(), id)
	}
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "оффер не найден")
	}
	return presenter.JSON(c, http.StatusOK, o)
}

// @Summary Обновить оффер
// @Tags    Офферы
// @Accept  json
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Param   input body offerRequest true "Новые данные оффера"
// @Security BearerAuth
// @Success 200 {object} offer.Offer
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req offerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	o, err := req.toDomain()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный дедлайн: ожидается YYYY-MM-DD")
	}
	o.ID = id
	o, err = h.uc.Update(c.Context(), uid, o)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, o)
}

// @Summary Удалить оффер
// @Tags    Офферы
// @Param   id path string true "ID оффера (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return presenter.FromError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type addFieldRequest struct {
	Label     string `json:"label"`
	FieldType string `json:"fieldType"` // TEXT | TEXTAREA | RADIO | CHECKBOX
	// Options — варианты одной строкой через ';' (только RADIO/CHECKBOX).
	Options    string `json:"options"`
	IsRequired bool   `json:"isRequired"`
}

// @Summary Добавить вопрос к офферу
// @Description Для RADIO/CHECKBOX варианты передаются одной строкой через ';'.
// @Tags    Офферы
// @Accept  json
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Param   input body addFieldRequest true "Описание вопроса"
// @Security BearerAuth
// @Success 201 {object} offer.CustomField
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/fields [post]
func (h *OfferHandler) AddField(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req addFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	f, err := h.uc.AddField(c.Context(), uid, offerID, offer.FieldDefinition{
		Label:      req.Label,
		Type:       offer.FieldType(req.FieldType),
		RawOptions: req.Options,
		Required:   req.IsRequired,
	})
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, f)
}

// @Summary Список вопросов оффера
// @Tags    Офферы
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Security BearerAuth
// @Success 200 {array} offer.CustomField
// @Router  /offers/{id}/fields [get]
func (h *OfferHandler) ListFields(c *fiber.Ctx) error {
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	fields, err := h.uc.ListFields(c.Context(), offerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить вопросы")
	}
	return presenter.JSON(c, http.StatusOK, fields)
}

// @Summary Удалить вопрос оффера
// @Description Удаление не затрагивает уже сохранённые ответы кандидатов.
// @Tags    Офферы
// @Param   id path string true "ID оффера (UUID)"
// @Param   fieldId path string true "ID вопроса (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/fields/{fieldId} [delete]
func (h *OfferHandler) RemoveField(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	fieldID, err := uuid.Parse(c.Params("fieldId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	if err := h.uc.RemoveField(c.Context(), uid, offerID, fieldID); err != nil {
		return presenter.FromError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
