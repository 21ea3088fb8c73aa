package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/api/http/presenter"
	"github.com/aazdagabde/smart-hire/pkg/application"
	"github.com/aazdagabde/smart-hire/pkg/auth"
	"github.com/aazdagabde/smart-hire/pkg/resume"
)

type ApplicationHandler struct {
	uc    application.UseCase
	users auth.UserRepository
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	baseDir  string
}

func NewApplicationHandler(uc application.UseCase, users auth.UserRepository, baseDir string) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, users: users, maxBytes: 15 << 20, baseDir: baseDir} // 15MB
}

// Submit принимает отклик кандидата: файл резюме (PDF/DOCX) и ответы на
// вопросы оффера. Повторная подача тем же кандидатом обновляет существующий
// отклик, не создавая дубликат.
// @Summary Откликнуться на оффер
// @Description Multipart: поле file — резюме (PDF/DOCX), поле answers — JSON-массив ответов [{fieldId, value|selected}].
// @Tags    Отклики
// @Accept  multipart/form-data
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Param   file formData file true "Файл резюме (PDF/DOCX)"
// @Param   answers formData string false "Ответы на вопросы оффера (JSON)"
// @Security BearerAuth
// @Success 201 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	if actorRole(c) != auth.RoleCandidate {
		return presenter.Error(c, http.StatusForbidden, "откликаться могут только кандидаты")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}

	var answers []application.SubmittedAnswer
	if raw := c.FormValue("answers"); strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "невалидный JSON в поле answers")
		}
	}

	fh, _ := c.FormFile("file")
	var cvRef, parsedText string
	if fh != nil {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if ext != ".pdf" && ext != ".docx" {
			return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
		}
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		}
		defer file.Close()
		data, err := readAtMost(file, h.maxBytes)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		parsedText, err = resume.ExtractText(fh.Filename, data)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to parse resume: %v", err))
		}
		if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
		}
		cvRef = filepath.Join(h.baseDir, uuid.New().String()+ext)
		if err := os.WriteFile(cvRef, data, 0o644); err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
		}
	}

	user, err := h.users.GetByID(c.Context(), uid)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	a, err := h.uc.Submit(c.Context(), application.Submission{
		OfferID:        offerID,
		ApplicantID:    uid,
		ApplicantName:  user.FullName,
		ApplicantEmail: user.Email,
		CVFileRef:      cvRef,
		ParsedCV:       parsedText,
		Answers:        answers,
	})
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// @Summary Отклики по офферу
// @Description Представления для работодателя: all — по скору и свежести, shortlist — отобранные, rejected — отклонённые.
// @Tags    Отклики
// @Produce json
// @Param   id path string true "ID оффера (UUID)"
// @Param   filter query string false "all | shortlist | rejected" default(all)
// @Security BearerAuth
// @Success 200 {array} application.Application
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /offers/{id}/applications [get]
func (h *ApplicationHandler) ListByOffer(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	filter := application.Filter(strings.ToLower(c.Query("filter", string(application.FilterAll))))
	items, err := h.uc.ListForOwner(c.Context(), uid, offerID, filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary Мои отклики
// @Tags    Отклики
// @Produce json
// @Security BearerAuth
// @Success 200 {array} application.Application
// @Router  /applications/mine [get]
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.ListMine(c.Context(), uid, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// @Summary Сменить статус отклика
// @Description Ручной перевод: REVIEWED, ACCEPTED, INTERVIEW_SCHEDULED или REJECTED.
// @Tags    Отклики
// @Accept  json
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Param   input body updateStatusRequest true "Новый статус"
// @Security BearerAuth
// @Success 200 {object} application.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	a, err := h.uc.UpdateStatus(c.Context(), uid, id, application.Status(strings.ToUpper(strings.TrimSpace(req.Status))))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// @Summary Внутренние заметки по отклику
// @Description Заметки видны только работодателю, кандидату не отдаются.
// @Tags    Отклики
// @Accept  json
// @Param   id path string true "ID отклика (UUID)"
// @Param   input body updateNotesRequest true "Текст заметок"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/notes [put]
func (h *ApplicationHandler) UpdateNotes(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var req updateNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.uc.UpdateNotes(c.Context(), uid, id, req.Notes); err != nil {
		return presenter.FromError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Скачать резюме отклика
// @Tags    Отклики
// @Produce application/octet-stream
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/cv [get]
func (h *ApplicationHandler) DownloadCV(c *fiber.Ctx) error {
	uid, err := actorID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	var a application.Application
	if actorRole(c) == auth.RoleCandidate {
		a, err = h.uc.GetForApplicant(c.Context(), uid, id)
	} else {
		a, err = h.uc.GetForOwner(c.Context(), uid, id)
	}
	if err != nil {
		return presenter.FromError(c, err)
	}
	if a.CVFileRef == "" {
		return presenter.Error(c, http.StatusNotFound, "файл резюме отсутствует")
	}
	return c.Download(a.CVFileRef, filepath.Base(a.CVFileRef))
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
