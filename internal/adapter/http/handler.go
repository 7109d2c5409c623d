package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// generationFailedMessage is the only error text clients see when a
// résumé could not be generated.
const generationFailedMessage = "Error generating resume"

type ModelLister interface {
	AvailableModels(ctx context.Context) []ai.ModelInfo
}

type Handler struct {
	processor *usecase.Processor
	models    ModelLister
}

func NewHandler(p *usecase.Processor, models ModelLister) *Handler {
	return &Handler{processor: p, models: models}
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	in, err := model.DecodeGenerationInput(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.processor.Generate(c.UserContext(), nil, in)
	if err != nil {
		return h.generationFailed(c, err)
	}
	return c.JSON(fiber.Map{"content": res.Content, "resumeId": res.ID.String()})
}

func (h *Handler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
}

func (h *Handler) Models(c *fiber.Ctx) error {
	models := ai.SupportedModels()
	if h.models != nil {
		models = h.models.AvailableModels(c.UserContext())
	}
	return c.JSON(fiber.Map{"models": models})
}

func (h *Handler) StartDraft(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": uuid.NewString()})
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	sid, err := parseID(c, "id")
	if err != nil {
		return err
	}
	slots, err := h.processor.Draft(c.UserContext(), sid)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(slots)
}

func (h *Handler) GetSlot(c *fiber.Ctx) error {
	sid, err := parseID(c, "id")
	if err != nil {
		return err
	}
	raw, err := h.processor.Slot(c.UserContext(), sid, domain.DraftSlot(c.Params("slot")))
	if err != nil {
		return storeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func (h *Handler) PutSlot(c *fiber.Ctx) error {
	sid, err := parseID(c, "id")
	if err != nil {
		return err
	}
	slot := domain.DraftSlot(c.Params("slot"))
	if !slot.Valid() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("unknown slot %q", string(slot))})
	}
	body := append([]byte(nil), c.Body()...)
	if err := h.processor.PutSlot(c.UserContext(), sid, slot, body); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteSlot(c *fiber.Ctx) error {
	sid, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.processor.DeleteSlot(c.UserContext(), sid, domain.DraftSlot(c.Params("slot"))); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ClearDraft(c *fiber.Ctx) error {
	sid, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.processor.ClearDraft(c.UserContext(), sid); err != nil {
		return storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GenerateFromDraft(c *fiber.Ctx) error {
	sid, err := parseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.processor.GenerateFromDraft(c.UserContext(), sid)
	switch {
	case errors.Is(err, usecase.ErrIncompleteDraft), errors.Is(err, model.ErrInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return h.generationFailed(c, err)
	}
	return c.JSON(fiber.Map{"content": res.Content, "resumeId": res.ID.String()})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.processor.Resume(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) DownloadResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	res, err := h.processor.Resume(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume-%s.md"`, res.ID))
	return c.SendString(res.Content)
}

func (h *Handler) ResumePDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	pdf, err := h.processor.RenderPDF(c.UserContext(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return storeError(c, err)
	case err != nil:
		slog.Error("http: pdf export failed", "resume_id", id, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Error rendering resume"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume-%s.pdf"`, id))
	return c.Send(pdf)
}

func (h *Handler) generationFailed(c *fiber.Ctx, err error) error {
	slog.Error("http: error generating resume", "request_id", c.Locals("requestid"), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": generationFailedMessage})
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+param)
	}
	return id, nil
}

func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, model.ErrInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slog.Error("http: store failure", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
