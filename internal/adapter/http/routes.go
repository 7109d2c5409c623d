package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp wires the middleware stack and every route onto a fiber app.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "resume-builder",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/generate", h.Generate)
	api.All("/generate", h.MethodNotAllowed)
	api.Get("/models", h.Models)

	api.Post("/drafts", h.StartDraft)
	api.Get("/drafts/:id", h.GetDraft)
	api.Delete("/drafts/:id", h.ClearDraft)
	api.Post("/drafts/:id/generate", h.GenerateFromDraft)
	api.Get("/drafts/:id/:slot", h.GetSlot)
	api.Put("/drafts/:id/:slot", h.PutSlot)
	api.Delete("/drafts/:id/:slot", h.DeleteSlot)

	api.Get("/resumes/:id", h.GetResume)
	api.Get("/resumes/:id/download", h.DownloadResume)
	api.Get("/resumes/:id/pdf", h.ResumePDF)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
