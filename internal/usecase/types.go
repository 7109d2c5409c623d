package usecase

import (
	"context"
	"encoding/json"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// Generator turns a prompt into résumé text with one upstream call.
type Generator interface {
	GenerateResume(ctx context.Context, prompt string) (string, error)
}

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type ResumesRepo interface {
	Save(ctx context.Context, r *domain.GeneratedResume) error
	Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedResume, error)
}

// DraftStore persists the raw JSON of each form slot per session.
type DraftStore interface {
	Put(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot, value json.RawMessage) error
	Get(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) (json.RawMessage, error)
	Delete(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
	All(ctx context.Context, sessionID uuid.UUID) (map[domain.DraftSlot]json.RawMessage, error)
}
