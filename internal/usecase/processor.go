package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/pkg/ai/formatters"

	"github.com/google/uuid"
)

type Processor struct {
	generator Generator
	resumes   ResumesRepo
	drafts    DraftStore
	renderer  Renderer
	tplDir    string
	model     string

	renderAttempts int
	renderBackoff  time.Duration
}

func NewProcessor(g Generator, resumes ResumesRepo, drafts DraftStore, r Renderer, tplDir, model string) *Processor {
	return &Processor{
		generator:      g,
		resumes:        resumes,
		drafts:         drafts,
		renderer:       r,
		tplDir:         tplDir,
		model:          model,
		renderAttempts: 3,
		renderBackoff:  time.Second,
	}
}

// Generate builds the prompt for in, asks the generator once and records
// the result. Persistence failures are logged and do not fail the call.
func (p *Processor) Generate(ctx context.Context, sessionID *uuid.UUID, in domain.GenerationInput) (*domain.GeneratedResume, error) {
	prompt := formatters.ResumePrompt(in)

	content, err := p.generator.GenerateResume(ctx, prompt)
	if err != nil {
		return nil, err
	}

	res := &domain.GeneratedResume{
		ID:        uuid.New(),
		SessionID: sessionID,
		UserType:  in.UserType,
		Model:     p.model,
		Prompt:    prompt,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if p.resumes != nil {
		if err := p.resumes.Save(ctx, res); err != nil {
			slog.Warn("processor: unable to save generated resume (non-fatal)", "resume_id", res.ID, "error", err)
		}
	}

	if sessionID != nil && p.drafts != nil {
		raw, err := json.Marshal(content)
		if err == nil {
			err = p.drafts.Put(ctx, *sessionID, domain.SlotResumeData, raw)
		}
		if err != nil {
			slog.Warn("processor: unable to store resume_data slot (non-fatal)", "session_id", sessionID.String(), "error", err)
		}
	}

	slog.Info("processor: resume generated", "resume_id", res.ID, "user_type", string(in.UserType), "chars", len(content))
	return res, nil
}

func (p *Processor) Resume(ctx context.Context, id uuid.UUID) (*domain.GeneratedResume, error) {
	return p.resumes.Get(ctx, id)
}
