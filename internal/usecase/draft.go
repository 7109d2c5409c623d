package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"

	"github.com/google/uuid"
)

// ErrIncompleteDraft means the session has no applicant category yet.
var ErrIncompleteDraft = errors.New("draft has no user type")

// GenerateFromDraft assembles a submission from the session's slots and
// generates from it. Missing info or project slots count as empty.
func (p *Processor) GenerateFromDraft(ctx context.Context, sessionID uuid.UUID) (*domain.GeneratedResume, error) {
	in, err := p.assembleDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return p.Generate(ctx, &sessionID, in)
}

func (p *Processor) assembleDraft(ctx context.Context, sessionID uuid.UUID) (domain.GenerationInput, error) {
	slots, err := p.drafts.All(ctx, sessionID)
	if err != nil {
		return domain.GenerationInput{}, err
	}

	rawType, ok := slots[domain.SlotUserType]
	if !ok || model.IsNull(rawType) {
		return domain.GenerationInput{}, ErrIncompleteDraft
	}

	req := map[string]json.RawMessage{
		"userType":       rawType,
		"additionalInfo": json.RawMessage(`{}`),
	}
	if info, ok := slots[domain.SlotAdditionalInfo]; ok && !model.IsNull(info) {
		req["additionalInfo"] = info
	}
	body, err := json.Marshal(req)
	if err != nil {
		return domain.GenerationInput{}, err
	}
	in, err := model.DecodeGenerationInput(body)
	if err != nil {
		return domain.GenerationInput{}, err
	}

	if rawProjects, ok := slots[domain.SlotProjectExperience]; ok && !model.IsNull(rawProjects) {
		pd, err := model.DecodeProjectDraft(rawProjects)
		if err != nil {
			return domain.GenerationInput{}, fmt.Errorf("project_experience: %w", err)
		}
		if pd.Projects != nil {
			in.ProjectExperiences = pd.Projects
		}
	}
	return in, nil
}

// PutSlot validates and stores one draft slot.
func (p *Processor) PutSlot(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot, raw json.RawMessage) error {
	if err := model.ValidateSlot(slot, raw); err != nil {
		return err
	}
	if slot == domain.SlotSelectedModel && !model.IsNull(raw) {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return fmt.Errorf("%w: selected_model: %v", model.ErrInvalid, err)
		}
		if _, ok := ai.LookupModel(id); !ok {
			return fmt.Errorf("%w: unsupported model %q", model.ErrInvalid, id)
		}
	}
	return p.drafts.Put(ctx, sessionID, slot, raw)
}

func (p *Processor) Slot(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) (json.RawMessage, error) {
	if !slot.Valid() {
		return nil, repository.ErrNotFound
	}
	return p.drafts.Get(ctx, sessionID, slot)
}

func (p *Processor) DeleteSlot(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) error {
	if !slot.Valid() {
		return repository.ErrNotFound
	}
	return p.drafts.Delete(ctx, sessionID, slot)
}

func (p *Processor) ClearDraft(ctx context.Context, sessionID uuid.UUID) error {
	return p.drafts.Clear(ctx, sessionID)
}

// Draft returns every stored slot of a session.
func (p *Processor) Draft(ctx context.Context, sessionID uuid.UUID) (map[domain.DraftSlot]json.RawMessage, error) {
	return p.drafts.All(ctx, sessionID)
}
