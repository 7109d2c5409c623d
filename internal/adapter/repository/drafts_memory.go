package repository

import (
	"context"
	"encoding/json"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

type MemoryDraftsRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[domain.DraftSlot]json.RawMessage
}

func NewMemoryDraftsRepo() *MemoryDraftsRepo {
	return &MemoryDraftsRepo{sessions: make(map[uuid.UUID]map[domain.DraftSlot]json.RawMessage)}
}

func (r *MemoryDraftsRepo) Put(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot, value json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := r.sessions[sessionID]
	if !ok {
		slots = make(map[domain.DraftSlot]json.RawMessage)
		r.sessions[sessionID] = slots
	}
	slots[slot] = append(json.RawMessage(nil), value...)
	return nil
}

func (r *MemoryDraftsRepo) Get(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.sessions[sessionID][slot]
	if !ok {
		return nil, ErrNotFound
	}
	return append(json.RawMessage(nil), v...), nil
}

func (r *MemoryDraftsRepo) Delete(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions[sessionID], slot)
	return nil
}

func (r *MemoryDraftsRepo) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *MemoryDraftsRepo) All(ctx context.Context, sessionID uuid.UUID) (map[domain.DraftSlot]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[domain.DraftSlot]json.RawMessage, len(r.sessions[sessionID]))
	for k, v := range r.sessions[sessionID] {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out, nil
}
