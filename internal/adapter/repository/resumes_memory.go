package repository

import (
	"context"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// MemoryResumesRepo keeps generated résumés in process memory. It is used
// when no DATABASE_URL is configured and in tests.
type MemoryResumesRepo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.GeneratedResume
}

func NewMemoryResumesRepo() *MemoryResumesRepo {
	return &MemoryResumesRepo{byID: make(map[uuid.UUID]domain.GeneratedResume)}
}

func (r *MemoryResumesRepo) Save(ctx context.Context, res *domain.GeneratedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[res.ID] = *res
	return nil
}

func (r *MemoryResumesRepo) Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}
