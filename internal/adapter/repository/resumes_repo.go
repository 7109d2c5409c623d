package repository

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) Save(ctx context.Context, res *domain.GeneratedResume) error {
	var sessionID *string
	if res.SessionID != nil {
		s := res.SessionID.String()
		sessionID = &s
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO generated_resumes (id, session_id, user_type, model, prompt, content, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, model = EXCLUDED.model, prompt = EXCLUDED.prompt`,
		res.ID.String(), sessionID, string(res.UserType), res.Model, res.Prompt, res.Content, res.CreatedAt)
	if err != nil {
		return fmt.Errorf("save resume %s: %w", res.ID, err)
	}
	return nil
}

func (r *ResumesRepo) Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedResume, error) {
	var (
		idText    string
		sessionID *string
		userType  string
		out       domain.GeneratedResume
	)
	err := r.pool.QueryRow(ctx, `SELECT id::text, session_id::text, user_type, model, prompt, content, created_at
		FROM generated_resumes WHERE id = $1::uuid`, id.String()).
		Scan(&idText, &sessionID, &userType, &out.Model, &out.Prompt, &out.Content, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resume %s: %w", id, err)
	}
	if out.ID, err = uuid.Parse(idText); err != nil {
		return nil, err
	}
	if sessionID != nil {
		sid, err := uuid.Parse(*sessionID)
		if err != nil {
			return nil, err
		}
		out.SessionID = &sid
	}
	out.UserType = domain.UserType(userType)
	return &out, nil
}
