package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DraftsRepo stores draft slots in Postgres, one row per (session, slot).
type DraftsRepo struct {
	pool *pgxpool.Pool
}

func NewDraftsRepo(pool *pgxpool.Pool) *DraftsRepo {
	return &DraftsRepo{pool: pool}
}

func (r *DraftsRepo) Put(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot, value json.RawMessage) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO draft_slots (session_id, slot, value, updated_at)
		VALUES ($1::uuid, $2, $3::jsonb, now())
		ON CONFLICT (session_id, slot) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		sessionID.String(), string(slot), string(value))
	if err != nil {
		return fmt.Errorf("put draft slot %s: %w", slot, err)
	}
	return nil
}

func (r *DraftsRepo) Get(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) (json.RawMessage, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM draft_slots WHERE session_id = $1::uuid AND slot = $2`,
		sessionID.String(), string(slot)).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get draft slot %s: %w", slot, err)
	}
	return json.RawMessage(raw), nil
}

func (r *DraftsRepo) Delete(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM draft_slots WHERE session_id = $1::uuid AND slot = $2`, sessionID.String(), string(slot))
	return err
}

func (r *DraftsRepo) Clear(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM draft_slots WHERE session_id = $1::uuid`, sessionID.String())
	return err
}

// All returns every stored slot of a session, aggregated server side.
func (r *DraftsRepo) All(ctx context.Context, sessionID uuid.UUID) (map[domain.DraftSlot]json.RawMessage, error) {
	var agg map[string]json.RawMessage
	err := queryJSON(ctx, r.pool, &agg,
		`SELECT coalesce(jsonb_object_agg(slot, value), '{}'::jsonb) FROM draft_slots WHERE session_id = $1::uuid`,
		sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list draft slots: %w", err)
	}
	out := make(map[domain.DraftSlot]json.RawMessage, len(agg))
	for k, v := range agg {
		out[domain.DraftSlot(k)] = v
	}
	return out, nil
}

// queryJSON runs a SQL that returns a single json value and unmarshals it.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out interface{}, sql string, args ...interface{}) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
