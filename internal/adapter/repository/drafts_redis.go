package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisDraftsRepo keeps each session in one hash keyed by slot. Every write
// refreshes the session TTL.
type RedisDraftsRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftsRepo(client *redis.Client, ttl time.Duration) *RedisDraftsRepo {
	return &RedisDraftsRepo{client: client, ttl: ttl}
}

func draftKey(sessionID uuid.UUID) string {
	return "resume:draft:" + sessionID.String()
}

func (r *RedisDraftsRepo) Put(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot, value json.RawMessage) error {
	key := draftKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, string(slot), []byte(value))
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put draft slot %s: %w", slot, err)
	}
	return nil
}

func (r *RedisDraftsRepo) Get(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) (json.RawMessage, error) {
	b, err := r.client.HGet(ctx, draftKey(sessionID), string(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get draft slot %s: %w", slot, err)
	}
	return json.RawMessage(b), nil
}

func (r *RedisDraftsRepo) Delete(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) error {
	return r.client.HDel(ctx, draftKey(sessionID), string(slot)).Err()
}

func (r *RedisDraftsRepo) Clear(ctx context.Context, sessionID uuid.UUID) error {
	return r.client.Del(ctx, draftKey(sessionID)).Err()
}

func (r *RedisDraftsRepo) All(ctx context.Context, sessionID uuid.UUID) (map[domain.DraftSlot]json.RawMessage, error) {
	vals, err := r.client.HGetAll(ctx, draftKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list draft slots: %w", err)
	}
	out := make(map[domain.DraftSlot]json.RawMessage, len(vals))
	for k, v := range vals {
		out[domain.DraftSlot(k)] = json.RawMessage(v)
	}
	return out, nil
}
