package repository

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/pkg/infrastructure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draftStore interface {
	Put(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot, value json.RawMessage) error
	Get(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) (json.RawMessage, error)
	Delete(ctx context.Context, sessionID uuid.UUID, slot domain.DraftSlot) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
	All(ctx context.Context, sessionID uuid.UUID) (map[domain.DraftSlot]json.RawMessage, error)
}

// checkDraftStore runs the same round trip against every draft backend.
func checkDraftStore(t *testing.T, store draftStore) {
	t.Helper()
	ctx := context.Background()
	sid := uuid.New()
	t.Cleanup(func() { _ = store.Clear(context.Background(), sid) })

	_, err := store.Get(ctx, sid, domain.SlotUserType)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, sid, domain.SlotUserType, json.RawMessage(`"CURRENT_STUDENT"`)))
	require.NoError(t, store.Put(ctx, sid, domain.SlotAdditionalInfo, json.RawMessage(`{"targetPosition":"SRE"}`)))
	require.NoError(t, store.Put(ctx, sid, domain.SlotSelectedModel, json.RawMessage(`null`)))
	require.NoError(t, store.Put(ctx, sid, domain.SlotUserType, json.RawMessage(`"RECENT_GRADUATE"`)))

	got, err := store.Get(ctx, sid, domain.SlotUserType)
	require.NoError(t, err)
	assert.JSONEq(t, `"RECENT_GRADUATE"`, string(got))

	all, err := store.All(ctx, sid)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.JSONEq(t, `{"targetPosition":"SRE"}`, string(all[domain.SlotAdditionalInfo]))
	assert.JSONEq(t, `null`, string(all[domain.SlotSelectedModel]))

	require.NoError(t, store.Delete(ctx, sid, domain.SlotAdditionalInfo))
	_, err = store.Get(ctx, sid, domain.SlotAdditionalInfo)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Clear(ctx, sid))
	all, err = store.All(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryDraftStoreContract(t *testing.T) {
	checkDraftStore(t, NewMemoryDraftsRepo())
}

func TestRedisDraftsRepo(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	client, err := infrastructure.NewRedis(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := NewRedisDraftsRepo(client, time.Minute)
	checkDraftStore(t, repo)

	sid := uuid.New()
	require.NoError(t, repo.Put(context.Background(), sid, domain.SlotUserType, json.RawMessage(`"EXPERIENCED_SEEKER"`)))
	ttl, err := client.TTL(context.Background(), draftKey(sid)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
	require.NoError(t, repo.Clear(context.Background(), sid))
}

func TestPostgresRepos(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := infrastructure.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, migration.RunMigrations(ctx, pool))

	t.Run("drafts", func(t *testing.T) {
		checkDraftStore(t, NewDraftsRepo(pool))
	})

	t.Run("resumes", func(t *testing.T) {
		repo := NewResumesRepo(pool)
		sid := uuid.New()
		res := &domain.GeneratedResume{
			ID:        uuid.New(),
			SessionID: &sid,
			UserType:  domain.UserTypeRecentGraduate,
			Model:     "gpt-4o",
			Prompt:    "prompt",
			Content:   "# Resume",
			CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		}
		require.NoError(t, repo.Save(ctx, res))
		t.Cleanup(func() {
			_, _ = pool.Exec(context.Background(), `DELETE FROM generated_resumes WHERE id = $1::uuid`, res.ID.String())
		})

		got, err := repo.Get(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, res.ID, got.ID)
		require.NotNil(t, got.SessionID)
		assert.Equal(t, sid, *got.SessionID)
		assert.Equal(t, res.Content, got.Content)
		assert.True(t, res.CreatedAt.Equal(got.CreatedAt))

		_, err = repo.Get(ctx, uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})
}
