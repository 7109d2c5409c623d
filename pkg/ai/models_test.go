package ai

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedModelsOrderAndCopy(t *testing.T) {
	models := SupportedModels()
	require.Len(t, models, 4)
	assert.Equal(t, "gpt-4-0125-preview", models[0].ID)
	assert.True(t, models[0].Recommended)
	assert.Equal(t, "gpt-3.5-turbo-0125", models[3].ID)

	models[0].Name = "mutated"
	assert.Equal(t, "GPT-4 Turbo", SupportedModels()[0].Name)
}

func TestLookupModel(t *testing.T) {
	m, ok := LookupModel("gpt-4")
	require.True(t, ok)
	assert.Equal(t, 8192, m.MaxTokens)

	_, ok = LookupModel("gpt-4o")
	assert.False(t, ok)
}

func TestPriceInfoAndMaxTokens(t *testing.T) {
	tests := []struct {
		id        string
		price     Pricing
		maxTokens int
	}{
		{id: "gpt-4-0125-preview", price: Pricing{0.01, 0.03}, maxTokens: 128000},
		{id: "gpt-4-1106-preview", price: Pricing{0.01, 0.03}, maxTokens: 128000},
		{id: "gpt-4", price: Pricing{0.03, 0.06}, maxTokens: 8192},
		{id: "gpt-3.5-turbo", price: Pricing{0.0005, 0.0015}, maxTokens: 16385},
		{id: "claude", price: Pricing{0.03, 0.06}, maxTokens: 8192},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.price, PriceInfo(tt.id), tt.id)
		assert.Equal(t, tt.maxTokens, MaxTokens(tt.id), tt.id)
	}
}

func TestFilterChatModels(t *testing.T) {
	got := FilterChatModels([]string{"gpt-4", "gpt-3.5-turbo-instruct", "text-similarity-ada", "whisper-1", "GPT-4-0125-preview", "gpt-search"})
	assert.Equal(t, []string{"gpt-4", "GPT-4-0125-preview"}, got)
}

func TestAvailableModelsIntersectsCatalog(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"gpt-4"},{"id":"gpt-3.5-turbo-0125"},{"id":"dall-e-3"}]}`))
	})

	got := c.AvailableModels(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "gpt-4", got[0].ID)
	assert.Equal(t, "gpt-3.5-turbo-0125", got[1].ID)
}

func TestAvailableModelsFallsBackToCatalog(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.Equal(t, SupportedModels(), c.AvailableModels(context.Background()))
}

func TestAvailableModelsDescribesUncataloguedModels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"gpt-4o"},{"id":"gpt-4"},{"id":"gpt-3.5-turbo-1106"},{"id":"whisper-1"}]}`))
	})

	got := c.AvailableModels(context.Background())
	require.Len(t, got, 3)
	assert.Equal(t, "gpt-4", got[0].ID)
	assert.Equal(t, SupportedModels()[2], got[0])

	assert.Equal(t, "gpt-4o", got[1].ID)
	assert.Equal(t, PriceInfo("gpt-4o"), got[1].Price)
	assert.Equal(t, 8192, got[1].MaxTokens)
	assert.False(t, got[1].Recommended)

	assert.Equal(t, "gpt-3.5-turbo-1106", got[2].ID)
	assert.Equal(t, Pricing{Input: 0.0005, Output: 0.0015}, got[2].Price)
	assert.Equal(t, 128000, got[2].MaxTokens)
}

func TestAvailableModelsNeverNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":"dall-e-3"}]}`))
	})

	got := c.AvailableModels(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}
