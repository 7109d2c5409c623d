package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

type Pricing struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// ModelInfo describes a chat model the form offers. Prices are USD per 1K
// tokens.
type ModelInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       Pricing `json:"pricePerToken"`
	MaxTokens   int     `json:"maxTokens"`
	Recommended bool    `json:"recommended"`
}

var supportedModels = []ModelInfo{
	{
		ID:          "gpt-4-0125-preview",
		Name:        "GPT-4 Turbo",
		Description: "Latest GPT-4 model with a 128K context window, suited to detailed resume content",
		Price:       Pricing{Input: 0.01, Output: 0.03},
		MaxTokens:   128000,
		Recommended: true,
	},
	{
		ID:          "gpt-4-1106-preview",
		Name:        "GPT-4 Turbo (Legacy)",
		Description: "Previous generation GPT-4 Turbo model",
		Price:       Pricing{Input: 0.01, Output: 0.03},
		MaxTokens:   128000,
	},
	{
		ID:          "gpt-4",
		Name:        "GPT-4",
		Description: "Standard GPT-4 model for workloads that need stability",
		Price:       Pricing{Input: 0.03, Output: 0.06},
		MaxTokens:   8192,
	},
	{
		ID:          "gpt-3.5-turbo-0125",
		Name:        "GPT-3.5 Turbo",
		Description: "Latest GPT-3.5 model, cost effective",
		Price:       Pricing{Input: 0.0005, Output: 0.0015},
		MaxTokens:   16385,
	},
}

// SupportedModels returns a copy of the catalog in display order.
func SupportedModels() []ModelInfo {
	out := make([]ModelInfo, len(supportedModels))
	copy(out, supportedModels)
	return out
}

func LookupModel(id string) (ModelInfo, bool) {
	for _, m := range supportedModels {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// PriceInfo estimates pricing for any model id, catalogued or not.
func PriceInfo(id string) Pricing {
	switch {
	case strings.HasPrefix(id, "gpt-4"):
		if strings.Contains(id, "0125") || strings.Contains(id, "1106") {
			return Pricing{Input: 0.01, Output: 0.03}
		}
		return Pricing{Input: 0.03, Output: 0.06}
	case strings.HasPrefix(id, "gpt-3.5"):
		return Pricing{Input: 0.0005, Output: 0.0015}
	}
	return Pricing{Input: 0.03, Output: 0.06}
}

func MaxTokens(id string) int {
	switch {
	case strings.Contains(id, "0125") || strings.Contains(id, "1106"):
		return 128000
	case strings.HasPrefix(id, "gpt-4"):
		return 8192
	case strings.HasPrefix(id, "gpt-3.5"):
		return 16385
	}
	return 8192
}

// FilterChatModels keeps ids that look like GPT chat models.
func FilterChatModels(ids []string) []string {
	var out []string
	for _, id := range ids {
		if !strings.Contains(strings.ToLower(id), "gpt") {
			continue
		}
		if strings.Contains(id, "instruct") || strings.Contains(id, "similarity") || strings.Contains(id, "search") {
			continue
		}
		out = append(out, id)
	}
	return out
}

type modelList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ListModels returns the GPT chat model ids the upstream account can use.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/models", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list models: upstream returned status %d", resp.StatusCode)
	}

	var list modelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	ids := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		ids = append(ids, m.ID)
	}
	return FilterChatModels(ids), nil
}

// AvailableModels lists the catalog models the upstream reports, in catalog
// order, followed by any other reported GPT chat models described with
// PriceInfo and MaxTokens. When the upstream cannot be asked the full
// catalog is returned.
func (c *Client) AvailableModels(ctx context.Context) []ModelInfo {
	ids, err := c.ListModels(ctx)
	if err != nil {
		slog.Warn("ai.client: listing models failed, using catalog", "error", err)
		return SupportedModels()
	}
	return describeModels(ids)
}

func describeModels(ids []string) []ModelInfo {
	have := make(map[string]bool, len(ids))
	for _, id := range ids {
		have[id] = true
	}
	out := []ModelInfo{}
	for _, m := range supportedModels {
		if have[m.ID] {
			out = append(out, m)
		}
	}
	for _, id := range ids {
		if _, ok := LookupModel(id); ok {
			continue
		}
		out = append(out, ModelInfo{
			ID:          id,
			Name:        id,
			Description: "Reported by the upstream account",
			Price:       PriceInfo(id),
			MaxTokens:   MaxTokens(id),
		})
	}
	return out
}
