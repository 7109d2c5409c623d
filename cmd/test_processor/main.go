// Command test_processor runs one generation end to end against a local
// mock of the chat completions API and prints the result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/infrastructure"
)

func startMockAI() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) < 2 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		prompt := req.Messages[len(req.Messages)-1].Content
		content := "# Test User\n\n## Summary\nGo engineer.\n\n## Projects\n- " + firstProject(prompt)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model": req.Model,
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})
	return httptest.NewServer(mux)
}

func firstProject(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, "- Project Name: ") {
			return strings.TrimPrefix(line, "- Project Name: ")
		}
	}
	return "none"
}

func main() {
	srv := startMockAI()
	defer srv.Close()

	client, err := ai.NewClient(ai.Config{APIKey: "test", BaseURL: srv.URL}, srv.Client())
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: %v\n", err)
		os.Exit(1)
	}

	processor := usecase.NewProcessor(
		client,
		repository.NewMemoryResumesRepo(),
		repository.NewMemoryDraftsRepo(),
		infrastructure.NewChromedpRenderer(os.Getenv("CHROME_PATH")),
		"templates",
		client.Model(),
	)

	in := domain.GenerationInput{
		UserType: domain.UserTypeExperiencedSeeker,
		AdditionalInfo: domain.AdditionalInfo{
			TargetPosition: "Backend Engineer",
			WorkExperiences: []domain.WorkExperience{
				{Company: "Acme", Position: "Engineer", Duration: "2 years"},
			},
		},
		ProjectExperiences: []domain.ProjectExperience{{
			Name:        "Event Pipeline",
			Description: "Streaming ingestion service",
			TechStack:   []string{"Go", "Postgres"},
			Features:    []string{"Backpressure"},
			Timeline:    "3 months",
			Difficulty:  domain.DifficultyHard,
		}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	res, err := processor.Generate(ctx, nil, in)
	if err != nil {
		fmt.Printf("Generate failed: %v\n", err)
		return
	}
	fmt.Printf("Generated resume %s:\n%s\n", res.ID, res.Content)

	if len(os.Args) > 1 && os.Args[1] == "-pdf" {
		pdf, err := processor.RenderPDF(ctx, res.ID)
		if err != nil {
			fmt.Printf("RenderPDF failed: %v\n", err)
			return
		}
		out := fmt.Sprintf("resume-%s.pdf", res.ID)
		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			fmt.Printf("write pdf: %v\n", err)
			return
		}
		fmt.Printf("wrote %s\n", out)
	}
}
