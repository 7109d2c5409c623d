package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// ErrRenderFailed is returned when no valid PDF could be produced.
var ErrRenderFailed = errors.New("pdf rendering failed")

// RenderHTML executes resume.html from tplDir for res and inlines
// style.css when the directory has one.
func RenderHTML(tplDir string, res *domain.GeneratedResume) (string, error) {
	tpl, err := template.ParseFiles(filepath.Join(tplDir, "resume.html"))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := map[string]interface{}{
		"Resume":   res,
		"Sections": splitSections(res.Content),
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	html := buf.String()

	if css, err := os.ReadFile(filepath.Join(tplDir, "style.css")); err == nil && len(css) > 0 {
		cssBlock := "<style>" + string(css) + "</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}

// Section is one heading of the generated text and the lines below it.
type Section struct {
	Title string
	Lines []string
}

// splitSections groups markdown-ish text by its "#" headings. Text before
// the first heading lands in an untitled section.
func splitSections(content string) []Section {
	var out []Section
	cur := Section{}
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			if cur.Title != "" || len(cur.Lines) > 0 {
				out = append(out, cur)
			}
			cur = Section{Title: strings.TrimSpace(strings.TrimLeft(trimmed, "#"))}
			continue
		}
		if trimmed == "" {
			continue
		}
		cur.Lines = append(cur.Lines, trimmed)
	}
	if cur.Title != "" || len(cur.Lines) > 0 {
		out = append(out, cur)
	}
	return out
}

// RenderPDF renders a stored résumé to PDF, retrying the renderer with
// exponential backoff.
func (p *Processor) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	res, err := p.resumes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	html, err := RenderHTML(p.tplDir, res)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	var renderErr error
	for i := 0; i < p.renderAttempts; i++ {
		var pdfBytes []byte
		pdfBytes, renderErr = p.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
				return pdfBytes, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		slog.Warn("processor: render attempt failed", "attempt", i+1, "resume_id", id, "error", renderErr)
		if i < p.renderAttempts-1 {
			backoff := time.Duration(1<<i) * p.renderBackoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrRenderFailed, renderErr)
}
