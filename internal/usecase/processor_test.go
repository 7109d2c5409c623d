package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	prompts []string
	content string
	err     error
}

func (f *fakeGenerator) GenerateResume(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

type fakeRenderer struct {
	calls int
	out   []byte
	err   error
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

type failingResumes struct{}

func (failingResumes) Save(ctx context.Context, r *domain.GeneratedResume) error {
	return errors.New("db down")
}

func (failingResumes) Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedResume, error) {
	return nil, repository.ErrNotFound
}

func newProcessor(t *testing.T, g Generator) (*Processor, *repository.MemoryResumesRepo, *repository.MemoryDraftsRepo) {
	t.Helper()
	resumes := repository.NewMemoryResumesRepo()
	drafts := repository.NewMemoryDraftsRepo()
	p := NewProcessor(g, resumes, drafts, &fakeRenderer{}, writeTemplates(t), "gpt-4o")
	p.renderBackoff = time.Millisecond
	return p, resumes, drafts
}

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	tpl := `<html><head></head><body>{{range .Sections}}<h2>{{.Title}}</h2>{{range .Lines}}<p>{{.}}</p>{{end}}{{end}}</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.html"), []byte(tpl), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("h2{color:red}"), 0o644))
	return dir
}

func TestGeneratePersistsAndReturnsContent(t *testing.T) {
	gen := &fakeGenerator{content: "# Jane\nGo developer"}
	p, resumes, _ := newProcessor(t, gen)

	res, err := p.Generate(context.Background(), nil, domain.GenerationInput{UserType: domain.UserTypeCurrentStudent})
	require.NoError(t, err)
	assert.Equal(t, "# Jane\nGo developer", res.Content)
	assert.Equal(t, "gpt-4o", res.Model)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Current Student (Freshman to Junior)")
	assert.Equal(t, gen.prompts[0], res.Prompt)

	stored, err := resumes.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Content, stored.Content)
}

func TestGeneratePassesGatewayErrorThrough(t *testing.T) {
	gen := &fakeGenerator{err: ai.ErrGenerationFailed}
	p, _, _ := newProcessor(t, gen)

	_, err := p.Generate(context.Background(), nil, domain.GenerationInput{UserType: domain.UserTypeRecentGraduate})
	require.ErrorIs(t, err, ai.ErrGenerationFailed)
}

func TestGenerateToleratesSaveFailure(t *testing.T) {
	gen := &fakeGenerator{content: "ok"}
	p := NewProcessor(gen, failingResumes{}, repository.NewMemoryDraftsRepo(), nil, "", "gpt-4o")

	res, err := p.Generate(context.Background(), nil, domain.GenerationInput{UserType: domain.UserTypeRecentGraduate})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Content)
}

func TestGenerateFromDraftWritesResumeData(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{content: "# Resume"}
	p, _, drafts := newProcessor(t, gen)
	sid := uuid.New()

	require.NoError(t, p.PutSlot(ctx, sid, domain.SlotUserType, json.RawMessage(`"EXPERIENCED_SEEKER"`)))
	require.NoError(t, p.PutSlot(ctx, sid, domain.SlotAdditionalInfo, json.RawMessage(`{"targetPosition":"Platform Engineer"}`)))
	require.NoError(t, p.PutSlot(ctx, sid, domain.SlotProjectExperience, json.RawMessage(
		`{"projects":[{"name":"Ledger","description":"Double entry ledger","techStack":["Go","Postgres"],"features":["Audit"],"timeline":"6 months","difficulty":"HARD"}]}`)))

	res, err := p.GenerateFromDraft(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, res.SessionID)
	assert.Equal(t, sid, *res.SessionID)

	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Experienced Job Seeker (1-2 years post-graduation)")
	assert.Contains(t, prompt, "Target Position: Platform Engineer")
	assert.Contains(t, prompt, "Project Name: Ledger")
	assert.Contains(t, prompt, "Difficulty Level: Advanced")

	raw, err := drafts.Get(ctx, sid, domain.SlotResumeData)
	require.NoError(t, err)
	assert.JSONEq(t, `"# Resume"`, string(raw))
}

func TestGenerateFromDraftRequiresUserType(t *testing.T) {
	p, _, _ := newProcessor(t, &fakeGenerator{content: "x"})
	sid := uuid.New()
	require.NoError(t, p.PutSlot(context.Background(), sid, domain.SlotAdditionalInfo, json.RawMessage(`{}`)))

	_, err := p.GenerateFromDraft(context.Background(), sid)
	require.ErrorIs(t, err, ErrIncompleteDraft)
}

func TestPutSlotValidation(t *testing.T) {
	ctx := context.Background()
	p, _, _ := newProcessor(t, &fakeGenerator{})
	sid := uuid.New()

	require.ErrorIs(t, p.PutSlot(ctx, sid, domain.SlotUserType, json.RawMessage(`"ROBOT"`)), model.ErrInvalid)
	require.ErrorIs(t, p.PutSlot(ctx, sid, domain.SlotSelectedModel, json.RawMessage(`"gpt-99"`)), model.ErrInvalid)
	require.NoError(t, p.PutSlot(ctx, sid, domain.SlotSelectedModel, json.RawMessage(`"gpt-4-0125-preview"`)))

	_, err := p.Slot(ctx, sid, "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRenderPDFRetriesUntilValid(t *testing.T) {
	ctx := context.Background()
	p, resumes, _ := newProcessor(t, &fakeGenerator{})
	r := &fakeRenderer{out: []byte("not a pdf")}
	p.renderer = r

	res := &domain.GeneratedResume{ID: uuid.New(), Content: "# Summary\nBuilds things", CreatedAt: time.Now()}
	require.NoError(t, resumes.Save(ctx, res))

	_, err := p.RenderPDF(ctx, res.ID)
	require.ErrorIs(t, err, ErrRenderFailed)
	assert.Equal(t, 3, r.calls)

	r.calls = 0
	r.out = []byte("%PDF-1.7 ...")
	out, err := p.RenderPDF(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
	assert.Equal(t, 1, r.calls)
}

func TestRenderPDFUnknownResume(t *testing.T) {
	p, _, _ := newProcessor(t, &fakeGenerator{})
	_, err := p.RenderPDF(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRenderHTMLInlinesStyleAndSections(t *testing.T) {
	dir := writeTemplates(t)
	html, err := RenderHTML(dir, &domain.GeneratedResume{Content: "intro line\n# Skills\n- Go\n\n## Projects\n- <Ledger>"})
	require.NoError(t, err)
	assert.Contains(t, html, "<head><style>h2{color:red}</style>")
	assert.Contains(t, html, "<h2>Skills</h2><p>- Go</p>")
	assert.Contains(t, html, "<h2>Projects</h2><p>- &lt;Ledger&gt;</p>")
	assert.Contains(t, html, "<p>intro line</p>")
}

func TestSplitSections(t *testing.T) {
	got := splitSections("# A\none\r\n\r\n## B\ntwo\nthree")
	require.Len(t, got, 2)
	assert.Equal(t, Section{Title: "A", Lines: []string{"one"}}, got[0])
	assert.Equal(t, Section{Title: "B", Lines: []string{"two", "three"}}, got[1])
	assert.Empty(t, splitSections("  \n"))
}

func TestGenerateFromDraftTreatsNullSlotsAsEmpty(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{content: "# Resume"}
	p, _, _ := newProcessor(t, gen)
	sid := uuid.New()

	for _, slot := range []domain.DraftSlot{domain.SlotUserType, domain.SlotAdditionalInfo, domain.SlotProjectExperience, domain.SlotSelectedModel} {
		require.NoError(t, p.PutSlot(ctx, sid, slot, json.RawMessage(`null`)), string(slot))
	}
	_, err := p.GenerateFromDraft(ctx, sid)
	require.ErrorIs(t, err, ErrIncompleteDraft)

	require.NoError(t, p.PutSlot(ctx, sid, domain.SlotUserType, json.RawMessage(`"CURRENT_STUDENT"`)))
	_, err = p.GenerateFromDraft(ctx, sid)
	require.NoError(t, err)

	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Applicant Type: Current Student (Freshman to Junior)")
	assert.NotContains(t, prompt, "Target Position:")
	assert.NotContains(t, prompt, "Project Experience:\n-")
}
