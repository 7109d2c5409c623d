package infrastructure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Paper is a page size in inches.
type Paper struct {
	Width, Height float64
}

var (
	PaperA4     = Paper{Width: 8.27, Height: 11.69}
	PaperLetter = Paper{Width: 8.5, Height: 11}
)

// PaperByName resolves "A4" or "LETTER", ignoring case.
func PaperByName(name string) (Paper, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "A4":
		return PaperA4, nil
	case "LETTER":
		return PaperLetter, nil
	}
	return Paper{}, fmt.Errorf("unknown paper size %q", name)
}

// ChromedpRenderer prints résumé HTML to PDF with a headless Chrome. Each
// call starts its own browser so concurrent exports do not share tabs.
type ChromedpRenderer struct {
	ChromePath string
	Timeout    time.Duration
	Paper      Paper
	MarginInch float64
}

func NewChromedpRenderer(chromePath string) *ChromedpRenderer {
	return &ChromedpRenderer{
		ChromePath: chromePath,
		Timeout:    60 * time.Second,
		Paper:      PaperA4,
		MarginInch: 0.4,
	}
}

func (r *ChromedpRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}
	return opts
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	runCtx, cancel := context.WithTimeout(tabCtx, r.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(cdp.FrameID(tree.Frame.ID), html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(r.Paper.Width).
				WithPaperHeight(r.Paper.Height).
				WithMarginTop(r.MarginInch).
				WithMarginBottom(r.MarginInch).
				WithMarginLeft(r.MarginInch).
				WithMarginRight(r.MarginInch).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp print: %w", err)
	}
	return pdf, nil
}
