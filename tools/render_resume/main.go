// Command render_resume previews a markdown résumé through the HTML
// template without calling the model or a browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/google/uuid"
)

func main() {
	in := flag.String("in", "resume.md", "markdown résumé to render")
	tplDir := flag.String("templates", "templates", "template directory")
	out := flag.String("out", "", "output html file (default: input name with .html)")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}

	res := &domain.GeneratedResume{
		ID:        uuid.New(),
		Content:   string(b),
		CreatedAt: time.Now().UTC(),
	}
	html, err := usecase.RenderHTML(*tplDir, res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outFile := *out
	if outFile == "" {
		outFile = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".html"
	}
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write html: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
