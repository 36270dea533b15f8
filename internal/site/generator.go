// Package site renders the portfolio page shell and writes the static site.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"golang.org/x/net/html"

	"github.com/akaram/folio/internal/config"
	"github.com/akaram/folio/internal/portfolio"
	"github.com/akaram/folio/internal/render"
)

// Generator renders the portfolio page and assembles the output directory.
type Generator struct {
	cfg *config.Config
	log *log.Entry
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		log: log.WithField("component", "site"),
	}
}

// shellData feeds the page shell template.
type shellData struct {
	Title string
	Owner config.Owner
	Year  int
}

// renderShell executes the shell template into raw HTML.
func renderShell(cfg *config.Config) ([]byte, error) {
	tmpl, err := template.New("shell").Parse(shellTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing shell template: %w", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, shellData{
		Title: cfg.Title,
		Owner: cfg.Owner,
		Year:  time.Now().Year(),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering shell template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage renders the shell, runs the population pipeline against the
// configured data source, and returns the serialized page. A load or
// validation failure still produces a revealed page shell; it is logged
// here and not treated as fatal.
func (g *Generator) RenderPage(ctx context.Context) ([]byte, error) {
	shell, err := renderShell(g.cfg)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("parsing shell: %w", err)
	}

	pipe := render.NewPipeline(doc)
	if err := pipe.Run(ctx, portfolio.NewLoader(g.cfg.DataSource)); err != nil {
		g.log.WithError(err).Warn("page rendered without portfolio content")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("serializing page: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate writes the full static site into the configured output
// directory and returns its path.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	page, err := g.RenderPage(ctx)
	if err != nil {
		return "", err
	}

	out := g.cfg.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(out, "index.html"), page, 0o644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(out, "style.css"), []byte(StyleCSS), 0o644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(out, "script.js"), []byte(ScriptJS), 0o644); err != nil {
		return "", err
	}

	// Publish a local data source alongside the page so the deployed site
	// carries its own data.json.
	if err := g.publishData(out); err != nil {
		g.log.WithError(err).Warn("data file not published")
	}

	copied, err := CopyAssets(g.cfg.Assets, out)
	if err != nil {
		return "", fmt.Errorf("copying assets: %w", err)
	}
	if copied > 0 {
		g.log.WithField("files", copied).Info("assets copied")
	}

	return out, nil
}

// publishData copies a file-based data source into the output directory.
// URL sources stay remote and are skipped.
func (g *Generator) publishData(out string) error {
	src := g.cfg.DataSource
	if src == "" || isRemote(src) {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(out, "data.json"), data, 0o644)
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
