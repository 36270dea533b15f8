// Package render populates a parsed portfolio page shell from the data
// document: it mirrors the contact fragments, loads and validates the data,
// and fills each section container, degrading gracefully wherever a piece
// is missing or malformed.
package render

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/akaram/folio/internal/dom"
	"github.com/akaram/folio/internal/portfolio"
)

// State tracks where a pipeline run is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateBuilding
	StateDone
	// StateFailedShown means loading or validation failed but the page was
	// still revealed with its placeholders.
	StateFailedShown
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateBuilding:
		return "building"
	case StateDone:
		return "done"
	case StateFailedShown:
		return "failed-but-shown"
	default:
		return "unknown"
	}
}

// Pipeline populates one parsed page document from one data document.
type Pipeline struct {
	doc      *html.Node
	resolver *dom.Resolver
	escaper  *Escaper
	markdown goldmark.Markdown
	log      *log.Entry

	data     gjson.Result
	state    State
	revealed bool
}

// NewPipeline creates a Pipeline for the given parsed page shell.
func NewPipeline(doc *html.Node) *Pipeline {
	return &Pipeline{
		doc:      doc,
		resolver: dom.NewResolver(doc),
		escaper:  NewEscaper(),
		// The summary is author-controlled markup, the same trust model as
		// the contact fragments, so raw HTML passes through unfiltered.
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		log:      log.WithField("run", uuid.NewString()[:8]),
		state:    StateIdle,
	}
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State { return p.state }

// Run executes the full population sequence: contact sync, load, validate,
// build all sections, reveal. The page is revealed exactly once whether or
// not the data could be loaded; a failure leaves the placeholders visible
// instead of blocking the page. The load/validate error, if any, is
// returned for the caller's benefit after the page has been revealed.
func (p *Pipeline) Run(ctx context.Context, loader *portfolio.Loader) error {
	start := time.Now()

	// Contact info is authored once in the sidebar; mirror it before the
	// data fetch so the header is complete even when loading fails.
	SyncContacts(p.resolver)

	p.state = StateLoading
	data, err := loader.Load(ctx)
	if err != nil {
		return p.fail(err)
	}
	if err := portfolio.Validate(data); err != nil {
		return p.fail(err)
	}
	p.data = gjson.ParseBytes(data)

	p.state = StateBuilding
	p.runBuilder("summary", p.buildSummary)
	p.runBuilder("experience", p.buildExperience)
	p.runBuilder("education", p.buildEducation)
	p.runBuilder("skills", p.buildSkills)
	p.runBuilder("projects", p.buildProjects)

	p.reveal()
	p.state = StateDone
	p.log.WithField("elapsed", time.Since(start).Round(time.Microsecond).String()).
		Info("portfolio content rendered")
	return nil
}

// fail logs the pipeline-level error, reveals the page shell anyway, and
// passes the error back up.
func (p *Pipeline) fail(err error) error {
	p.log.WithError(err).Error("portfolio data unavailable")
	p.reveal()
	p.state = StateFailedShown
	return err
}

// reveal adds the content-loaded class to the body, at most once per run.
// Surrounding CSS keys off this class to hide loading placeholders.
func (p *Pipeline) reveal() {
	if p.revealed {
		return
	}
	p.revealed = true
	if body := p.resolver.Lookup("body"); body != nil {
		dom.AddClass(body, "content-loaded")
	}
}

// runBuilder runs one section builder inside its own failure boundary. A
// failed or panicking builder is logged and skipped; the remaining sections
// still run and the container keeps its placeholder.
func (p *Pipeline) runBuilder(name string, build func() error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Errorf("building %s section: panic: %v", name, r)
		}
	}()
	if err := build(); err != nil {
		p.log.Warnf("skipping %s section: %v", name, err)
	}
}
