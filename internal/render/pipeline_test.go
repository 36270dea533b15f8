package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akaram/folio/internal/dom"
	"github.com/akaram/folio/internal/portfolio"
)

const validDoc = `{
	"personal": {"summary": "Hello there."},
	"experience": [{"company":"Acme","title":"Engineer","period":"2020 - 2022","startDate":"2020-01","highlights":["Shipped X"]}],
	"education": [{"name":"Cert","issuer":"Org","date":"2021","dateTime":"2021-06"}],
	"technicalSkills": {"Languages":"Go, SQL"},
	"projects": [{"name":"me/repo","url":"https://github.com/me/repo","description":"Things"}]
}`

// pipelinePage carries every container plus a contact pair, mirroring the
// real shell.
const pipelinePage = `<!DOCTYPE html>
<html><body>
<header>
	<span data-test-location="header" data-test-name="contact-email"></span>
	<div class="header-summary"><p class="loading-placeholder">Loading</p></div>
</header>
<aside>
	<span data-test-location="sidebar" data-test-name="contact-email"><a href="mailto:jo@example.com">jo@example.com</a></span>
</aside>
<ul class="experience-list"><li class="loading-placeholder">Loading</li></ul>
<ul class="education-list"><li class="loading-placeholder">Loading</li></ul>
<section class="technical-skills"><dl><dt class="loading-placeholder">Loading</dt></dl></section>
<section class="key-projects"><dl><dt class="loading-placeholder">Loading</dt></dl></section>
</body></html>`

func serveJSON(t *testing.T, status int, body string) *portfolio.Loader {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return portfolio.NewLoader(srv.URL + "/data.json")
}

func assertRevealedOnce(t *testing.T, p *Pipeline) {
	t.Helper()
	body := p.resolver.Lookup("body")
	if body == nil {
		t.Fatal("body not found")
	}
	if got := strings.Count(dom.Attr(body, "class"), "content-loaded"); got != 1 {
		t.Errorf("content-loaded count = %d, want exactly 1 (class=%q)", got, dom.Attr(body, "class"))
	}
}

func TestRunSuccess(t *testing.T) {
	p := NewPipeline(parseDoc(t, pipelinePage))
	loader := serveJSON(t, http.StatusOK, validDoc)

	if err := p.Run(context.Background(), loader); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if p.State() != StateDone {
		t.Errorf("state = %s, want done", p.State())
	}
	assertRevealedOnce(t, p)

	// Contact sync ran.
	header := p.resolver.Lookup(`[data-test-location="header"][data-test-name="contact-email"]`)
	if !strings.Contains(dom.InnerHTML(header), "jo@example.com") {
		t.Error("contact info not mirrored into header")
	}

	// End-to-end section content.
	exp := p.containerHTML(t, experienceSelector)
	if !strings.Contains(exp, "Acme") || !strings.Contains(exp, "<li>Shipped X</li>") {
		t.Errorf("experience not rendered: %q", exp)
	}
	if got := p.containerHTML(t, summarySelector); !strings.Contains(got, "Hello there.") {
		t.Errorf("summary not rendered: %q", got)
	}
	if got := p.containerHTML(t, projectsSelector); !strings.Contains(got, "github.com/me/repo") {
		t.Errorf("projects not rendered: %q", got)
	}
}

func TestRunLoadFailure(t *testing.T) {
	p := NewPipeline(parseDoc(t, pipelinePage))
	loader := serveJSON(t, http.StatusNotFound, "nope")

	err := p.Run(context.Background(), loader)
	if err == nil {
		t.Fatal("Run should surface the load error")
	}
	var loadErr *portfolio.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want LoadError", err)
	}
	if loadErr.Status != http.StatusNotFound || loadErr.Resource != "data.json" {
		t.Errorf("LoadError = %+v", loadErr)
	}

	// Failure still reveals the page; placeholders stay.
	if p.State() != StateFailedShown {
		t.Errorf("state = %s, want failed-but-shown", p.State())
	}
	assertRevealedOnce(t, p)
	if got := p.containerHTML(t, experienceSelector); !strings.Contains(got, "loading-placeholder") {
		t.Errorf("sections must stay in placeholder state on load failure: %q", got)
	}

	// Contact sync happens before the fetch, so it survives the failure.
	header := p.resolver.Lookup(`[data-test-location="header"][data-test-name="contact-email"]`)
	if !strings.Contains(dom.InnerHTML(header), "jo@example.com") {
		t.Error("contact info should be mirrored even when loading fails")
	}
}

func TestRunValidationFailure(t *testing.T) {
	p := NewPipeline(parseDoc(t, pipelinePage))
	loader := serveJSON(t, http.StatusOK, `{"personal":{"summary":"only me"}}`)

	err := p.Run(context.Background(), loader)
	var valErr *portfolio.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	want := "experience, education, technicalSkills, projects"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want it to name %q", err.Error(), want)
	}
	assertRevealedOnce(t, p)
}

func TestRunParseFailure(t *testing.T) {
	p := NewPipeline(parseDoc(t, pipelinePage))
	loader := serveJSON(t, http.StatusOK, "{not json")

	if err := p.Run(context.Background(), loader); err == nil {
		t.Fatal("Run should surface the parse error")
	}
	assertRevealedOnce(t, p)
}

func TestRunFileSource(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(dataPath, []byte(validDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewPipeline(parseDoc(t, pipelinePage))
	if err := p.Run(context.Background(), portfolio.NewLoader(dataPath)); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if p.State() != StateDone {
		t.Errorf("state = %s, want done", p.State())
	}
	assertRevealedOnce(t, p)
}

func TestRunBadSectionDoesNotBlockOthers(t *testing.T) {
	doc := `{
		"personal": {"summary": "Hi"},
		"experience": "not a list",
		"education": [{"name":"Cert","issuer":"Org","date":"2021","dateTime":"2021-06"}],
		"technicalSkills": {"Languages":"Go"},
		"projects": [{"name":"me/repo","url":"https://github.com/me/repo","description":"Things"}]
	}`
	p := NewPipeline(parseDoc(t, pipelinePage))

	if err := p.Run(context.Background(), serveJSON(t, http.StatusOK, doc)); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got := p.containerHTML(t, experienceSelector); !strings.Contains(got, "loading-placeholder") {
		t.Errorf("malformed experience should be skipped: %q", got)
	}
	if got := p.containerHTML(t, educationSelector); !strings.Contains(got, "Cert") {
		t.Errorf("education should still render: %q", got)
	}
	if got := p.containerHTML(t, skillsSelector); !strings.Contains(got, "Languages") {
		t.Errorf("skills should still render: %q", got)
	}
	assertRevealedOnce(t, p)
}

func TestStateString(t *testing.T) {
	states := map[State]string{
		StateIdle:        "idle",
		StateLoading:     "loading",
		StateBuilding:    "building",
		StateDone:        "done",
		StateFailedShown: "failed-but-shown",
		State(99):        "unknown",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
