package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/akaram/folio/internal/dom"
)

const contactPage = `<!DOCTYPE html>
<html><body>
<header>
	<ul>
		<li data-test-location="header" data-test-name="contact-email"></li>
		<li data-test-location="header" data-test-name="contact-github"></li>
	</ul>
</header>
<aside>
	<ul>
		<li data-test-location="sidebar" data-test-name="contact-email"><a href="mailto:jo@example.com">jo@example.com</a></li>
		<li data-test-location="sidebar" data-test-name="contact-pdf"><a href="resume.pdf">Resume</a></li>
	</ul>
</aside>
</body></html>`

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	return doc
}

func TestSyncContactsCopiesMarkup(t *testing.T) {
	doc := parseDoc(t, contactPage)
	r := dom.NewResolver(doc)

	SyncContacts(r)

	header := r.Lookup(`[data-test-location="header"][data-test-name="contact-email"]`)
	sidebar := r.Lookup(`[data-test-location="sidebar"][data-test-name="contact-email"]`)
	if got, want := dom.InnerHTML(header), dom.InnerHTML(sidebar); got != want {
		t.Errorf("header markup = %q, want sidebar markup %q", got, want)
	}
	if !strings.Contains(dom.InnerHTML(header), `href="mailto:jo@example.com"`) {
		t.Error("copied markup should keep the mailto link verbatim")
	}
}

func TestSyncContactsMissingCounterpart(t *testing.T) {
	doc := parseDoc(t, contactPage)
	r := dom.NewResolver(doc)

	SyncContacts(r)

	// contact-github exists only in the header, contact-pdf only in the
	// sidebar; both must be silent no-ops.
	github := r.Lookup(`[data-test-location="header"][data-test-name="contact-github"]`)
	if dom.InnerHTML(github) != "" {
		t.Error("header node without sidebar counterpart should stay empty")
	}
	sidebarPDF := r.Lookup(`[data-test-location="sidebar"][data-test-name="contact-pdf"]`)
	if !strings.Contains(dom.InnerHTML(sidebarPDF), "Resume") {
		t.Error("sidebar node must not be modified")
	}
}
