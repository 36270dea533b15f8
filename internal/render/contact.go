package render

import (
	"fmt"

	"github.com/akaram/folio/internal/dom"
)

// ContactFields are the logical contact-info fragments duplicated between
// the sidebar and the page header.
var ContactFields = []string{
	"contact-location",
	"contact-email",
	"contact-github",
	"contact-linkedin",
	"contact-pdf",
}

// SyncContacts mirrors each sidebar contact fragment into its header
// counterpart so the two stay identical without authoring the markup twice.
func SyncContacts(r *dom.Resolver) {
	for _, field := range ContactFields {
		syncContact(r, field)
	}
}

// syncContact copies the sidebar node's inner markup onto the header node.
// The markup is author-controlled and copied verbatim. Missing nodes make
// this a no-op; not every page carries every field.
func syncContact(r *dom.Resolver, field string) {
	header := r.Lookup(fmt.Sprintf(`[data-test-location="header"][data-test-name="%s"]`, field))
	sidebar := r.Lookup(fmt.Sprintf(`[data-test-location="sidebar"][data-test-name="%s"]`, field))
	if header == nil || sidebar == nil {
		return
	}
	_ = dom.SetInnerHTML(header, dom.InnerHTML(sidebar))
}
