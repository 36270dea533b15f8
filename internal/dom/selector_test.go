package dom

import "testing"

func TestFirstMatch(t *testing.T) {
	doc := parsePage(t, testPage)

	tests := []struct {
		selector string
		wantTag  string
	}{
		{"p", "p"},
		{".intro", "div"},
		{".intro p", "p"},
		{"div.intro", "div"},
		{"ul.items", "ul"},
		{"ul li", "li"},
		{`[data-test-location="sidebar"]`, "span"},
		{`[data-test-location="sidebar"][data-test-name="contact-email"]`, "span"},
		{"body span a", "a"},
	}

	for _, tt := range tests {
		n := FirstMatch(doc, tt.selector)
		if n == nil {
			t.Errorf("FirstMatch(%q) = nil, want <%s>", tt.selector, tt.wantTag)
			continue
		}
		if n.Data != tt.wantTag {
			t.Errorf("FirstMatch(%q) = <%s>, want <%s>", tt.selector, n.Data, tt.wantTag)
		}
	}
}

func TestFirstMatchMiss(t *testing.T) {
	doc := parsePage(t, testPage)

	for _, selector := range []string{
		".missing",
		"table",
		`[data-test-location="header"]`,
		".items p",
		"",
	} {
		if n := FirstMatch(doc, selector); n != nil {
			t.Errorf("FirstMatch(%q) = <%s>, want nil", selector, n.Data)
		}
	}
}

func TestFirstMatchDocumentOrder(t *testing.T) {
	doc := parsePage(t, `<html><body><ul><li id="first">a</li><li id="second">b</li></ul></body></html>`)
	n := FirstMatch(doc, "li")
	if n == nil || Attr(n, "id") != "first" {
		t.Error("FirstMatch should return the first li in document order")
	}
}

func TestParseSimple(t *testing.T) {
	sel, err := parseSimple(`li.job[data-test-name="contact-pdf"]`)
	if err != nil {
		t.Fatalf("parseSimple error: %v", err)
	}
	if sel.tag != "li" {
		t.Errorf("tag = %q, want li", sel.tag)
	}
	if len(sel.classes) != 1 || sel.classes[0] != "job" {
		t.Errorf("classes = %v, want [job]", sel.classes)
	}
	if len(sel.attrs) != 1 || sel.attrs[0] != [2]string{"data-test-name", "contact-pdf"} {
		t.Errorf("attrs = %v", sel.attrs)
	}
}

func TestParseSimpleErrors(t *testing.T) {
	for _, bad := range []string{"div.", "[unterminated", "a..b"} {
		if _, err := parseSimple(bad); err == nil {
			t.Errorf("parseSimple(%q) should fail", bad)
		}
	}
}
