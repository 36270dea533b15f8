package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/akaram/folio/internal/dom"
)

// Container selectors for the five page sections.
const (
	summarySelector    = ".header-summary p"
	experienceSelector = ".experience-list"
	educationSelector  = ".education-list"
	skillsSelector     = ".technical-skills dl"
	projectsSelector   = ".key-projects dl"
)

// buildSummary writes personal.summary into the header paragraph. The
// summary is author-controlled and may carry inline markdown; it is rendered
// rather than escaped.
func (p *Pipeline) buildSummary() error {
	c := p.resolver.Lookup(summarySelector)
	if c == nil {
		return fmt.Errorf("container %q not found", summarySelector)
	}

	summary := p.data.Get("personal.summary").String()
	if err := dom.SetInnerHTML(c, p.renderInline(summary)); err != nil {
		return err
	}
	dom.RemoveClass(c, "loading-placeholder")
	return nil
}

// renderInline converts inline markdown to HTML. A single-paragraph result
// loses its <p> wrapper so the fragment nests inside the shell's own <p>.
func (p *Pipeline) renderInline(text string) string {
	var buf bytes.Buffer
	if err := p.markdown.Convert([]byte(text), &buf); err != nil {
		return text
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out
}

// buildExperience renders the experience entries into the experience list.
func (p *Pipeline) buildExperience() error {
	c := p.resolver.Lookup(experienceSelector)
	if c == nil {
		return fmt.Errorf("container %q not found", experienceSelector)
	}
	jobs := p.data.Get("experience")
	if !jobs.IsArray() {
		return fmt.Errorf("experience is not a list")
	}

	var b strings.Builder
	for _, job := range jobs.Array() {
		company := p.escaper.Escape(job.Get("company").String())
		title := p.escaper.Escape(job.Get("title").String())
		period := p.escaper.Escape(job.Get("period").String())
		// startDate feeds the datetime attribute; structural, not escaped.
		startDate := job.Get("startDate").String()

		b.WriteString(`<li class="job">`)
		fmt.Fprintf(&b, `<h3>%s <span class="job-title">%s</span></h3>`, company, title)
		fmt.Fprintf(&b, `<p class="job-period"><time datetime="%s">%s</time></p>`, startDate, period)
		b.WriteString(`<ul class="job-highlights">`)
		if highlights := job.Get("highlights"); highlights.IsArray() {
			for _, h := range highlights.Array() {
				fmt.Fprintf(&b, "<li>%s</li>", p.escaper.Escape(h.String()))
			}
		}
		b.WriteString(`</ul></li>`)
	}
	return dom.SetInnerHTML(c, b.String())
}

// buildEducation renders the certificate entries into the education list.
func (p *Pipeline) buildEducation() error {
	c := p.resolver.Lookup(educationSelector)
	if c == nil {
		return fmt.Errorf("container %q not found", educationSelector)
	}
	certs := p.data.Get("education")
	if !certs.IsArray() {
		return fmt.Errorf("education is not a list")
	}

	var b strings.Builder
	for _, cert := range certs.Array() {
		name := p.escaper.Escape(cert.Get("name").String())
		issuer := p.escaper.Escape(cert.Get("issuer").String())
		date := p.escaper.Escape(cert.Get("date").String())
		dateTime := cert.Get("dateTime").String()

		b.WriteString(`<li class="certificate">`)
		fmt.Fprintf(&b, `<h3>%s</h3>`, name)
		fmt.Fprintf(&b, `<p class="cert-issuer">%s â€” <time datetime="%s">%s</time></p>`, issuer, dateTime, date)
		b.WriteString(`</li>`)
	}
	return dom.SetInnerHTML(c, b.String())
}

// buildSkills renders the skill categories into the skills definition list,
// preserving the document's own key order.
func (p *Pipeline) buildSkills() error {
	c := p.resolver.Lookup(skillsSelector)
	if c == nil {
		return fmt.Errorf("container %q not found", skillsSelector)
	}
	skills := p.data.Get("technicalSkills")
	if !skills.IsObject() {
		return fmt.Errorf("technicalSkills is not an object")
	}

	var b strings.Builder
	skills.ForEach(func(key, value gjson.Result) bool {
		fmt.Fprintf(&b, "<dt>%s</dt><dd>%s</dd>",
			p.escaper.Escape(key.String()), p.escaper.Escape(value.String()))
		return true
	})
	return dom.SetInnerHTML(c, b.String())
}

// buildProjects renders the project entries into the projects definition
// list. Links open in a new tab only for http(s) URLs; the visible label is
// always prefixed with "github.com/".
func (p *Pipeline) buildProjects() error {
	c := p.resolver.Lookup(projectsSelector)
	if c == nil {
		return fmt.Errorf("container %q not found", projectsSelector)
	}
	projects := p.data.Get("projects")
	if !projects.IsArray() {
		return fmt.Errorf("projects is not a list")
	}

	var b strings.Builder
	for _, project := range projects.Array() {
		name := p.escaper.Escape(project.Get("name").String())
		desc := p.escaper.Escape(project.Get("description").String())
		url := project.Get("url").String()

		attrs := ""
		if strings.HasPrefix(url, "http") {
			attrs = ` target="_blank" rel="noopener"`
		}
		fmt.Fprintf(&b, `<dt><a href="%s"%s>github.com/%s</a></dt>`, url, attrs, name)
		fmt.Fprintf(&b, `<dd>%s</dd>`, desc)
	}
	return dom.SetInnerHTML(c, b.String())
}
