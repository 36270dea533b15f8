package site

// shellTemplate is the page skeleton the render pipeline populates. Every
// section container starts with a loading placeholder; the pipeline swaps
// the contents in and marks the body content-loaded when it finishes.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header class="site-header">
	<div class="header-main">
		<h1>{{.Owner.Name}}</h1>
		{{if .Owner.Tagline}}<p class="tagline">{{.Owner.Tagline}}</p>{{end}}
		<ul class="header-contact">
			<li data-test-location="header" data-test-name="contact-location"></li>
			<li data-test-location="header" data-test-name="contact-email"></li>
			<li data-test-location="header" data-test-name="contact-github"></li>
			<li data-test-location="header" data-test-name="contact-linkedin"></li>
			<li data-test-location="header" data-test-name="contact-pdf"></li>
		</ul>
	</div>
	<div class="header-summary">
		<p class="loading-placeholder">Loading summary&hellip;</p>
	</div>
</header>
<div class="layout">
	<aside class="sidebar">
		<h2>Contact</h2>
		<ul class="contact-info">
			{{if .Owner.Location}}<li data-test-location="sidebar" data-test-name="contact-location">{{.Owner.Location}}</li>{{end}}
			{{if .Owner.Email}}<li data-test-location="sidebar" data-test-name="contact-email"><a href="mailto:{{.Owner.Email}}">{{.Owner.Email}}</a></li>{{end}}
			{{if .Owner.GitHub}}<li data-test-location="sidebar" data-test-name="contact-github"><a href="{{.Owner.GitHub}}">GitHub</a></li>{{end}}
			{{if .Owner.LinkedIn}}<li data-test-location="sidebar" data-test-name="contact-linkedin"><a href="{{.Owner.LinkedIn}}">LinkedIn</a></li>{{end}}
			{{if .Owner.ResumePDF}}<li data-test-location="sidebar" data-test-name="contact-pdf"><a href="{{.Owner.ResumePDF}}">Resume (PDF)</a></li>{{end}}
		</ul>
	</aside>
	<main>
		<section class="experience">
			<h2>Experience</h2>
			<ul class="experience-list">
				<li class="loading-placeholder">Loading experience&hellip;</li>
			</ul>
		</section>
		<section class="education">
			<h2>Education &amp; Certifications</h2>
			<ul class="education-list">
				<li class="loading-placeholder">Loading education&hellip;</li>
			</ul>
		</section>
		<section class="technical-skills">
			<h2>Technical Skills</h2>
			<dl>
				<dt class="loading-placeholder">Loading skills&hellip;</dt>
			</dl>
		</section>
		<section class="key-projects">
			<h2>Key Projects</h2>
			<dl>
				<dt class="loading-placeholder">Loading projects&hellip;</dt>
			</dl>
		</section>
	</main>
</div>
<footer class="site-footer">
	<p>&copy; {{.Year}} {{.Owner.Name}}</p>
</footer>
<script src="script.js"></script>
</body>
</html>
`

// StyleCSS is the stylesheet written next to the rendered page.
const StyleCSS = `:root {
	--ink: #1f2430;
	--muted: #6b7280;
	--accent: #0b6e99;
	--rule: #e5e7eb;
	--bg: #fcfcfd;
}

* { box-sizing: border-box; }

body {
	margin: 0;
	font-family: -apple-system, "Segoe UI", Roboto, "Helvetica Neue", sans-serif;
	color: var(--ink);
	background: var(--bg);
	line-height: 1.55;
}

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

.site-header {
	border-bottom: 1px solid var(--rule);
	padding: 2.5rem 1.5rem 1.5rem;
	max-width: 60rem;
	margin: 0 auto;
}

.site-header h1 { margin: 0; font-size: 1.9rem; }
.tagline { margin: 0.25rem 0 0; color: var(--muted); }

.header-contact {
	list-style: none;
	display: flex;
	flex-wrap: wrap;
	gap: 0.4rem 1.2rem;
	padding: 0;
	margin: 0.8rem 0 0;
	font-size: 0.9rem;
	color: var(--muted);
}

.header-contact li:empty { display: none; }

.header-summary { margin-top: 1rem; max-width: 46rem; }

.layout {
	display: grid;
	grid-template-columns: 14rem 1fr;
	gap: 2.5rem;
	max-width: 60rem;
	margin: 0 auto;
	padding: 1.5rem;
}

@media (max-width: 44rem) {
	.layout { grid-template-columns: 1fr; }
}

.sidebar h2, main h2 {
	font-size: 1.05rem;
	text-transform: uppercase;
	letter-spacing: 0.06em;
	color: var(--muted);
	border-bottom: 1px solid var(--rule);
	padding-bottom: 0.3rem;
}

.contact-info { list-style: none; padding: 0; margin: 0; font-size: 0.92rem; }
.contact-info li { margin-bottom: 0.45rem; }

.experience-list, .education-list { list-style: none; padding: 0; margin: 0; }

.job, .certificate { margin-bottom: 1.6rem; }
.job h3, .certificate h3 { margin: 0 0 0.15rem; font-size: 1.05rem; }
.job-title { color: var(--muted); font-weight: normal; }
.job-period, .cert-issuer { margin: 0; font-size: 0.88rem; color: var(--muted); }

.job-highlights { margin: 0.5rem 0 0; padding-left: 1.2rem; }
.job-highlights li { margin-bottom: 0.25rem; }

.technical-skills dt, .key-projects dt { font-weight: 600; margin-top: 0.8rem; }
.technical-skills dd, .key-projects dd { margin: 0.1rem 0 0 0; color: var(--ink); }

.site-footer {
	border-top: 1px solid var(--rule);
	margin-top: 2rem;
	padding: 1rem 1.5rem;
	text-align: center;
	font-size: 0.85rem;
	color: var(--muted);
}

.loading-placeholder {
	color: var(--muted);
	font-style: italic;
	animation: placeholder-pulse 1.2s ease-in-out infinite;
}

body.content-loaded .loading-placeholder {
	animation: none;
	opacity: 0.6;
}

@keyframes placeholder-pulse {
	0%, 100% { opacity: 0.35; }
	50% { opacity: 0.8; }
}
`

// ScriptJS is the companion script. Its only job is live reload when the
// page is served by the dev server; on a static deploy the websocket dial
// fails quietly and nothing else happens.
const ScriptJS = `(function () {
	if (!("WebSocket" in window)) {
		return;
	}
	var proto = location.protocol === "https:" ? "wss://" : "ws://";
	try {
		var ws = new WebSocket(proto + location.host + "/ws");
		ws.onmessage = function (msg) {
			if (msg.data === "reload") {
				location.reload();
			}
		};
		ws.onerror = function () {
			ws.close();
		};
	} catch (e) {
		// Static build; no dev server to talk to.
	}
})();
`
