// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Pages render to a buffer first so handlers can store the finished HTML
// in the page cache before writing it out.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"stanmoor/internal/cms"
	"stanmoor/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title           string               // Page title for the <title> tag
	MetaDescription string               // Meta description for the page head
	Path            string               // Request path, used to mark the active nav link
	Settings        *models.SiteSettings // Global settings singleton (nil falls back to defaults)
	Data            map[string]any       // Page-specific data
}

// PageLink is one entry in a pagination control.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout. The CMS
// client resolves image references to CDN URLs inside templates.
func New(client *cms.Client, devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// fallback returns def when s is empty.
			"fallback": func(s, def string) string {
				if strings.TrimSpace(s) == "" {
					return def
				}
				return s
			},
			// imageURL resolves a CMS asset reference to a sized CDN URL.
			// Empty or malformed references resolve to the placeholder.
			"imageURL": func(ref string, width, height int) string {
				return client.ImageURL(ref, cms.ImageOptions{
					Width:   width,
					Height:  height,
					Fit:     "crop",
					Format:  "webp",
					Quality: 80,
				})
			},
			"fmtDate": func(t time.Time) string {
				return t.Format("2 January 2006")
			},
			"fmtDatePtr": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				return t.Format("2 January 2006")
			},
			// stars maps a testimonial's optional rating to a rangeable
			// slice. Absent or out-of-range ratings yield nothing, which
			// suppresses the star row entirely.
			"stars": func(t models.Testimonial) []int {
				n, ok := t.Stars()
				if !ok {
					return nil
				}
				return make([]int, n)
			},
			// pdfHref and doiHref resolve publication links through the
			// model helpers so the file-or-URL union lives in one place.
			"pdfHref": func(p models.ResearchPublication) string {
				href, _ := p.PDFHref()
				return href
			},
			"doiHref": func(p models.ResearchPublication) string {
				href, _ := p.DOIHref()
				return href
			},
			"join": strings.Join,
			// safe marks pre-sanitized HTML (rich text, Markdown output)
			// as trusted. Only sanitizer output may pass through here.
			"safe": func(s string) template.HTML {
				return template.HTML(s)
			},
			"year": func() int {
				return time.Now().Year()
			},
			"isDev": func() bool {
				return devMode
			},
		},
	}

	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")
		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Render executes the named page against the base layout and returns the
// finished HTML. Handlers cache these bytes before writing them out.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data == nil {
		data = &PageData{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders the named page straight to the response with the given
// status code. Render errors degrade to a plain 500.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	html, err := rn.Render(name, data)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	WriteHTML(w, status, html)
}

// WriteHTML writes rendered page bytes with the HTML content type.
func WriteHTML(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
