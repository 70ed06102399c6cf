// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ResearchPublication is an academic output of the project. The PDF may be
// an uploaded CMS file or an external URL; PDFHref resolves the union.
type ResearchPublication struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Authors    []string `json:"authors"`
	Journal    *string  `json:"journal,omitempty"`
	Volume     *string  `json:"volume,omitempty"`
	Pages      *string  `json:"pages,omitempty"`
	Year       *int     `json:"year,omitempty"`
	DOI        *string  `json:"doi,omitempty"`
	Abstract   *string  `json:"abstract,omitempty"`
	Keywords   []string `json:"keywords"`
	PDFFileURL *string  `json:"pdfFile,omitempty"` // projected asset->url for uploads
	PDFLinkURL *string  `json:"pdfUrl,omitempty"`  // editor-entered external URL
	OpenAccess bool     `json:"openAccess"`
	Featured   bool     `json:"featured"`
}

// PDFHref returns the download link for the publication, preferring the
// uploaded file over the external URL. The second return is false when
// neither is set.
func (p *ResearchPublication) PDFHref() (string, bool) {
	if p.PDFFileURL != nil && *p.PDFFileURL != "" {
		return *p.PDFFileURL, true
	}
	if p.PDFLinkURL != nil && *p.PDFLinkURL != "" {
		return *p.PDFLinkURL, true
	}
	return "", false
}

// DOIHref returns the resolvable doi.org URL when a DOI is present.
func (p *ResearchPublication) DOIHref() (string, bool) {
	if p.DOI == nil || *p.DOI == "" {
		return "", false
	}
	return "https://doi.org/" + *p.DOI, true
}
