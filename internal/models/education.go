// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ResourceType selects the render branch on the education resource page.
type ResourceType string

const (
	ResourceGallery ResourceType = "gallery"
	ResourcePDF     ResourceType = "pdf"
	ResourceLink    ResourceType = "link"
)

// EducationResource is a downloadable or gallery resource for schools.
// Description is Markdown source.
type EducationResource struct {
	ID           string       `json:"_id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	ResourceType ResourceType `json:"resourceType"`
	KeyStages    []string     `json:"keyStages"`
	Subjects     []string     `json:"subjects"`
	Description  *string      `json:"description,omitempty"`
	Gallery      []Image      `json:"gallery"`
	FileURL      *string      `json:"fileUrl,omitempty"`
	ExternalURL  *string      `json:"externalUrl,omitempty"`
}

// DownloadHref resolves the file-or-link union for pdf/link resources.
func (r *EducationResource) DownloadHref() (string, bool) {
	if r.FileURL != nil && *r.FileURL != "" {
		return *r.FileURL, true
	}
	if r.ExternalURL != nil && *r.ExternalURL != "" {
		return *r.ExternalURL, true
	}
	return "", false
}
