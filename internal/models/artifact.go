// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the typed records fetched from the content store.
// Every entity is authored in the CMS and read-only here; optional fields
// are pointers so templates can distinguish "absent" from "empty".
package models

import "time"

// Image is an ordered gallery entry on an artifact or resource. Ref is the
// raw CMS asset reference, resolved to a CDN URL at render time.
type Image struct {
	Ref     string  `json:"ref"`
	Alt     string  `json:"alt"`
	Caption *string `json:"caption,omitempty"`
	Main    bool    `json:"isMain"`
}

// Artifact is a digital-museum item.
type Artifact struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Images      []Image   `json:"images"`
	ModelURL    *string   `json:"modelUrl,omitempty"` // embeddable 3D model viewer
	Period      *string   `json:"period,omitempty"`
	DateText    *string   `json:"date,omitempty"` // editor-authored, e.g. "c. 120-150 AD"
	Material    *string   `json:"material,omitempty"`
	Dimensions  *string   `json:"dimensions,omitempty"`
	FoundAt     *string   `json:"foundAt,omitempty"`
	FoundYear   *int      `json:"foundYear,omitempty"`
	Keywords    []string  `json:"keywords"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"_createdAt"`
}

// MainImage returns the image flagged as main, falling back to the first
// image. Returns nil when the artifact has no images at all.
func (a *Artifact) MainImage() *Image {
	for i := range a.Images {
		if a.Images[i].Main {
			return &a.Images[i]
		}
	}
	if len(a.Images) > 0 {
		return &a.Images[0]
	}
	return nil
}
