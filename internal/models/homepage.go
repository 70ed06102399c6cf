// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SectionLayout is the layout variant of a homepage section.
type SectionLayout string

const (
	LayoutHero       SectionLayout = "hero"
	LayoutTwoColumns SectionLayout = "two-columns"
	LayoutGrid       SectionLayout = "grid"
	LayoutFull       SectionLayout = "full"
)

// SectionItem is one entry inside a homepage section (a card, a column,
// a grid cell, depending on layout).
type SectionItem struct {
	Title     string  `json:"title"`
	Text      *string `json:"text,omitempty"`
	ImageRef  *string `json:"image,omitempty"`
	LinkURL   *string `json:"linkUrl,omitempty"`
	LinkLabel *string `json:"linkLabel,omitempty"`
}

// HomepageSection is an editor-managed homepage block, looked up by its
// stable SectionID. Templates supply hard-coded fallback copy when the
// section is absent from the CMS.
type HomepageSection struct {
	ID          string        `json:"_id"`
	SectionID   string        `json:"sectionId"`
	Layout      SectionLayout `json:"layout"`
	Title       string        `json:"title"`
	Subtitle    *string       `json:"subtitle,omitempty"`
	Description *string       `json:"description,omitempty"`
	Items       []SectionItem `json:"items"`
	Order       int           `json:"order"`
}
