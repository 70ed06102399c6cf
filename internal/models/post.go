// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"stanmoor/internal/portabletext"
)

// Author is the dereferenced author on a news post.
type Author struct {
	Name string  `json:"name"`
	Role *string `json:"role,omitempty"`
}

// RelatedPost is the shallow projection used in a post's related list.
type RelatedPost struct {
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Excerpt  *string `json:"excerpt,omitempty"`
	ImageRef *string `json:"image,omitempty"`
}

// Post is a news/blog article. Body is Portable Text rendered through
// the block-to-markup mapper in internal/portabletext.
type Post struct {
	ID          string               `json:"_id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Excerpt     *string              `json:"excerpt,omitempty"`
	Body        []portabletext.Block `json:"body"`
	Categories  []string             `json:"categories"`
	Author      *Author              `json:"author,omitempty"`
	ImageRef    *string              `json:"image,omitempty"`
	PublishedAt *time.Time           `json:"publishedAt,omitempty"`
	Related     []RelatedPost        `json:"related"`
	CreatedAt   time.Time            `json:"_createdAt"`
}

// HasCategory reports whether the post carries the named category,
// compared case-insensitively.
func (p *Post) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if equalFold(c, category) {
			return true
		}
	}
	return false
}
