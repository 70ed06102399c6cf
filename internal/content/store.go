// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content provides typed accessors over the CMS query layer. Each
// accessor wraps one query family and applies the in-memory post-processing
// the query language cannot express: search matching, facet de-duplication,
// pagination slicing, and featured-first splitting. Empty results are
// normal ("render the fallback block"), and by-slug lookups return nil
// rather than an error when nothing matches.
package content

import (
	"context"

	"stanmoor/internal/cms"
	"stanmoor/internal/models"
)

// Store executes content queries against a configured CMS client.
type Store struct {
	cms *cms.Client
}

// NewStore creates a Store backed by the given CMS client.
func NewStore(client *cms.Client) *Store {
	return &Store{cms: client}
}

// Client exposes the underlying CMS client for image URL building.
func (s *Store) Client() *cms.Client { return s.cms }

// SiteSettings fetches the singleton settings document. A missing document
// returns nil; callers fall back to placeholder logo and title.
func (s *Store) SiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings *models.SiteSettings
	if err := s.cms.Fetch(ctx, querySiteSettings, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// HomepageSection looks up one homepage block by its stable section ID.
// Returns nil when the editors have not created the section.
func (s *Store) HomepageSection(ctx context.Context, sectionID string) (*models.HomepageSection, error) {
	var section *models.HomepageSection
	err := s.cms.Fetch(ctx, queryHomepageSection, map[string]any{"sectionId": sectionID}, &section)
	if err != nil {
		return nil, err
	}
	return section, nil
}
