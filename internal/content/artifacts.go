// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"strings"

	"stanmoor/internal/models"
)

// Artifacts returns all museum artifacts, newest first.
func (s *Store) Artifacts(ctx context.Context) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	if err := s.cms.Fetch(ctx, queryArtifacts, nil, &artifacts); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// FeaturedArtifacts returns the artifacts flagged for priority display.
// Featured is a boolean, not a rank; ties keep the query's order.
func (s *Store) FeaturedArtifacts(ctx context.Context) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	if err := s.cms.Fetch(ctx, queryFeaturedArtifacts, nil, &artifacts); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// ArtifactBySlug looks up one artifact by its routing slug. Returns
// (nil, nil) when the slug resolves to nothing; the caller renders the
// distinct not-found state.
func (s *Store) ArtifactBySlug(ctx context.Context, slug string) (*models.Artifact, error) {
	var artifact *models.Artifact
	if err := s.cms.Fetch(ctx, queryArtifactBySlug, map[string]any{"slug": slug}, &artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// SearchArtifacts returns artifacts whose title, description, or keywords
// contain the query as a case-insensitive substring. No ranking; matches
// keep the underlying query's order. An empty query returns everything.
func (s *Store) SearchArtifacts(ctx context.Context, query string) ([]models.Artifact, error) {
	artifacts, err := s.Artifacts(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return artifacts, nil
	}

	var matches []models.Artifact
	for _, a := range artifacts {
		if artifactMatches(a, query) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// FilterArtifactsByPeriod keeps artifacts whose period equals the given
// facet value, compared case-insensitively. An empty period keeps all.
func FilterArtifactsByPeriod(artifacts []models.Artifact, period string) []models.Artifact {
	if period == "" {
		return artifacts
	}
	var out []models.Artifact
	for _, a := range artifacts {
		if a.Period != nil && strings.EqualFold(*a.Period, period) {
			out = append(out, a)
		}
	}
	return out
}

// Periods derives the period filter facet: every distinct period value
// across all artifacts, de-duplicated with set semantics, in order of
// first occurrence.
func (s *Store) Periods(ctx context.Context) ([]string, error) {
	var periods []string
	if err := s.cms.Fetch(ctx, queryArtifactPeriods, nil, &periods); err != nil {
		return nil, err
	}
	return UniqueFold(periods), nil
}

func artifactMatches(a models.Artifact, query string) bool {
	if containsFold(a.Title, query) || containsFold(a.Description, query) {
		return true
	}
	for _, kw := range a.Keywords {
		if containsFold(kw, query) {
			return true
		}
	}
	return false
}
