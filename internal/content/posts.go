// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"stanmoor/internal/models"
)

// Posts returns all news posts, most recently published first.
func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.cms.Fetch(ctx, queryPosts, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostBySlug looks up one post by its routing slug, including its related
// posts. Returns (nil, nil) when the slug resolves to nothing.
func (s *Store) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post *models.Post
	if err := s.cms.Fetch(ctx, queryPostBySlug, map[string]any{"slug": slug}, &post); err != nil {
		return nil, err
	}
	return post, nil
}

// Categories derives the category filter facet across all posts:
// flattened, de-duplicated with set semantics, first-occurrence order.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := s.cms.Fetch(ctx, queryPostCategories, nil, &categories); err != nil {
		return nil, err
	}
	return UniqueFold(categories), nil
}

// FilterPostsByCategory keeps posts carrying the given category,
// compared case-insensitively. An empty category keeps all.
func FilterPostsByCategory(posts []models.Post, category string) []models.Post {
	if category == "" {
		return posts
	}
	var out []models.Post
	for i := range posts {
		if posts[i].HasCategory(category) {
			out = append(out, posts[i])
		}
	}
	return out
}
