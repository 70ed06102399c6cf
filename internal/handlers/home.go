// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"stanmoor/internal/models"
	"stanmoor/internal/render"
)

// Home composes the homepage from editor-managed sections plus curated
// museum, news, and testimonial highlights. Every fetch is independent,
// so they run jointly; a missing section falls back to the template's
// built-in copy.
func (h *Public) Home(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings    *models.SiteSettings
		hero        *models.HomepageSection
		mission     *models.HomepageSection
		getInvolved *models.HomepageSection
		artifacts   []models.Artifact
		posts       []models.Post
		quotes      []models.Testimonial
		partners    []models.Partner
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		hero, err = h.store.HomepageSection(ctx, "hero")
		return err
	})
	g.Go(func() error {
		var err error
		mission, err = h.store.HomepageSection(ctx, "mission")
		return err
	})
	g.Go(func() error {
		var err error
		getInvolved, err = h.store.HomepageSection(ctx, "get-involved")
		return err
	})
	g.Go(func() error {
		var err error
		artifacts, err = h.store.FeaturedArtifacts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = h.store.Posts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = h.store.FeaturedTestimonials(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		partners, err = h.store.Partners(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	if len(posts) > 3 {
		posts = posts[:3]
	}

	data := map[string]any{
		"Hero":              hero,
		"Mission":           mission,
		"GetInvolved":       getInvolved,
		"FeaturedArtifacts": artifacts,
		"LatestPosts":       posts,
		"Partners":          partners,
	}
	if len(quotes) > 0 {
		data["FeaturedTestimonial"] = quotes[0]
	}

	h.deliver(w, r, "home", &render.PageData{
		MetaDescription: "Excavation, research and community archaeology at Stanmoor.",
		Settings:        settings,
		Data:            data,
	})
}
