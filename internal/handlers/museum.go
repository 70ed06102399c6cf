// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"stanmoor/internal/content"
	"stanmoor/internal/models"
	"stanmoor/internal/render"
)

// Museum renders the searchable, filterable artifact grid. Search matches
// title, description, and keywords case-insensitively; the period filter
// narrows the result afterwards. Empty results render the fallback block.
func (h *Public) Museum(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	period := strings.TrimSpace(r.URL.Query().Get("period"))
	page := parsePage(r)

	var (
		settings  *models.SiteSettings
		artifacts []models.Artifact
		periods   []string
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		artifacts, err = h.store.SearchArtifacts(ctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		periods, err = h.store.Periods(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	if period != "" {
		artifacts = content.FilterArtifactsByPeriod(artifacts, period)
	}

	total := content.TotalPages(len(artifacts), pageSize)
	page = clampPage(page, total)
	links, prevURL, nextURL := pageLinks(r.URL.Path, r.URL.Query(), page, total)

	h.deliver(w, r, "museum", &render.PageData{
		Title:           "Digital Museum",
		MetaDescription: "Finds from the Stanmoor excavation, photographed and catalogued.",
		Settings:        settings,
		Data: map[string]any{
			"Query":      q,
			"Period":     period,
			"Periods":    periods,
			"Artifacts":  content.Paginate(artifacts, page, pageSize),
			"Pagination": links,
			"PrevURL":    prevURL,
			"NextURL":    nextURL,
		},
	})
}

// MuseumDetail renders a single artifact looked up by slug. An unknown
// slug is a 404, not an error.
func (h *Public) MuseumDetail(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	slug := chi.URLParam(r, "slug")

	var (
		settings *models.SiteSettings
		artifact *models.Artifact
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		artifact, err = h.store.ArtifactBySlug(ctx, slug)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}
	if artifact == nil {
		h.NotFound(w, r)
		return
	}

	h.deliver(w, r, "museum_detail", &render.PageData{
		Title:           artifact.Title,
		MetaDescription: artifact.Description,
		Settings:        settings,
		Data: map[string]any{
			"Artifact": artifact,
		},
	})
}
