// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the public page and API handlers. Each page
// handler parses its query parameters, checks the page cache, issues its
// independent CMS fetches concurrently, derives view aggregates, renders,
// and stores the finished HTML for the next revalidation window.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"stanmoor/internal/cache"
	"stanmoor/internal/content"
	"stanmoor/internal/render"
)

// Public bundles the dependencies of the public site handlers.
type Public struct {
	store    *content.Store
	cache    *cache.PageCache
	renderer *render.Renderer

	// contactEndpoint receives relayed story submissions.
	contactEndpoint string
	relay           *http.Client
}

// NewPublic creates the public handler set. A nil page cache disables
// caching, which is how the handler tests run without a Valkey instance.
func NewPublic(store *content.Store, pageCache *cache.PageCache, renderer *render.Renderer, contactEndpoint string) *Public {
	return &Public{
		store:           store,
		cache:           pageCache,
		renderer:        renderer,
		contactEndpoint: contactEndpoint,
		relay:           &http.Client{Timeout: 10 * time.Second},
	}
}

// fromCache serves the page from the cache when a fresh copy exists.
func (h *Public) fromCache(w http.ResponseWriter, r *http.Request) bool {
	if h.cache == nil {
		return false
	}
	key := cache.RequestKey(r.URL.Path, r.URL.Query())
	html, ok := h.cache.Get(r.Context(), key)
	if !ok {
		return false
	}
	render.WriteHTML(w, http.StatusOK, html)
	return true
}

// deliver renders the named page, stores it in the cache, and writes it.
func (h *Public) deliver(w http.ResponseWriter, r *http.Request, name string, data *render.PageData) {
	data.Path = r.URL.Path
	html, err := h.renderer.Render(name, data)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if h.cache != nil {
		h.cache.Set(r.Context(), cache.RequestKey(r.URL.Path, r.URL.Query()), html)
	}
	render.WriteHTML(w, http.StatusOK, html)
}

// serverError logs the failure and renders the generic failure page.
// Failure pages are never cached.
func (h *Public) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("page failed",
		"path", r.URL.Path,
		"error", err,
	)
	h.renderer.Page(w, http.StatusInternalServerError, "error", &render.PageData{
		Title: "Something Went Wrong",
		Path:  r.URL.Path,
	})
}

// NotFound renders the site 404 page. Also wired as the router's fallback.
func (h *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, http.StatusNotFound, "404", &render.PageData{
		Title: "Page Not Found",
		Path:  r.URL.Path,
	})
}
