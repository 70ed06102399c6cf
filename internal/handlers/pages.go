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

// About renders the project description, preferring the editor-managed
// section over the template's built-in copy.
func (h *Public) About(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		about    *models.HomepageSection
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		about, err = h.store.HomepageSection(ctx, "about")
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.deliver(w, r, "about", &render.PageData{
		Title:           "About the Project",
		MetaDescription: "What the Stanmoor Heritage Project is and how it works.",
		Settings:        settings,
		Data: map[string]any{
			"About": about,
		},
	})
}

// staticPage renders a template that needs nothing beyond the settings.
func (h *Public) staticPage(name, title, description string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.fromCache(w, r) {
			return
		}

		settings, err := h.store.SiteSettings(r.Context())
		if err != nil {
			h.serverError(w, r, err)
			return
		}

		h.deliver(w, r, name, &render.PageData{
			Title:           title,
			MetaDescription: description,
			Settings:        settings,
		})
	}
}

// Privacy renders the privacy policy.
func (h *Public) Privacy(w http.ResponseWriter, r *http.Request) {
	h.staticPage("privacy", "Privacy Policy", "How the Stanmoor Heritage Project handles personal information.")(w, r)
}

// Terms renders the terms of use.
func (h *Public) Terms(w http.ResponseWriter, r *http.Request) {
	h.staticPage("terms", "Terms of Use", "Terms of use for the Stanmoor Heritage Project site and its content.")(w, r)
}

// Contact renders the story submission form.
func (h *Public) Contact(w http.ResponseWriter, r *http.Request) {
	h.staticPage("contact", "Share Your Story", "Tell us about your time with the Stanmoor Heritage Project.")(w, r)
}
