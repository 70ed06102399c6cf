// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"stanmoor/internal/content"
	"stanmoor/internal/markdown"
	"stanmoor/internal/models"
	"stanmoor/internal/render"
)

// Events splits the listing into upcoming and past relative to now.
func (h *Public) Events(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		events   []models.Event
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = h.store.Events(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	now := time.Now()
	var upcoming, past []models.Event
	for _, e := range events {
		if e.Upcoming(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Start.Before(upcoming[j].Start) })
	sort.Slice(past, func(i, j int) bool { return past[i].Start.After(past[j].Start) })

	h.deliver(w, r, "events", &render.PageData{
		Title:           "Events",
		MetaDescription: "Talks, open days and workshops at the Stanmoor excavation.",
		Settings:        settings,
		Data: map[string]any{
			"Upcoming": upcoming,
			"Past":     past,
		},
	})
}

// teamMemberView pairs a member with their bio rendered from Markdown.
type teamMemberView struct {
	models.TeamMember
	BioHTML string
}

// Team renders staff profiles ordered by the editor-set display order,
// with unordered members after the ordered ones, alphabetically.
func (h *Public) Team(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		members  []models.TeamMember
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = h.store.TeamMembers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i].Order, members[j].Order
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return members[i].Name < members[j].Name
		}
	})

	views := make([]teamMemberView, 0, len(members))
	for _, m := range members {
		v := teamMemberView{TeamMember: m}
		if m.Bio != nil && *m.Bio != "" {
			if html, err := markdown.ToHTML(*m.Bio); err == nil {
				v.BioHTML = html
			}
		}
		views = append(views, v)
	}

	h.deliver(w, r, "team", &render.PageData{
		Title:           "Meet the Team",
		MetaDescription: "The archaeologists and tutors behind the Stanmoor Heritage Project.",
		Settings:        settings,
		Data: map[string]any{
			"Members": views,
		},
	})
}

// Publications renders the research listing, featured entry first.
func (h *Public) Publications(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		pubs     []models.ResearchPublication
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pubs, err = h.store.Publications(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	data := map[string]any{}
	if featured, rest, ok := content.FeaturedFirst(pubs, func(p models.ResearchPublication) bool { return p.Featured }); ok {
		data["Featured"] = featured
		data["Publications"] = rest
	}

	h.deliver(w, r, "publications", &render.PageData{
		Title:           "Research & Publications",
		MetaDescription: "Academic outputs from the Stanmoor excavation.",
		Settings:        settings,
		Data:            data,
	})
}

// Education renders the teaching-resource listing.
func (h *Public) Education(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings  *models.SiteSettings
		resources []models.EducationResource
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		resources, err = h.store.EducationResources(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.deliver(w, r, "education", &render.PageData{
		Title:           "Education",
		MetaDescription: "Free teaching resources built around the Stanmoor excavation.",
		Settings:        settings,
		Data: map[string]any{
			"Resources": resources,
		},
	})
}

// EducationDetail renders one resource, branching on its type: galleries
// get lightbox markup, pdf and link resources get a download control.
func (h *Public) EducationDetail(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	slug := chi.URLParam(r, "slug")

	var (
		settings *models.SiteSettings
		resource *models.EducationResource
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		resource, err = h.store.EducationResourceBySlug(ctx, slug)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}
	if resource == nil {
		h.NotFound(w, r)
		return
	}

	data := map[string]any{"Resource": resource}
	if resource.Description != nil && *resource.Description != "" {
		if html, err := markdown.ToHTML(*resource.Description); err == nil {
			data["DescriptionHTML"] = html
		}
	}
	if href, ok := resource.DownloadHref(); ok {
		data["DownloadHref"] = href
	}

	h.deliver(w, r, "education_detail", &render.PageData{
		Title:           resource.Title,
		MetaDescription: "Teaching resource from the Stanmoor Heritage Project.",
		Settings:        settings,
		Data:            data,
	})
}

// FieldSchool renders the session listing with per-session registration
// controls derived from the editor-set status.
func (h *Public) FieldSchool(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		sessions []models.FieldSchoolSession
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = h.store.FieldSchoolSessions(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.deliver(w, r, "fieldschool", &render.PageData{
		Title:           "Field School",
		MetaDescription: "Learn excavation, recording and finds processing on a working site.",
		Settings:        settings,
		Data: map[string]any{
			"Sessions": sessions,
		},
	})
}

// Partners renders funders grouped by the derived display grouping.
func (h *Public) Partners(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		partners []models.Partner
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
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

	groups := models.GroupPartners(partners)

	h.deliver(w, r, "partners", &render.PageData{
		Title:           "Partners & Funders",
		MetaDescription: "The organisations that make the Stanmoor Heritage Project possible.",
		Settings:        settings,
		Data: map[string]any{
			"Principal":  groups[models.PrincipalFunders],
			"Lead":       groups[models.LeadPartners],
			"Supporters": groups[models.Supporters],
		},
	})
}

// Community renders the testimonial wall with a call to share a story.
func (h *Public) Community(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	var (
		settings *models.SiteSettings
		quotes   []models.Testimonial
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = h.store.Testimonials(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	h.deliver(w, r, "community", &render.PageData{
		Title:           "Community",
		MetaDescription: "Volunteers, students and visitors on what the dig meant to them.",
		Settings:        settings,
		Data: map[string]any{
			"Testimonials": quotes,
		},
	})
}
