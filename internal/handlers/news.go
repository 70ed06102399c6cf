// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"stanmoor/internal/content"
	"stanmoor/internal/models"
	"stanmoor/internal/portabletext"
	"stanmoor/internal/render"
)

// News renders the article listing. The newest post leads as the featured
// card on the first page; the remainder paginates beneath it. The category
// filter matches case-insensitively against each post's category list.
func (h *Public) News(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	page := parsePage(r)

	var (
		settings   *models.SiteSettings
		posts      []models.Post
		categories []string
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = h.store.Posts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.store.Categories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}

	if category != "" {
		posts = content.FilterPostsByCategory(posts, category)
	}

	data := map[string]any{
		"Category":   category,
		"Categories": categories,
	}

	// Lead with the newest post; the rest fill the grid.
	var rest []models.Post
	if len(posts) > 0 {
		rest = posts[1:]
	}

	total := content.TotalPages(len(rest), pageSize)
	page = clampPage(page, total)
	if len(posts) > 0 && page == 1 {
		data["Featured"] = &posts[0]
	}
	links, prevURL, nextURL := pageLinks(r.URL.Path, r.URL.Query(), page, total)
	data["Posts"] = content.Paginate(rest, page, pageSize)
	data["Pagination"] = links
	data["PrevURL"] = prevURL
	data["NextURL"] = nextURL

	h.deliver(w, r, "news", &render.PageData{
		Title:           "News",
		MetaDescription: "News and updates from the Stanmoor excavation.",
		Settings:        settings,
		Data:            data,
	})
}

// NewsDetail renders a single article. The Portable Text body is mapped
// to sanitized HTML here so the template never touches raw blocks.
func (h *Public) NewsDetail(w http.ResponseWriter, r *http.Request) {
	if h.fromCache(w, r) {
		return
	}

	slug := chi.URLParam(r, "slug")

	var (
		settings *models.SiteSettings
		post     *models.Post
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		settings, err = h.store.SiteSettings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		post, err = h.store.PostBySlug(ctx, slug)
		return err
	})
	if err := g.Wait(); err != nil {
		h.serverError(w, r, err)
		return
	}
	if post == nil {
		h.NotFound(w, r)
		return
	}

	description := post.Title
	if post.Excerpt != nil && *post.Excerpt != "" {
		description = *post.Excerpt
	} else if text := portabletext.PlainText(post.Body); text != "" {
		description = truncate(text, metaDescriptionLen)
	}

	h.deliver(w, r, "news_detail", &render.PageData{
		Title:           post.Title,
		MetaDescription: description,
		Settings:        settings,
		Data: map[string]any{
			"Post":     post,
			"BodyHTML": portabletext.ToHTML(post.Body),
		},
	})
}

// metaDescriptionLen bounds derived meta descriptions.
const metaDescriptionLen = 160

// truncate cuts s at the last word boundary before max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	cut := string([]rune(s)[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
