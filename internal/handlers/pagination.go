// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"stanmoor/internal/render"
)

// pageSize is the fixed grid size for paginated listings.
const pageSize = 8

// parsePage reads the page query parameter. Anything unparsable or below
// one is page one.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// clampPage pulls an out-of-range page back to the last page so the
// rendered content and the marked pagination link agree. Zero total
// pages is page one.
func clampPage(page, total int) int {
	if total < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// pageLinks builds the numbered pagination window plus prev/next URLs for
// a listing. At most five numbered links render, centered on the current
// page; prev appears only past page one, next only while more pages
// remain. Content-selecting parameters carry through every link.
func pageLinks(path string, query url.Values, current, total int) (links []render.PageLink, prevURL, nextURL string) {
	if total <= 1 {
		return nil, "", ""
	}
	if current > total {
		current = total
	}

	start := current - 2
	if start > total-4 {
		start = total - 4
	}
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > total {
		end = total
	}

	for n := start; n <= end; n++ {
		links = append(links, render.PageLink{
			Number:  n,
			URL:     pageURL(path, query, n),
			Current: n == current,
		})
	}

	if current > 1 {
		prevURL = pageURL(path, query, current-1)
	}
	if current < total {
		nextURL = pageURL(path, query, current+1)
	}
	return links, prevURL, nextURL
}

// pageURL rebuilds the listing URL with the given page number, keeping
// only the content-selecting parameters.
func pageURL(path string, query url.Values, page int) string {
	values := url.Values{}
	for _, name := range []string{"q", "period", "category"} {
		if v := query.Get(name); v != "" {
			values.Set(name, v)
		}
	}
	values.Set("page", strconv.Itoa(page))
	return path + "?" + values.Encode()
}
