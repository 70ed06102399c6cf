// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// image.go builds CDN URLs from Sanity image asset references. A reference
// looks like "image-<assetID>-<width>x<height>-<ext>" and resolves to
// https://cdn.sanity.io/images/<project>/<dataset>/<assetID>-<WxH>.<ext>,
// with optional transform parameters applied by the CDN.
package cms

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// PlaceholderImageURL is served whenever an image reference is missing or
// cannot be parsed. Every render path must tolerate absent assets.
const PlaceholderImageURL = "/static/img/placeholder.svg"

// imageRefPattern matches "image-<assetID>-<WxH>-<ext>".
var imageRefPattern = regexp.MustCompile(`^image-([a-zA-Z0-9]+)-(\d+x\d+)-([a-z]+)$`)

// ImageOptions are the CDN transform parameters supported by the builder.
// Zero values are omitted from the URL.
type ImageOptions struct {
	Width   int
	Height  int
	Fit     string // "crop", "max", "fill", ...
	Format  string // "webp", "jpg", ...
	Quality int    // 1-100
}

// ImageURL resolves an image reference to a CDN URL with the given
// transform options. Missing or malformed references yield the fixed
// placeholder URL rather than an error.
func (c *Client) ImageURL(ref string, opts ImageOptions) string {
	m := imageRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return PlaceholderImageURL
	}
	assetID, dims, ext := m[1], m[2], m[3]

	base := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.projectID, c.dataset, assetID, dims, ext)

	values := url.Values{}
	if opts.Width > 0 {
		values.Set("w", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		values.Set("h", strconv.Itoa(opts.Height))
	}
	if opts.Fit != "" {
		values.Set("fit", opts.Fit)
	}
	if opts.Format != "" {
		values.Set("fm", opts.Format)
	}
	if opts.Quality > 0 {
		values.Set("q", strconv.Itoa(opts.Quality))
	}

	if len(values) == 0 {
		return base
	}
	return base + "?" + values.Encode()
}
