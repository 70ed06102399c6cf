// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DefaultSiteTitle is rendered when the settings document is missing or
// has no title.
const DefaultSiteTitle = "Stanmoor Heritage Project"

// SiteSettings is the singleton global configuration document. Exactly one
// exists in the CMS; absence falls back to placeholder logo and title.
type SiteSettings struct {
	LogoRef *string `json:"logo,omitempty"`
	Title   *string `json:"title,omitempty"`
}

// SiteTitle returns the configured title or the default.
func (s *SiteSettings) SiteTitle() string {
	if s != nil && s.Title != nil && *s.Title != "" {
		return *s.Title
	}
	return DefaultSiteTitle
}

// Logo returns the logo asset reference, empty when unset. Callers resolve
// the empty reference to the placeholder image.
func (s *SiteSettings) Logo() string {
	if s != nil && s.LogoRef != nil {
		return *s.LogoRef
	}
	return ""
}
