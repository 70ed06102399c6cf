package models

import "testing"

func intPtr(i int) *int { return &i }

func TestArtifactMainImage(t *testing.T) {
	t.Run("flagged main wins over order", func(t *testing.T) {
		a := Artifact{Images: []Image{
			{Ref: "image-aaa-100x100-jpg"},
			{Ref: "image-bbb-100x100-jpg", Main: true},
		}}
		img := a.MainImage()
		if img == nil || img.Ref != "image-bbb-100x100-jpg" {
			t.Errorf("got %+v, want the flagged image", img)
		}
	})

	t.Run("falls back to first image", func(t *testing.T) {
		a := Artifact{Images: []Image{
			{Ref: "image-aaa-100x100-jpg"},
			{Ref: "image-bbb-100x100-jpg"},
		}}
		img := a.MainImage()
		if img == nil || img.Ref != "image-aaa-100x100-jpg" {
			t.Errorf("got %+v, want the first image", img)
		}
	})

	t.Run("nil when no images", func(t *testing.T) {
		a := Artifact{}
		if img := a.MainImage(); img != nil {
			t.Errorf("got %+v, want nil", img)
		}
	})
}

func TestTestimonialStars(t *testing.T) {
	tests := []struct {
		name     string
		rating   *int
		want     int
		wantShow bool
	}{
		{"no rating suppresses stars", nil, 0, false},
		{"valid rating", intPtr(4), 4, true},
		{"minimum", intPtr(1), 1, true},
		{"maximum", intPtr(5), 5, true},
		{"zero out of range", intPtr(0), 0, false},
		{"above range", intPtr(7), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Testimonial{Rating: tt.rating}
			got, show := tm.Stars()
			if got != tt.want || show != tt.wantShow {
				t.Errorf("Stars() = (%d, %v), want (%d, %v)", got, show, tt.want, tt.wantShow)
			}
		})
	}
}

func TestPublicationPDFHref(t *testing.T) {
	tests := []struct {
		name   string
		file   *string
		link   *string
		want   string
		wantOK bool
	}{
		{"uploaded file wins", strPtr("https://cdn.example/pub.pdf"), strPtr("https://ext.example/p"), "https://cdn.example/pub.pdf", true},
		{"external url alone", nil, strPtr("https://ext.example/p"), "https://ext.example/p", true},
		{"neither", nil, nil, "", false},
		{"empty strings", strPtr(""), strPtr(""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResearchPublication{PDFFileURL: tt.file, PDFLinkURL: tt.link}
			got, ok := p.PDFHref()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("PDFHref() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPostHasCategory(t *testing.T) {
	p := Post{Categories: []string{"Excavation", "Community"}}
	if !p.HasCategory("excavation") {
		t.Error("expected case-insensitive category match")
	}
	if !p.HasCategory(" Community ") {
		t.Error("expected whitespace-tolerant match")
	}
	if p.HasCategory("Finds") {
		t.Error("unexpected match")
	}
}

func TestSiteSettingsFallbacks(t *testing.T) {
	var s *SiteSettings
	if got := s.SiteTitle(); got != DefaultSiteTitle {
		t.Errorf("nil settings title: got %q", got)
	}
	if got := s.Logo(); got != "" {
		t.Errorf("nil settings logo: got %q", got)
	}

	full := &SiteSettings{Title: strPtr("Stanmoor Dig"), LogoRef: strPtr("image-logo-200x80-png")}
	if got := full.SiteTitle(); got != "Stanmoor Dig" {
		t.Errorf("title: got %q", got)
	}
	if got := full.Logo(); got != "image-logo-200x80-png" {
		t.Errorf("logo: got %q", got)
	}
}
