// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// listings.go groups the flat list accessors that need no post-processing
// beyond what their queries express.
package content

import (
	"context"

	"stanmoor/internal/models"
)

// Events returns all scheduled activities, earliest first.
func (s *Store) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.cms.Fetch(ctx, queryEvents, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Partners returns all partners in editor-set display order. Grouping
// into principal/lead/supporter happens at render time via
// models.GroupPartners.
func (s *Store) Partners(ctx context.Context) ([]models.Partner, error) {
	var partners []models.Partner
	if err := s.cms.Fetch(ctx, queryPartners, nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// Testimonials returns all testimonials, newest first.
func (s *Store) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.cms.Fetch(ctx, queryTestimonials, nil, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// FeaturedTestimonials returns only the testimonials flagged for the
// homepage carousel.
func (s *Store) FeaturedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.cms.Fetch(ctx, queryFeaturedTestimonials, nil, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// TeamMembers returns field-school tutors and staff in display order.
func (s *Store) TeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := s.cms.Fetch(ctx, queryTeamMembers, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Publications returns all research publications, most recent year first.
func (s *Store) Publications(ctx context.Context) ([]models.ResearchPublication, error) {
	var pubs []models.ResearchPublication
	if err := s.cms.Fetch(ctx, queryPublications, nil, &pubs); err != nil {
		return nil, err
	}
	return pubs, nil
}

// EducationResources returns all education resources, alphabetically.
func (s *Store) EducationResources(ctx context.Context) ([]models.EducationResource, error) {
	var resources []models.EducationResource
	if err := s.cms.Fetch(ctx, queryEducationResources, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// EducationResourceBySlug looks up one education resource by slug.
// Returns (nil, nil) when the slug resolves to nothing.
func (s *Store) EducationResourceBySlug(ctx context.Context, slug string) (*models.EducationResource, error) {
	var resource *models.EducationResource
	if err := s.cms.Fetch(ctx, queryEducationResourceBySlug, map[string]any{"slug": slug}, &resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// FieldSchoolSessions returns all field-school offerings, newest year first.
func (s *Store) FieldSchoolSessions(ctx context.Context) ([]models.FieldSchoolSession, error) {
	var sessions []models.FieldSchoolSession
	if err := s.cms.Fetch(ctx, queryFieldSchoolSessions, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
