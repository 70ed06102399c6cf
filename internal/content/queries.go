// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// queries.go holds the named GROQ queries, one family per content type.
// Projections select exactly the fields the page templates need. List
// queries order reverse-chronologically unless the type carries an
// explicit displayOrder/order field, which wins with a chronological
// tiebreak. A query that matches nothing yields an empty array or null,
// never an error.
package content

const artifactProjection = `{
	_id, _createdAt, title, "slug": slug.current, description,
	"images": images[]{ "ref": asset._ref, "alt": coalesce(alt, ^.title), caption, isMain },
	modelUrl, period, date, material, dimensions, foundAt, foundYear,
	keywords, "featured": coalesce(featured, false)
}`

const (
	queryArtifacts = `*[_type == "artifact"] | order(_createdAt desc) ` + artifactProjection

	queryFeaturedArtifacts = `*[_type == "artifact" && featured == true] | order(_createdAt desc) ` + artifactProjection

	queryArtifactBySlug = `*[_type == "artifact" && slug.current == $slug][0] ` + artifactProjection

	queryArtifactPeriods = `*[_type == "artifact" && defined(period)] | order(_createdAt desc) .period`
)

const postProjection = `{
	_id, _createdAt, title, "slug": slug.current, excerpt, body,
	"categories": coalesce(categories, []),
	"author": author->{ name, role },
	"image": mainImage.asset._ref,
	publishedAt,
	"related": relatedPosts[]->{ title, "slug": slug.current, excerpt, "image": mainImage.asset._ref }
}`

const (
	queryPosts = `*[_type == "post"] | order(coalesce(publishedAt, _createdAt) desc) ` + postProjection

	queryPostBySlug = `*[_type == "post" && slug.current == $slug][0] ` + postProjection

	queryPostCategories = `*[_type == "post"] | order(coalesce(publishedAt, _createdAt) desc) .categories[]`
)

const (
	queryEvents = `*[_type == "event"] | order(start asc) {
		_id, title, start, end, location, type, "speakers": coalesce(speakers, [])
	}`

	queryPartners = `*[_type == "partner"] | order(coalesce(displayOrder, 9999) asc, _createdAt desc) {
		_id, name, "logo": logo.asset._ref, website, partnershipType, description
	}`

	queryTestimonials = `*[_type == "testimonial"] | order(_createdAt desc) {
		_id, name, role, quote, rating, "featured": coalesce(featured, false)
	}`

	queryFeaturedTestimonials = `*[_type == "testimonial" && featured == true] | order(_createdAt desc) {
		_id, name, role, quote, rating, "featured": true
	}`

	queryTeamMembers = `*[_type == "teamMember"] | order(coalesce(displayOrder, 9999) asc, name asc) {
		_id, name, role, institution, bio, "photo": photo.asset._ref, displayOrder
	}`

	queryPublications = `*[_type == "researchPublication"] | order(coalesce(year, 9999) desc, _createdAt desc) {
		_id, title, "slug": slug.current, authors, journal, volume, pages, year,
		doi, abstract, "keywords": coalesce(keywords, []),
		"pdfFile": pdfFile.asset->url, pdfUrl,
		"openAccess": coalesce(openAccess, false),
		"featured": coalesce(featured, false)
	}`

	queryEducationResources = `*[_type == "educationResource"] | order(title asc) {
		_id, title, "slug": slug.current, resourceType,
		"keyStages": coalesce(keyStages, []), "subjects": coalesce(subjects, []),
		description,
		"gallery": gallery[]{ "ref": asset._ref, "alt": coalesce(alt, ^.title), caption, isMain },
		"fileUrl": file.asset->url, externalUrl
	}`

	queryEducationResourceBySlug = `*[_type == "educationResource" && slug.current == $slug][0] {
		_id, title, "slug": slug.current, resourceType,
		"keyStages": coalesce(keyStages, []), "subjects": coalesce(subjects, []),
		description,
		"gallery": gallery[]{ "ref": asset._ref, "alt": coalesce(alt, ^.title), caption, isMain },
		"fileUrl": file.asset->url, externalUrl
	}`

	queryHomepageSection = `*[_type == "homepageSection" && sectionId == $sectionId][0] {
		_id, sectionId, layout, title, subtitle, description,
		"items": items[]{ title, text, "image": image.asset._ref, linkUrl, linkLabel },
		"order": coalesce(order, 0)
	}`

	queryFieldSchoolSessions = `*[_type == "fieldSchoolSession"] | order(year desc, start desc) {
		_id, title, year, start, end, dates, duration, participantLimit,
		registrationStatus, registrationButtonText, registrationUrl
	}`

	querySiteSettings = `*[_type == "siteSettings"][0] {
		"logo": logo.asset._ref, title
	}`
)
