// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// Partner is a funder, partner, or supporter of the project.
type Partner struct {
	ID              string  `json:"_id"`
	Name            string  `json:"name"`
	LogoRef         *string `json:"logo,omitempty"`
	Website         *string `json:"website,omitempty"`
	PartnershipType string  `json:"partnershipType"`
	Description     *string `json:"description,omitempty"`
}

// PartnerGroup is the derived display grouping for a partner.
type PartnerGroup string

const (
	PrincipalFunders PartnerGroup = "Principal Funders"
	LeadPartners     PartnerGroup = "Lead Partners"
	Supporters       PartnerGroup = "Supporters"
)

// ClassifyPartner derives the display group from the editor-authored
// partnership-type string by case-insensitive substring match. This is a
// business rule inherited from the content team's conventions, kept in one
// place so it can be swapped for an explicit CMS field without touching
// templates. Unrecognized strings land in Supporters.
func ClassifyPartner(partnershipType string) PartnerGroup {
	lowered := strings.ToLower(partnershipType)
	switch {
	case strings.Contains(lowered, "principal"):
		return PrincipalFunders
	case strings.Contains(lowered, "lead"):
		return LeadPartners
	default:
		return Supporters
	}
}

// GroupPartners splits a partner list into the three display groups,
// preserving the incoming order within each group.
func GroupPartners(partners []Partner) map[PartnerGroup][]Partner {
	groups := make(map[PartnerGroup][]Partner, 3)
	for _, p := range partners {
		g := ClassifyPartner(p.PartnershipType)
		groups[g] = append(groups[g], p)
	}
	return groups
}

// equalFold is strings.EqualFold with surrounding whitespace ignored.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
