// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// TeamMember is a field-school tutor or project staff member. Bio is
// Markdown source rendered through internal/markdown.
type TeamMember struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Institution *string `json:"institution,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	PhotoRef    *string `json:"photo,omitempty"`
	Order       *int    `json:"displayOrder,omitempty"`
}
