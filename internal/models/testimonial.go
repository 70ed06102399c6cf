// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Testimonial is a quote from a volunteer, student, or visitor.
type Testimonial struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Role     *string `json:"role,omitempty"` // role or organization
	Quote    string  `json:"quote"`
	Rating   *int    `json:"rating,omitempty"` // 1-5; absence suppresses star display
	Featured bool    `json:"featured"`
}

// Stars returns the rating clamped to 1-5, and whether stars should be
// shown at all.
func (t *Testimonial) Stars() (int, bool) {
	if t.Rating == nil {
		return 0, false
	}
	r := *t.Rating
	if r < 1 || r > 5 {
		return 0, false
	}
	return r, true
}
