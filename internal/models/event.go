// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Event is a scheduled activity: talks, open days, workshops. Listing only;
// no registration state is kept on this side.
type Event struct {
	ID       string     `json:"_id"`
	Title    string     `json:"title"`
	Start    time.Time  `json:"start"`
	End      *time.Time `json:"end,omitempty"`
	Location *string    `json:"location,omitempty"`
	Type     string     `json:"type"` // "talk", "open-day", "workshop", ...
	Speakers []string   `json:"speakers"`
}

// Upcoming reports whether the event has not yet finished at the given time.
func (e *Event) Upcoming(now time.Time) bool {
	if e.End != nil {
		return e.End.After(now)
	}
	return e.Start.After(now)
}
