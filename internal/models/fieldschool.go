// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// RegistrationStatus is the editor-set registration state of a session.
type RegistrationStatus string

const (
	RegistrationOpen    RegistrationStatus = "open"
	RegistrationNotOpen RegistrationStatus = "not-open"
	RegistrationClosed  RegistrationStatus = "closed"
	RegistrationFull    RegistrationStatus = "full"
)

// FieldSchoolSession is one field-school offering.
type FieldSchoolSession struct {
	ID                 string             `json:"_id"`
	Title              string             `json:"title"`
	Year               int                `json:"year"`
	Start              *time.Time         `json:"start,omitempty"`
	End                *time.Time         `json:"end,omitempty"`
	DatesText          *string            `json:"dates,omitempty"` // editor-authored, e.g. "6-31 July 2026"
	Duration           *string            `json:"duration,omitempty"`
	ParticipantLimit   *int               `json:"participantLimit,omitempty"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
	ButtonTextOverride *string            `json:"registrationButtonText,omitempty"`
	RegistrationURL    *string            `json:"registrationUrl,omitempty"`
}

// RegistrationEnabled reports whether the session's action control is
// clickable. Only an explicitly open session enables it; the authored
// button-text override changes the label, never the state.
func (s *FieldSchoolSession) RegistrationEnabled() bool {
	return s.RegistrationStatus == RegistrationOpen
}

// RegistrationLabel returns the action control's label. An authored
// override is shown verbatim; otherwise the status maps to a fixed label.
func (s *FieldSchoolSession) RegistrationLabel() string {
	if s.ButtonTextOverride != nil && *s.ButtonTextOverride != "" {
		return *s.ButtonTextOverride
	}
	switch s.RegistrationStatus {
	case RegistrationOpen:
		return "Register Now"
	case RegistrationNotOpen:
		return "Registration Not Open"
	case RegistrationFull:
		return "Fully Booked"
	case RegistrationClosed:
		return "Registration Closed"
	default:
		return "Registration Closed"
	}
}
