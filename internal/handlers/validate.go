// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation bounds for the story form. The client enforces the same
// rules; the server is the authority.
const (
	minNameLen  = 2
	minStoryLen = 50
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// StorySubmission is the JSON body of a story form post. Subject is
// optional; an empty one is derived from the name at relay time.
type StorySubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Story   string `json:"story"`
}

// ValidateStory checks a submission and returns per-field messages.
// An empty map means the submission is valid.
func ValidateStory(s StorySubmission) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(s.Name)
	if utf8.RuneCountInString(name) < minNameLen {
		errs["name"] = "Please enter your name (at least 2 characters)."
	}

	email := strings.TrimSpace(s.Email)
	if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address."
	}

	story := strings.TrimSpace(s.Story)
	if utf8.RuneCountInString(story) < minStoryLen {
		errs["story"] = "Please tell us a little more (at least 50 characters)."
	}

	return errs
}
