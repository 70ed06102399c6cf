// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"
)

func validSubmission() StorySubmission {
	return StorySubmission{
		Name:  "Ada Moor",
		Email: "ada@example.com",
		Story: strings.Repeat("We found a coin on the last day of the dig. ", 3),
	}
}

func TestValidateStory(t *testing.T) {
	t.Run("valid submission has no errors", func(t *testing.T) {
		if errs := ValidateStory(validSubmission()); len(errs) != 0 {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("name shorter than 2 characters", func(t *testing.T) {
		s := validSubmission()
		s.Name = "A"
		errs := ValidateStory(s)
		if _, ok := errs["name"]; !ok {
			t.Error("expected a name error")
		}
	})

	t.Run("whitespace-only name", func(t *testing.T) {
		s := validSubmission()
		s.Name = "   "
		if _, ok := ValidateStory(s)["name"]; !ok {
			t.Error("expected a name error")
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		for _, email := range []string{"", "ada", "ada@", "@example.com", "ada example@com"} {
			s := validSubmission()
			s.Email = email
			if _, ok := ValidateStory(s)["email"]; !ok {
				t.Errorf("email %q: expected an email error", email)
			}
		}
	})

	t.Run("story of 40 characters is rejected", func(t *testing.T) {
		s := validSubmission()
		s.Story = strings.Repeat("x", 40)
		errs := ValidateStory(s)
		msg, ok := errs["story"]
		if !ok {
			t.Fatal("expected a story error")
		}
		if !strings.Contains(msg, "50") {
			t.Errorf("story error should reference the minimum length, got %q", msg)
		}
	})

	t.Run("story of exactly 50 characters passes", func(t *testing.T) {
		s := validSubmission()
		s.Story = strings.Repeat("y", 50)
		if _, ok := ValidateStory(s)["story"]; ok {
			t.Error("50-character story should be accepted")
		}
	})

	t.Run("all fields invalid reports all fields", func(t *testing.T) {
		errs := ValidateStory(StorySubmission{})
		for _, field := range []string{"name", "email", "story"} {
			if _, ok := errs[field]; !ok {
				t.Errorf("expected an error for %q", field)
			}
		}
	})
}
