// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// storyRelayPayload is the shape the upstream contact endpoint accepts.
type storyRelayPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Story accepts a story form submission, validates it, and relays exactly
// one POST to the configured contact endpoint. Validation failures return
// field-level messages; an upstream failure surfaces its error message to
// the caller.
func (h *Public) Story(w http.ResponseWriter, r *http.Request) {
	var submission StorySubmission
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&submission); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "invalid request body",
		})
		return
	}

	if errs := ValidateStory(submission); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": errs,
		})
		return
	}

	subject := strings.TrimSpace(submission.Subject)
	if subject == "" {
		subject = "New story from " + strings.TrimSpace(submission.Name)
	}
	payload := storyRelayPayload{
		Name:    strings.TrimSpace(submission.Name),
		Email:   strings.TrimSpace(submission.Email),
		Subject: subject,
		Message: strings.TrimSpace(submission.Story),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "could not encode submission",
		})
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.contactEndpoint, bytes.NewReader(body))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "could not reach the contact service",
		})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.relay.Do(req)
	if err != nil {
		slog.Error("story relay failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": "We could not send your story right now. Please try again.",
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := relayErrorMessage(resp.Body)
		slog.Error("story relay rejected", "status", resp.StatusCode, "message", msg)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": msg,
		})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}

// relayErrorMessage extracts the upstream error string, falling back to a
// generic message when the body is not the expected JSON shape.
func relayErrorMessage(body io.Reader) string {
	var upstream struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4<<10)).Decode(&upstream); err == nil && upstream.Error != "" {
		return upstream.Error
	}
	return "We could not send your story right now. Please try again."
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
