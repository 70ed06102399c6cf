// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cms provides a thin client for the hosted Sanity content store.
// It executes GROQ queries over HTTPS against a fixed project/dataset and
// builds CDN URLs for image references. The client performs no retries and
// no caching; page-level caching lives in internal/cache.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client executes GROQ queries against one Sanity project/dataset.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string // optional read token for private datasets
	baseURL    string // overridable for tests
	client     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the query API base URL. Used in tests to point the
// client at a local httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a client for the given project and dataset. The token may be
// empty for public datasets.
func New(projectID, dataset, apiVersion, token string, opts ...Option) *Client {
	c := &Client{
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: apiVersion,
		token:      token,
		baseURL:    fmt.Sprintf("https://%s.api.sanity.io", projectID),
		client:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// queryResponse is the envelope the query API wraps every result in.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Fetch executes a GROQ query with the given parameters and unmarshals the
// result into out. Parameters are JSON-encoded and bound as $name. A query
// that matches nothing yields a null/empty result, which leaves out at its
// zero value; only transport, API, and decoding problems return errors.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, val := range params {
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("cms encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.baseURL, c.apiVersion, c.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("cms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cms http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cms read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cms query error (status %d): %s", resp.StatusCode, string(body))
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("cms unmarshal envelope: %w", err)
	}

	// Null result: nothing matched. Leave out at its zero value.
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("cms unmarshal result: %w", err)
	}
	return nil
}

// ProjectID returns the configured project identifier.
func (c *Client) ProjectID() string { return c.projectID }

// Dataset returns the configured dataset name.
func (c *Client) Dataset() string { return c.dataset }
