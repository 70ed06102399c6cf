// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a fake query API for accessor tests: an
// httptest server that matches the incoming GROQ text against registered
// fragments and replies with canned results.
package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stanmoor/internal/cms"
)

// fixture pairs a GROQ fragment with the canned result it should produce.
type fixture struct {
	fragment string
	result   any
}

// fakeCMS is an ordered fixture list; register the most specific
// fragments first.
type fakeCMS []fixture

// newTestStore spins up a fake query endpoint and returns a Store wired to
// it. The first registered fragment found in the incoming query wins.
func newTestStore(t *testing.T, fixtures fakeCMS) *Store {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		for _, f := range fixtures {
			if strings.Contains(query, f.fragment) {
				json.NewEncoder(w).Encode(map[string]any{"result": f.result})
				return
			}
		}
		w.Write([]byte(`{"result":null}`))
	}))
	t.Cleanup(srv.Close)

	client := cms.New("testproj", "test", "2024-01-01", "", cms.WithBaseURL(srv.URL))
	return NewStore(client)
}
