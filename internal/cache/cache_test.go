// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRequestKey(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		query string
		want  string
	}{
		{"plain path", "/museum", "", "/museum"},
		{"search and page", "/museum", "q=pottery&page=2", "/museum?page=2&q=pottery"},
		{"param order irrelevant", "/museum", "page=2&q=pottery", "/museum?page=2&q=pottery"},
		{"uncached params ignored", "/news", "utm_source=x&category=Finds", "/news?category=Finds"},
		{"empty values dropped", "/museum", "q=&period=Roman", "/museum?period=Roman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if got := RequestKey(tt.path, values); got != tt.want {
				t.Errorf("RequestKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := pc.Get(ctx, "/museum")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	// Set, then hit.
	html := []byte("<html><body>Museum</body></html>")
	pc.Set(ctx, "/museum", html)

	data, ok = pc.Get(ctx, "/museum")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(html) {
		t.Errorf("got %q, want %q", data, html)
	}
}

func TestPageCacheTTLExpiry(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Second)

	ctx := context.Background()
	pc.Set(ctx, "/expiring", []byte("stale soon"))

	if _, ok := pc.Get(ctx, "/expiring"); !ok {
		t.Fatal("expected hit inside the revalidation window")
	}

	time.Sleep(1200 * time.Millisecond)

	if _, ok := pc.Get(ctx, "/expiring"); ok {
		t.Error("expected miss after the revalidation window lapsed")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)

	ctx := context.Background()
	pc.Set(ctx, "/a", []byte("a"))
	pc.Set(ctx, "/b", []byte("b"))

	pc.InvalidateAll(ctx)

	if _, ok := pc.Get(ctx, "/a"); ok {
		t.Error("expected /a evicted")
	}
	if _, ok := pc.Get(ctx, "/b"); ok {
		t.Error("expected /b evicted")
	}
}
