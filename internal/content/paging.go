// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import "strings"

// Paginate returns the 1-based page slice [(page-1)*pageSize, page*pageSize).
// Pages beyond the available range yield an empty slice, never an error;
// callers render a "no results" state. Page numbers below 1 are treated as 1.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the number of pages needed for n items.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// UniqueFold de-duplicates string values with case-insensitive set
// semantics. Order is the insertion order of first occurrence, and the
// first occurrence's casing is kept.
func UniqueFold(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// FeaturedFirst splits items into the single "featured slot" item and the
// rest. The slot holds the first item the predicate accepts, falling back
// to the first item overall, so it is never empty when any data exists.
// ok is false only for an empty input.
func FeaturedFirst[T any](items []T, featured func(T) bool) (first T, rest []T, ok bool) {
	if len(items) == 0 {
		var zero T
		return zero, nil, false
	}
	idx := 0
	for i, item := range items {
		if featured(item) {
			idx = i
			break
		}
	}
	rest = make([]T, 0, len(items)-1)
	rest = append(rest, items[:idx]...)
	rest = append(rest, items[idx+1:]...)
	return items[idx], rest, true
}

// containsFold is a case-insensitive substring test.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
