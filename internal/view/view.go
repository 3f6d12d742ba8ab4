// Package view implements the client-side list behaviors of the admin
// screens as pure functions: substring filtering, stable sorting, and
// fixed-size pagination.
package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SiteLogPageSize is the fixed page size of the site-log viewer.
const SiteLogPageSize = 4

// CategoryAll is the wildcard category that matches every item.
const CategoryAll = "all"

// Matches reports whether any of the fields contains query,
// case-insensitively. An empty query matches everything.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the items whose text fields contain query (OR across
// fields) and whose category equals category ("all" is a wildcard). The
// two conditions compose with AND, so applying them in either order gives
// the same result.
func Filter[T any](items []T, query, category string, fields func(T) []string, categoryOf func(T) string) []T {
	var out []T
	for _, item := range items {
		if !Matches(query, fields(item)...) {
			continue
		}
		if category != "" && category != CategoryAll && categoryOf != nil && categoryOf(item) != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SortByDateDesc sorts items newest first. The sort is stable: equal dates
// keep their original relative order.
func SortByDateDesc[T any](items []T, dateOf func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return dateOf(items[i]).After(dateOf(items[j]))
	})
}

// frCollator performs locale-aware string comparison for name sorting.
var frCollator = collate.New(language.French, collate.IgnoreCase)

// SortByNameAsc sorts items by name ascending using locale-aware
// comparison, so "Étude" orders next to "Etude" instead of after "Z".
// Stable and idempotent.
func SortByNameAsc[T any](items []T, nameOf func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return frCollator.CompareString(nameOf(items[i]), nameOf(items[j])) < 0
	})
}

// SortBySizeAsc sorts items by numeric size ascending. Stable.
func SortBySizeAsc[T any](items []T, sizeOf func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return sizeOf(items[i]) < sizeOf(items[j])
	})
}

// Page holds one page of a filtered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Paginate slices items into the requested page. The page number is
// clamped to [1, ceil(len/pageSize)] on every call, so a shrinking filter
// can never leave the caller stranded past the end of the list.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = SiteLogPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
