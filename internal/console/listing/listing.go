// Package listing filters, sorts and pages lists already fetched from the
// API. It never talks to the server.
package listing

import (
	"cmp"
	"slices"
	"strings"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder maps "desc" (any case) to Desc and everything else to Asc.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Filter returns the items for which keep returns true, in input order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps items where any of fields contains query, ignoring case.
// An empty query keeps everything.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	return Filter(items, func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), query) {
				return true
			}
		}
		return false
	})
}

// Equals keeps items whose field equals want, ignoring case. An empty want
// or "all" keeps everything.
func Equals[T any](items []T, want string, field func(T) string) []T {
	if want == "" || strings.EqualFold(want, "all") {
		return items
	}
	return Filter(items, func(item T) bool {
		return strings.EqualFold(field(item), want)
	})
}

// SortBy sorts a copy of items by key. The sort is stable.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K, order Order) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		if order == Desc {
			return -c
		}
		return c
	})
	return out
}

// Page is one page of a list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns page (1-based) of items. Pages below 1 are treated as 1;
// pages past the end are empty. perPage below 1 returns everything.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	total := len(items)
	if perPage < 1 {
		perPage = max(total, 1)
	}
	if page < 1 {
		page = 1
	}

	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}

	// page and perPage come from flags, so avoid multiplying past the end.
	start := total
	if page-1 < totalPages {
		start = (page - 1) * perPage
	}
	end := start + min(perPage, total-start)

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
