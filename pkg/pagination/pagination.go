// Copyright (c) 2026 Ratematch. All rights reserved.

// Package pagination provides the shared page-based data access layer used by
// every list endpoint.
//
// # Overview
//
// It standardizes how page navigation is requested via query parameters, how
// a repository turns a filtered query into one page of rows plus a total page
// count, and how the resulting metadata is delivered in the API response
// envelope.
package pagination

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ldelorme/ratematch/internal/platform/apperr"
)

const (
	// DefaultPerPage is the number of items per page used across the API.
	DefaultPerPage = 4
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and per-page size for a list request.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the SQL OFFSET value derived from [Page] and [PerPage].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"page_total"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(total / perPage); it is 0 exactly when total is 0.
func NewMeta(page, perPage, total int) Meta {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	return Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Page is one bounded slice of an ordered result set plus its metadata.
//
// Items is never nil: a page past the end of the result set carries an empty
// slice and the correct metadata, not an error.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// CountFunc counts all rows matching a query, ignoring pagination bounds.
type CountFunc func(ctx context.Context) (int, error)

// FetchFunc loads one bounded slice of rows for the same query.
type FetchFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// Paginate executes the two-query pattern (count, then bounded fetch) against
// an arbitrary filtered/ordered query and assembles the resulting [Page].
//
// Both funcs must observe the same filter predicate. The two queries are not
// issued inside one transaction, so the total can be stale under concurrent
// writes.
//
// A page below 1 or a non-positive perPage is rejected with a validation
// error. A page beyond the last one succeeds with empty Items.
func Paginate[T any](ctx context.Context, page, perPage int, count CountFunc, fetch FetchFunc[T]) (*Page[T], error) {
	if page < DefaultPage {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "page",
			Message: "Must be 1 or greater",
		})
	}
	if perPage < 1 {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "per_page",
			Message: "Must be 1 or greater",
		})
	}

	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	meta := NewMeta(page, perPage, total)

	// Nothing matches: skip the fetch round trip.
	if total == 0 {
		return &Page[T]{Items: []T{}, Meta: meta}, nil
	}

	items, err := fetch(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return &Page[T]{Items: items, Meta: meta}, nil
}

// FromRequest parses the "page" query parameter from an HTTP request.
//
// A missing parameter defaults to page 1. A malformed or sub-1 value is
// rejected rather than clamped, so clients learn about broken pagination
// loops instead of silently re-reading the first page.
func FromRequest(r *http.Request) (Params, error) {
	params := Params{Page: DefaultPage, PerPage: DefaultPerPage}

	raw := r.URL.Query().Get("page")
	if raw == "" {
		return params, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < DefaultPage {
		return Params{}, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "page",
			Message: "Must be an integer of 1 or greater",
		})
	}

	params.Page = page
	return params, nil
}
