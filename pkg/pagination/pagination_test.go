// Copyright (c) 2026 Ratematch. All rights reserved.

package pagination_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldelorme/ratematch/internal/platform/apperr"
	"github.com/ldelorme/ratematch/pkg/pagination"
)

// fakeStore simulates a filtered/ordered table of n sequential rows.
func fakeStore(n int) (pagination.CountFunc, pagination.FetchFunc[int]) {
	count := func(ctx context.Context) (int, error) {
		return n, nil
	}
	fetch := func(ctx context.Context, limit, offset int) ([]int, error) {
		var rows []int
		for i := offset; i < n && i < offset+limit; i++ {
			rows = append(rows, i)
		}
		return rows, nil
	}
	return count, fetch
}

/*
TestPaginate_TotalPages verifies total_pages == ceil(total / perPage) for a
sweep of row counts and page sizes, including the empty result set.
*/
func TestPaginate_TotalPages(t *testing.T) {
	tests := []struct {
		total      int
		perPage    int
		totalPages int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{3, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{8, 4, 2},
		{9, 4, 3},
		{10, 1, 10},
		{10, 3, 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("total_%d_per_%d", tt.total, tt.perPage), func(t *testing.T) {
			count, fetch := fakeStore(tt.total)

			page, err := pagination.Paginate(context.Background(), 1, tt.perPage, count, fetch)
			require.NoError(t, err)

			assert.Equal(t, tt.totalPages, page.Meta.TotalPages)
			assert.Equal(t, tt.total, page.Meta.Total)
		})
	}
}

/*
TestPaginate_EmptyResultSet checks that zero matching rows yield an empty
(non-nil) item slice and zero total pages.
*/
func TestPaginate_EmptyResultSet(t *testing.T) {
	count, fetch := fakeStore(0)

	page, err := pagination.Paginate(context.Background(), 1, 4, count, fetch)
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Meta.TotalPages)
}

/*
TestPaginate_OutOfRangePage checks that a page past the end of the result set
is not an error: it returns empty items with the correct metadata.
*/
func TestPaginate_OutOfRangePage(t *testing.T) {
	count, fetch := fakeStore(5) // 2 pages at perPage 4

	page, err := pagination.Paginate(context.Background(), 99, 4, count, fetch)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Equal(t, 5, page.Meta.Total)
}

/*
TestPaginate_Partition verifies that concatenating pages 1..TotalPages
reproduces the full ordered result set with no duplicates or omissions.
*/
func TestPaginate_Partition(t *testing.T) {
	const total = 11
	const perPage = 4

	count, fetch := fakeStore(total)

	first, err := pagination.Paginate(context.Background(), 1, perPage, count, fetch)
	require.NoError(t, err)
	require.Equal(t, 3, first.Meta.TotalPages)

	var all []int
	for p := 1; p <= first.Meta.TotalPages; p++ {
		page, err := pagination.Paginate(context.Background(), p, perPage, count, fetch)
		require.NoError(t, err)
		all = append(all, page.Items...)
	}

	require.Len(t, all, total)
	for i, v := range all {
		assert.Equal(t, i, v)
	}
}

/*
TestPaginate_InvalidParams checks that a sub-1 page or page size is rejected
with a validation error rather than clamped.
*/
func TestPaginate_InvalidParams(t *testing.T) {
	count, fetch := fakeStore(10)

	tests := []struct {
		name    string
		page    int
		perPage int
	}{
		{"zero_page", 0, 4},
		{"negative_page", -3, 4},
		{"zero_per_page", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pagination.Paginate(context.Background(), tt.page, tt.perPage, count, fetch)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestFromRequest covers page parsing: default, explicit, and rejection of
malformed or sub-1 values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantPage int
		wantErr  bool
	}{
		{"missing_defaults_to_first", "/events", 1, false},
		{"explicit_page", "/events?page=3", 3, false},
		{"zero_rejected", "/events?page=0", 0, true},
		{"negative_rejected", "/events?page=-1", 0, true},
		{"garbage_rejected", "/events?page=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)

			params, err := pagination.FromRequest(request)
			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, pagination.DefaultPerPage, params.PerPage)
		})
	}
}

/*
TestParams_Offset checks the page-to-offset arithmetic.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PerPage: 4}.Offset())
	assert.Equal(t, 4, pagination.Params{Page: 2, PerPage: 4}.Offset())
	assert.Equal(t, 12, pagination.Params{Page: 4, PerPage: 4}.Offset())
}
