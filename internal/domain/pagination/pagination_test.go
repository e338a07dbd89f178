package pagination_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/billing-api/internal/domain/pagination"
)

type row struct{ ID string }

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{ID: fmt.Sprintf("id-%03d", i)}
	}
	return out
}

func rowID(r row) string { return r.ID }

// Overfetched input of exactly limit+1: truncate, report more, cursor is the
// last returned identifier.
func TestSlice_OverfetchByOne(t *testing.T) {
	page := pagination.Slice(rows(21), 20, rowID)

	assert.Len(t, page.Data, 20)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, page.Data[19].ID, *page.NextCursor,
		"nextCursor must be the id of the last item in the truncated slice")
}

func TestSlice_ShortPage(t *testing.T) {
	for _, n := range []int{0, 1, 19, 20} {
		page := pagination.Slice(rows(n), 20, rowID)

		assert.Len(t, page.Data, n, "n=%d", n)
		assert.False(t, page.HasMore, "n=%d", n)
		assert.Nil(t, page.NextCursor, "n=%d", n)
	}
}

func TestSlice_EmptyInput(t *testing.T) {
	page := pagination.Slice(nil, 20, rowID)

	assert.NotNil(t, page.Data, "data must serialize as [], not null")
	assert.Empty(t, page.Data)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

// Property: for every limit, an input of limit+1 returns exactly limit items
// and the cursor of the last one.
func TestSlice_Property_AllLimits(t *testing.T) {
	for limit := 1; limit <= 50; limit++ {
		page := pagination.Slice(rows(limit+1), limit, rowID)

		require.Len(t, page.Data, limit, "limit=%d", limit)
		require.True(t, page.HasMore, "limit=%d", limit)
		require.NotNil(t, page.NextCursor, "limit=%d", limit)
		require.Equal(t, page.Data[limit-1].ID, *page.NextCursor, "limit=%d", limit)
	}
}

// Chaining pages over a fixed ordered set must visit every element exactly
// once (no overlap, no gap).
func TestSlice_ChainedPagesCoverAll(t *testing.T) {
	all := rows(47)
	const limit = 10

	seen := map[string]int{}
	start := 0
	for {
		end := start + limit + 1
		if end > len(all) {
			end = len(all)
		}
		page := pagination.Slice(all[start:end], limit, rowID)
		for _, r := range page.Data {
			seen[r.ID]++
		}
		if !page.HasMore {
			break
		}
		// Next fetch starts strictly after the cursor row.
		start += len(page.Data)
	}

	require.Len(t, seen, len(all))
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s returned %d times", id, n)
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, pagination.DefaultLimit, pagination.ClampLimit(0))
	assert.Equal(t, pagination.DefaultLimit, pagination.ClampLimit(-5))
	assert.Equal(t, 1, pagination.ClampLimit(1))
	assert.Equal(t, 35, pagination.ClampLimit(35))
	assert.Equal(t, pagination.MaxLimit, pagination.ClampLimit(1000))
}
