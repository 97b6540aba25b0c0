package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	rows := make([]int, 25)
	for i := range rows {
		rows[i] = i
	}

	type testCase struct {
		name     string
		page     int
		pageSize int
		assert   func(t *testing.T, got []int, total int)
	}

	tests := []testCase{
		{
			name: "first page", page: 0, pageSize: 10,
			assert: func(t *testing.T, got []int, total int) {
				require.Len(t, got, 10)
				assert.Equal(t, 0, got[0])
				assert.Equal(t, 9, got[9])
				assert.Equal(t, 25, total)
			},
		},
		{
			name: "last partial page", page: 2, pageSize: 10,
			assert: func(t *testing.T, got []int, total int) {
				require.Len(t, got, 5)
				assert.Equal(t, 20, got[0])
				assert.Equal(t, 25, total)
			},
		},
		{
			name: "page beyond the end", page: 5, pageSize: 10,
			assert: func(t *testing.T, got []int, total int) {
				assert.Empty(t, got)
				assert.Equal(t, 25, total)
			},
		},
		{
			name: "total counts the whole set, not the page", page: 1, pageSize: 5,
			assert: func(t *testing.T, got []int, total int) {
				require.Len(t, got, 5)
				assert.Equal(t, 25, total)
			},
		},
		{
			name: "invalid page size yields nothing", page: 0, pageSize: 0,
			assert: func(t *testing.T, got []int, total int) {
				assert.Empty(t, got)
				assert.Equal(t, 25, total)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, total := Paginate(rows, tc.page, tc.pageSize)
			tc.assert(t, got, total)
		})
	}
}

// The pages of a set partition it: concatenating every page in order
// reproduces the input exactly.
func TestPaginatePartition(t *testing.T) {
	t.Parallel()

	rows := make([]int, 23)
	for i := range rows {
		rows[i] = i
	}

	var joined []int
	for page := 0; ; page++ {
		pageRows, total := Paginate(rows, page, 7)
		require.Equal(t, len(rows), total)
		if len(pageRows) == 0 {
			break
		}
		joined = append(joined, pageRows...)
	}
	assert.Equal(t, rows, joined)
}
