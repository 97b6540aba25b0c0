package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candrasdkd/easywork/internal/model"
)

func TestStateResetsPage(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		mutate func(s *State)
		assert func(t *testing.T, s *State)
	}

	tests := []testCase{
		{
			name:   "search change resets the page",
			mutate: func(s *State) { s.SetSearch("oven") },
			assert: func(t *testing.T, s *State) {
				assert.Equal(t, 0, s.Page())
				assert.Equal(t, "oven", s.Search())
			},
		},
		{
			name:   "page size change resets the page",
			mutate: func(s *State) { s.SetPageSize(50) },
			assert: func(t *testing.T, s *State) {
				assert.Equal(t, 0, s.Page())
				assert.Equal(t, 50, s.PageSize())
			},
		},
		{
			name:   "month change resets the page",
			mutate: func(s *State) { s.NextMonth() },
			assert: func(t *testing.T, s *State) {
				assert.Equal(t, 0, s.Page())
				assert.Equal(t, model.Month{Year: 2024, Month: 6}, s.Month())
			},
		},
		{
			name:   "plain page move keeps everything else",
			mutate: func(s *State) { s.SetPage(4) },
			assert: func(t *testing.T, s *State) {
				assert.Equal(t, 4, s.Page())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewState(model.Month{Year: 2024, Month: 5})
			s.SetPage(3)
			require.Equal(t, 3, s.Page())

			tc.mutate(s)
			tc.assert(t, s)
		})
	}
}

func TestStateDefaults(t *testing.T) {
	t.Parallel()

	s := NewState(model.Month{Year: 2024, Month: 1})
	assert.Equal(t, DefaultPageSize, s.PageSize())
	assert.Equal(t, 0, s.Page())
	assert.Empty(t, s.Search())

	s.SetPage(-2)
	assert.Equal(t, 0, s.Page())
	s.SetPageSize(0)
	assert.Equal(t, DefaultPageSize, s.PageSize())
}

func TestStateApply(t *testing.T) {
	t.Parallel()

	rows := []model.InventoryRecord{
		{ToolName: "Oven", BrandName: "Memmert"},
		{ToolName: "Inkubator", BrandName: "Binder"},
		{ToolName: "Oven Vakum", BrandName: "Memmert"},
	}

	s := NewState(model.Month{Year: 2024, Month: 5})
	s.SetSearch("oven")
	s.SetPageSize(1)
	s.SetPage(1)

	pageRows, total := Apply(s, rows)
	require.Len(t, pageRows, 1)
	assert.Equal(t, "Oven Vakum", pageRows[0].ToolName)
	assert.Equal(t, 2, total)
}
