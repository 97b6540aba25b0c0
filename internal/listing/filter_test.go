package listing

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candrasdkd/easywork/internal/model"
)

func calRecord(tool, brand string, date time.Time) model.CalibrationRecord {
	return model.CalibrationRecord{
		ID:                 gofakeit.UUID(),
		ToolName:           tool,
		BrandName:          brand,
		SerialNumber:       gofakeit.UUID(),
		RoomName:           gofakeit.Word(),
		ImplementationDate: &date,
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)

	rows := []model.CalibrationRecord{
		calRecord("Timbangan Analitik", "Mettler", jan),
		calRecord("Mikropipet", "Eppendorf", jan),
		calRecord("Timbangan Digital", "Ohaus", feb),
	}

	type testCase struct {
		name   string
		query  string
		assert func(t *testing.T, got []model.CalibrationRecord)
	}

	tests := []testCase{
		{
			name:  "blank query is the identity filter",
			query: "   ",
			assert: func(t *testing.T, got []model.CalibrationRecord) {
				assert.Equal(t, rows, got)
			},
		},
		{
			name:  "case-insensitive substring over tool name",
			query: "timbangan",
			assert: func(t *testing.T, got []model.CalibrationRecord) {
				require.Len(t, got, 2)
				assert.Equal(t, "Timbangan Analitik", got[0].ToolName)
				assert.Equal(t, "Timbangan Digital", got[1].ToolName)
			},
		},
		{
			name:  "matches the displayed date string",
			query: "januari",
			assert: func(t *testing.T, got []model.CalibrationRecord) {
				require.Len(t, got, 2)
				for _, r := range got {
					assert.Equal(t, time.January, r.ImplementationDate.Month())
				}
			},
		},
		{
			name:  "surrounding spaces are part of the match",
			query: "timbangan ",
			assert: func(t *testing.T, got []model.CalibrationRecord) {
				require.Len(t, got, 2)
				assert.Equal(t, "Timbangan Analitik", got[0].ToolName)
				assert.Equal(t, "Timbangan Digital", got[1].ToolName)
			},
		},
		{
			name:  "spaced query with no spaced occurrence yields empty set",
			query: " mettler ",
			assert: func(t *testing.T, got []model.CalibrationRecord) {
				assert.Empty(t, got)
			},
		},
		{
			name:  "no match yields empty set",
			query: "spektrofotometer",
			assert: func(t *testing.T, got []model.CalibrationRecord) {
				assert.Empty(t, got)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(rows, tc.query)
			tc.assert(t, got)

			// Filtering an already-filtered set changes nothing.
			assert.Equal(t, got, Filter(got, tc.query))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	rows := []model.CalibrationRecord{
		calRecord("Oven A", "Memmert", jan),
		calRecord("Inkubator", "Binder", jan),
		calRecord("Oven B", "Memmert", jan),
	}

	got := Filter(rows, "oven")
	require.Len(t, got, 2)
	assert.Equal(t, "Oven A", got[0].ToolName)
	assert.Equal(t, "Oven B", got[1].ToolName)
}
