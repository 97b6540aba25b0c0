package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/candrasdkd/easywork/internal/model"
)

func TestQuantityStorage(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		jumlah model.Quantity
		stored any
	}

	tests := []testCase{
		{name: "number stored as number", jumlah: model.NewQuantity(3), stored: int64(3)},
		{name: "cleared value stored as empty string", jumlah: model.EmptyQuantity(), stored: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ent, err := EntityFromModel(&model.InventoryRecord{Jumlah: tc.jumlah})
			require.NoError(t, err)
			assert.Equal(t, tc.stored, ent.Jumlah)

			got := EntityToModel(ent)
			assert.Equal(t, tc.jumlah, got.Jumlah)
		})
	}
}

func TestQuantityFromOlderDocuments(t *testing.T) {
	t.Parallel()

	// Numeric BSON decodes as int32/int64/float64 depending on the writer.
	for _, stored := range []any{int32(4), int64(4), float64(4)} {
		got := EntityToModel(&InventoryEntity{Jumlah: stored})
		v, ok := got.Jumlah.Value()
		require.True(t, ok)
		assert.Equal(t, int64(4), v)
	}

	got := EntityToModel(&InventoryEntity{Jumlah: nil})
	assert.True(t, got.Jumlah.IsEmpty())
}

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	rec := model.InventoryRecord{
		ID:                 bson.NewObjectID().Hex(),
		UserID:             "uid-1",
		ToolName:           "Oven",
		RoomName:           "Lab Fisika",
		Satuan:             "Unit",
		Jumlah:             model.NewQuantity(2),
		KondisiBaik:        true,
		PersonResponsible:  "Candra",
		ImplementationDate: &date,
	}

	ent, err := EntityFromModel(&rec)
	require.NoError(t, err)
	got := EntityToModel(ent)
	assert.Equal(t, rec, *got)
}
