package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/candrasdkd/easywork/internal/form"
	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/service/mocks"
)

func validRecord() model.InventoryRecord {
	date := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	return model.InventoryRecord{
		ToolName:           "Oven",
		BrandName:          "Memmert",
		TypeName:           "UN55",
		SerialNumber:       "SN-9",
		RoomName:           "Lab Fisika",
		Jumlah:             model.NewQuantity(2),
		ImplementationDate: &date,
	}
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockInventoryRepository
		profiles   *mocks.MockProfileReader
	}

	uid := gofakeit.UUID()
	who := model.Identity{UID: uid}

	type testCase struct {
		name   string
		rec    model.InventoryRecord
		setup  func(d deps)
		assert func(t *testing.T, res model.InventoryRecord, err error, d deps)
	}

	tests := []testCase{
		{
			name:  "missing required fields are rejected",
			rec:   model.InventoryRecord{ToolName: "Oven"},
			setup: func(d deps) {},
			assert: func(t *testing.T, res model.InventoryRecord, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidArgument)

				var vErr *form.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Missing, "Tanggal Pelaksanaan")

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "valid record is stamped and stored",
			rec:  validRecord(),
			setup: func(d deps) {
				d.profiles.
					On("ByUID", mock.Anything, uid).
					Return(&model.UserProfile{UID: uid, PICName: "Candra"}, nil).
					Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(rec model.InventoryRecord) bool {
						return rec.UserID == uid && rec.PersonResponsible == "Candra"
					})).
					Return(model.InventoryRecord{ID: "new-id"}, nil).
					Once()
			},
			assert: func(t *testing.T, res model.InventoryRecord, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "new-id", res.ID)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockInventoryRepository(t),
				profiles:   mocks.NewMockProfileReader(t),
			}
			tc.setup(d)

			svc := NewInventoryService(d.repository, d.profiles, time.Second, time.Second)
			res, err := svc.Create(context.Background(), who, tc.rec)
			tc.assert(t, res, err, d)
		})
	}
}

func TestServiceCreateKeepsClearedQuantity(t *testing.T) {
	t.Parallel()

	uid := gofakeit.UUID()
	repo := mocks.NewMockInventoryRepository(t)
	profiles := mocks.NewMockProfileReader(t)

	profiles.
		On("ByUID", mock.Anything, uid).
		Return(&model.UserProfile{UID: uid, PICName: "Candra"}, nil).
		Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(rec model.InventoryRecord) bool {
			return rec.Jumlah.IsEmpty()
		})).
		Return(model.InventoryRecord{ID: "new-id"}, nil).
		Once()

	rec := validRecord()
	rec.Jumlah = model.EmptyQuantity()

	svc := NewInventoryService(repo, profiles, time.Second, time.Second)
	_, err := svc.Create(context.Background(), model.Identity{UID: uid}, rec)
	require.NoError(t, err)
}

func TestServiceListMonthScoping(t *testing.T) {
	t.Parallel()

	uid := gofakeit.UUID()
	may := model.Month{Year: 2024, Month: time.May}

	repo := mocks.NewMockInventoryRepository(t)
	profiles := mocks.NewMockProfileReader(t)

	repo.
		On("ListMonth", mock.Anything, model.MonthQuery{
			Month:  may,
			UserID: uid,
			Order:  model.SortDesc,
		}).
		Return([]model.InventoryRecord{{ID: "a"}}, nil).
		Once()

	svc := NewInventoryService(repo, profiles, time.Second, time.Second)
	res, err := svc.ListMonth(context.Background(), model.Identity{UID: uid}, may, model.SortDesc)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}
