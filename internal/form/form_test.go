package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candrasdkd/easywork/internal/model"
)

type fakeSaver[T any] struct {
	createErr  error
	replaceErr error

	created  []T
	replaced []T
	assignID func(rec T) T
}

func (s *fakeSaver[T]) Create(_ context.Context, rec T) (T, error) {
	if s.createErr != nil {
		var zero T
		return zero, s.createErr
	}
	if s.assignID != nil {
		rec = s.assignID(rec)
	}
	s.created = append(s.created, rec)
	return rec, nil
}

func (s *fakeSaver[T]) Replace(_ context.Context, rec T) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = append(s.replaced, rec)
	return nil
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		UID:     gofakeit.UUID(),
		Email:   gofakeit.Email(),
		PICName: "Candra",
	}
}

func TestInventorySaveNew(t *testing.T) {
	t.Parallel()

	profile := testProfile()
	date := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	saver := &fakeSaver[model.InventoryRecord]{
		assignID: func(rec model.InventoryRecord) model.InventoryRecord {
			rec.ID = "new-id"
			return rec
		},
	}
	c := NewController(InventoryVariant(), saver)

	c.OpenNew()
	assert.Equal(t, model.DefaultQuantity(), c.Draft().Jumlah)

	c.SetDraft(model.InventoryRecord{
		ToolName:           "  Oven ",
		BrandName:          "Memmert",
		TypeName:           "UN55",
		SerialNumber:       "SN-9",
		RoomName:           "Lab Fisika",
		Satuan:             "Unit",
		Jumlah:             model.NewQuantity(2),
		PersonResponsible:  "typed by hand",
		ImplementationDate: &date,
	})

	refetch, err := c.Save(context.Background(), profile)
	require.NoError(t, err)
	assert.True(t, refetch)
	assert.Equal(t, Closed, c.Mode())

	require.Len(t, saver.created, 1)
	got := saver.created[0]
	assert.Equal(t, "Oven", got.ToolName)
	assert.Equal(t, profile.UID, got.UserID)
	// The typed person_responsible never survives a save.
	assert.Equal(t, "Candra", got.PersonResponsible)

	// The next fresh draft keeps the room and unit, quantity back to 1.
	c.OpenNew()
	assert.Equal(t, "Lab Fisika", c.Draft().RoomName)
	assert.Equal(t, "Unit", c.Draft().Satuan)
	assert.Equal(t, model.DefaultQuantity(), c.Draft().Jumlah)
}

func TestInventoryRequiredFields(t *testing.T) {
	t.Parallel()

	saver := &fakeSaver[model.InventoryRecord]{}
	c := NewController(InventoryVariant(), saver)

	c.OpenNew()
	c.SetDraft(model.InventoryRecord{ToolName: "Oven"})

	refetch, err := c.Save(context.Background(), testProfile())
	require.Error(t, err)
	assert.False(t, refetch)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Merek", "Tipe", "No. Seri", "Ruangan", "Tanggal Pelaksanaan"}, vErr.Missing)

	// Dialog stays open with the input intact.
	assert.Equal(t, EditingNew, c.Mode())
	assert.Equal(t, "Oven", c.Draft().ToolName)
	assert.Empty(t, saver.created)
}

func TestCalibrationValidationDisabled(t *testing.T) {
	t.Parallel()

	saver := &fakeSaver[model.CalibrationRecord]{}
	c := NewController(CalibrationVariant(), saver)

	c.OpenNew()
	c.SetDraft(model.CalibrationRecord{ToolName: "Mikropipet"})

	refetch, err := c.Save(context.Background(), testProfile())
	require.NoError(t, err)
	assert.True(t, refetch)
	require.Len(t, saver.created, 1)
}

func TestSaveFailureKeepsDialogOpen(t *testing.T) {
	t.Parallel()

	saver := &fakeSaver[model.CalibrationRecord]{createErr: errors.New("db write failed")}
	c := NewController(CalibrationVariant(), saver)

	c.OpenNew()
	c.SetDraft(model.CalibrationRecord{ToolName: "Oven"})

	refetch, err := c.Save(context.Background(), testProfile())
	require.Error(t, err)
	assert.ErrorContains(t, err, "db write failed")
	assert.False(t, refetch)
	assert.Equal(t, EditingNew, c.Mode())
	assert.Equal(t, "Oven", c.Draft().ToolName)
}

func TestEditExistingReplacesSameDocument(t *testing.T) {
	t.Parallel()

	profile := testProfile()
	saver := &fakeSaver[model.CalibrationRecord]{}
	c := NewController(CalibrationVariant(), saver)

	existing := model.CalibrationRecord{
		ID:       "abc123",
		ToolName: "Oven",
		RoomName: "Lab Kimia",
	}
	c.OpenEdit(existing)

	// Field edits keep the identifier even if the input omits it.
	edited := existing
	edited.ID = ""
	edited.ToolName = "Oven Vakum"
	c.SetDraft(edited)

	refetch, err := c.Save(context.Background(), profile)
	require.NoError(t, err)
	assert.True(t, refetch)

	require.Len(t, saver.replaced, 1)
	assert.Equal(t, "abc123", saver.replaced[0].ID)
	assert.Equal(t, "Oven Vakum", saver.replaced[0].ToolName)
	assert.Empty(t, saver.created)
}

func TestCancelTouchesNothing(t *testing.T) {
	t.Parallel()

	saver := &fakeSaver[model.InventoryRecord]{}
	c := NewController(InventoryVariant(), saver)

	c.OpenEdit(model.InventoryRecord{ID: "x", ToolName: "Oven"})
	c.Cancel()

	assert.Equal(t, Closed, c.Mode())
	assert.Empty(t, saver.created)
	assert.Empty(t, saver.replaced)

	_, err := c.Save(context.Background(), testProfile())
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestClearedQuantitySurvivesSave(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	saver := &fakeSaver[model.InventoryRecord]{}
	c := NewController(InventoryVariant(), saver)

	c.OpenNew()
	c.SetDraft(model.InventoryRecord{
		ToolName:           "Oven",
		BrandName:          "Memmert",
		TypeName:           "UN55",
		SerialNumber:       "SN-9",
		RoomName:           "Lab Fisika",
		Jumlah:             model.EmptyQuantity(),
		ImplementationDate: &date,
	})

	_, err := c.Save(context.Background(), testProfile())
	require.NoError(t, err)

	require.Len(t, saver.created, 1)
	assert.True(t, saver.created[0].Jumlah.IsEmpty())
}
