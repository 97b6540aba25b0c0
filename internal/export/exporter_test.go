package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/candrasdkd/easywork/internal/model"
)

func TestCalibrationWorkbook(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	rows := []model.CalibrationRecord{
		{
			LabelNumber:        "KAL-001",
			ToolName:           "Timbangan Analitik",
			BrandName:          "Mettler",
			TypeName:           "XS205",
			SerialNumber:       "SN-1",
			RoomName:           "Lab Kimia",
			Capacity:           "220 g",
			LevelOfAccuracy:    "0.1 mg",
			PersonResponsible:  "Candra",
			Catatan:            "OK",
			ImplementationDate: &date,
		},
		{
			ToolName: "Mikropipet",
		},
	}

	buf, err := Calibration(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	got, err := f.GetRows("Calibration Data")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{
		"No. Label", "Nama Alat", "Merek", "Tipe", "No. Seri", "Ruangan",
		"Kapasitas", "Tingkat Ketelitian", "Tanggal Pelaksanaan",
		"Penanggung Jawab", "Catatan",
	}, got[0])
	assert.Equal(t, []string{
		"KAL-001", "Timbangan Analitik", "Mettler", "XS205", "SN-1",
		"Lab Kimia", "220 g", "0.1 mg", "15 Mei 2024", "Candra", "OK",
	}, got[1])
	// A record without a date exports an empty date cell.
	assert.Equal(t, "Mikropipet", got[2][1])
}

func TestInventoryWorkbook(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	rows := []model.InventoryRecord{
		{
			ToolName:           "Oven",
			BrandName:          "Memmert",
			TypeName:           "UN55",
			SerialNumber:       "SN-9",
			RoomName:           "Lab Fisika",
			Satuan:             "Unit",
			Jumlah:             model.NewQuantity(3),
			KondisiBaik:        true,
			KondisiRB:          true,
			Catatan:            "rak atas",
			PersonResponsible:  "Candra",
			ImplementationDate: &date,
		},
		{
			ToolName: "Inkubator",
			Jumlah:   model.EmptyQuantity(),
		},
	}

	buf, err := Inventory(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	got, err := f.GetRows("Inventory Data")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{
		"Nama Alat", "Merek", "Tipe", "No. Seri", "Ruangan", "Satuan",
		"Jumlah", "Baik", "RR", "RB", "Catatan", "Tanggal Pelaksanaan",
		"Penanggung Jawab",
	}, got[0])
	assert.Equal(t, []string{
		"Oven", "Memmert", "UN55", "SN-9", "Lab Fisika", "Unit", "3",
		"✔", "", "✔", "rak atas", "02 Januari 2024", "Candra",
	}, got[1])

	// Missing unit and cleared quantity fall back to "Set" and 1 in the
	// export only.
	assert.Equal(t, "Set", got[2][5])
	assert.Equal(t, "1", got[2][6])
}

func TestEmptySetKeepsHeader(t *testing.T) {
	t.Parallel()

	buf, err := Inventory(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	got, err := f.GetRows("Inventory Data")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nama Alat", got[0][0])
}

func TestFilenames(t *testing.T) {
	t.Parallel()

	m := model.Month{Year: 2024, Month: time.May}
	assert.Equal(t, "Calibration_Data_2024_05.xlsx", CalibrationFilename(m))
	assert.Equal(t, "Inventory_Data_2024_05.xlsx", InventoryFilename(m))
}
