// Package export writes a filtered month of records to an xlsx workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/candrasdkd/easywork/internal/model"
)

const (
	calibrationSheet = "Calibration Data"
	inventorySheet   = "Inventory Data"

	checked   = "✔"
	unchecked = ""

	// Fallbacks applied at export time only; the stored record is untouched.
	defaultSatuan = "Set"
	defaultJumlah = int64(1)
)

var calibrationHeader = []string{
	"No. Label", "Nama Alat", "Merek", "Tipe", "No. Seri", "Ruangan",
	"Kapasitas", "Tingkat Ketelitian", "Tanggal Pelaksanaan",
	"Penanggung Jawab", "Catatan",
}

var inventoryHeader = []string{
	"Nama Alat", "Merek", "Tipe", "No. Seri", "Ruangan", "Satuan", "Jumlah",
	"Baik", "RR", "RB", "Catatan", "Tanggal Pelaksanaan", "Penanggung Jawab",
}

// Column width hints carried over from the spreadsheet layout both variants
// use; columns past the list keep the default width.
var columnWidths = []float64{30, 18, 18, 20, 20, 16, 18, 20, 26, 16, 30}

// CalibrationFilename is the download name for a month of calibration data,
// e.g. Calibration_Data_2024_05.xlsx.
func CalibrationFilename(m model.Month) string {
	return fmt.Sprintf("Calibration_Data_%s.xlsx", m.FileSuffix())
}

// InventoryFilename is the download name for a month of inventory data.
func InventoryFilename(m model.Month) string {
	return fmt.Sprintf("Inventory_Data_%s.xlsx", m.FileSuffix())
}

// Calibration renders the rows to a single-sheet workbook. An empty set still
// yields a valid workbook holding only the header row.
func Calibration(rows []model.CalibrationRecord) (*bytes.Buffer, error) {
	const op = "export.Calibration"

	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.LabelNumber,
			r.ToolName,
			r.BrandName,
			r.TypeName,
			r.SerialNumber,
			r.RoomName,
			r.Capacity,
			r.LevelOfAccuracy,
			model.DisplayDate(r.ImplementationDate),
			r.PersonResponsible,
			r.Catatan,
		})
	}

	buf, err := write(calibrationSheet, calibrationHeader, cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf, nil
}

// Inventory renders the rows to a single-sheet workbook. A missing unit
// exports as "Set" and a cleared quantity as 1; the condition flags render as
// a check mark or an empty cell.
func Inventory(rows []model.InventoryRecord) (*bytes.Buffer, error) {
	const op = "export.Inventory"

	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.ToolName,
			r.BrandName,
			r.TypeName,
			r.SerialNumber,
			r.RoomName,
			exportSatuan(r.Satuan),
			exportJumlah(r.Jumlah),
			checkmark(r.KondisiBaik),
			checkmark(r.KondisiRR),
			checkmark(r.KondisiRB),
			r.Catatan,
			model.DisplayDate(r.ImplementationDate),
			r.PersonResponsible,
		})
	}

	buf, err := write(inventorySheet, inventoryHeader, cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf, nil
}

func write(sheet string, header []string, rows [][]any) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	for i, width := range columnWidths {
		if i >= len(header) {
			break
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func checkmark(b bool) string {
	if b {
		return checked
	}
	return unchecked
}

func exportSatuan(s string) string {
	if s == "" {
		return defaultSatuan
	}
	return s
}

func exportJumlah(q model.Quantity) int64 {
	if v, ok := q.Value(); ok && v != 0 {
		return v
	}
	return defaultJumlah
}
