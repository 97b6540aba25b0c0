package form

import (
	"strings"

	"github.com/candrasdkd/easywork/internal/model"
)

// Variant adapts the controller to one record type: validation policy, the
// normalization shared with the HTTP save path, and the sticky defaults a
// fresh draft inherits.
type Variant[T any] struct {
	// EnforceRequired gates Missing during Save. Inventory enforces;
	// calibration keeps the checks available but disabled.
	EnforceRequired bool

	Missing   func(rec T) []string
	Normalize func(rec T, userID, picName string) T
	Fresh     func(last T) T
	ID        func(rec T) string
	SetID     func(rec *T, id string)
}

// CalibrationVariant returns the calibration dialog policy.
func CalibrationVariant() Variant[model.CalibrationRecord] {
	return Variant[model.CalibrationRecord]{
		EnforceRequired: false,
		Missing:         missingCalibration,
		Normalize: func(rec model.CalibrationRecord, userID, picName string) model.CalibrationRecord {
			return rec.Normalized(userID, picName)
		},
		Fresh: func(last model.CalibrationRecord) model.CalibrationRecord {
			return model.CalibrationRecord{RoomName: last.RoomName}
		},
		ID:    func(rec model.CalibrationRecord) string { return rec.ID },
		SetID: func(rec *model.CalibrationRecord, id string) { rec.ID = id },
	}
}

// InventoryVariant returns the inventory dialog policy.
func InventoryVariant() Variant[model.InventoryRecord] {
	return Variant[model.InventoryRecord]{
		EnforceRequired: true,
		Missing:         missingInventory,
		Normalize: func(rec model.InventoryRecord, userID, picName string) model.InventoryRecord {
			return rec.Normalized(userID, picName)
		},
		Fresh: func(last model.InventoryRecord) model.InventoryRecord {
			return model.InventoryRecord{
				RoomName: last.RoomName,
				Satuan:   last.Satuan,
				Jumlah:   model.DefaultQuantity(),
			}
		},
		ID:    func(rec model.InventoryRecord) string { return rec.ID },
		SetID: func(rec *model.InventoryRecord, id string) { rec.ID = id },
	}
}

func missingCalibration(rec model.CalibrationRecord) []string {
	var missing []string
	appendBlank(&missing, rec.ToolName, "Nama Alat")
	appendBlank(&missing, rec.BrandName, "Merek")
	appendBlank(&missing, rec.TypeName, "Tipe")
	appendBlank(&missing, rec.SerialNumber, "No. Seri")
	appendBlank(&missing, rec.RoomName, "Ruangan")
	if rec.ImplementationDate == nil {
		missing = append(missing, "Tanggal Pelaksanaan")
	}
	return missing
}

func missingInventory(rec model.InventoryRecord) []string {
	var missing []string
	appendBlank(&missing, rec.ToolName, "Nama Alat")
	appendBlank(&missing, rec.BrandName, "Merek")
	appendBlank(&missing, rec.TypeName, "Tipe")
	appendBlank(&missing, rec.SerialNumber, "No. Seri")
	appendBlank(&missing, rec.RoomName, "Ruangan")
	if rec.ImplementationDate == nil {
		missing = append(missing, "Tanggal Pelaksanaan")
	}
	return missing
}

func appendBlank(missing *[]string, value, label string) {
	if strings.TrimSpace(value) == "" {
		*missing = append(*missing, label)
	}
}
