package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CalibrationRecord is one calibration entry. All descriptive fields are kept
// as entered (post-trim); the implementation date is optional.
type CalibrationRecord struct {
	// Document identifier, assigned by the store at creation.
	ID string `json:"id"`
	// Identifier of the owning user.
	UserID string `json:"user_id"`
	// Tool name ("Nama Alat").
	ToolName string `json:"tool_name"`
	// Brand ("Merek").
	BrandName string `json:"brand_name"`
	// Type designation ("Tipe").
	TypeName string `json:"type_name"`
	// Serial number ("No. Seri").
	SerialNumber string `json:"serial_number"`
	// Room ("Ruangan").
	RoomName string `json:"room_name"`
	// Measuring capacity ("Kapasitas").
	Capacity string `json:"capacity"`
	// Accuracy level ("Tingkat Ketelitian").
	LevelOfAccuracy string `json:"level_of_accuracy"`
	// Calibration label number ("No. Label").
	LabelNumber string `json:"label_number"`
	// Person responsible ("Penanggung Jawab"), always taken from the acting
	// user's profile at save time.
	PersonResponsible string `json:"person_responsible"`
	// Free-text note ("Catatan").
	Catatan string `json:"catatan"`
	// Date the calibration was carried out; nil when not set.
	ImplementationDate *time.Time `json:"implementation_date"`
}

// Normalized trims every string field and stamps ownership and the
// responsible person. The typed person_responsible value is always replaced
// by the profile-derived name.
func (r CalibrationRecord) Normalized(userID, picName string) CalibrationRecord {
	out := r
	out.UserID = userID
	out.ToolName = strings.TrimSpace(r.ToolName)
	out.BrandName = strings.TrimSpace(r.BrandName)
	out.TypeName = strings.TrimSpace(r.TypeName)
	out.SerialNumber = strings.TrimSpace(r.SerialNumber)
	out.RoomName = strings.TrimSpace(r.RoomName)
	out.Capacity = strings.TrimSpace(r.Capacity)
	out.LevelOfAccuracy = strings.TrimSpace(r.LevelOfAccuracy)
	out.LabelNumber = strings.TrimSpace(r.LabelNumber)
	out.PersonResponsible = strings.TrimSpace(picName)
	out.Catatan = strings.TrimSpace(r.Catatan)
	return out
}

// SearchFields lists every displayed value of the row. The implementation
// date contributes its localized display string, so searching "januari"
// matches rows shown with that month name.
func (r CalibrationRecord) SearchFields() []string {
	return []string{
		r.LabelNumber,
		r.ToolName,
		r.BrandName,
		r.TypeName,
		r.SerialNumber,
		r.RoomName,
		r.Capacity,
		r.LevelOfAccuracy,
		DisplayDate(r.ImplementationDate),
		r.PersonResponsible,
		r.Catatan,
	}
}

// InventoryRecord is one inventory entry. Shares the descriptive fields of a
// calibration entry, plus unit, quantity and three independent condition
// flags (good / light damage / heavy damage).
type InventoryRecord struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	ToolName           string     `json:"tool_name"`
	BrandName          string     `json:"brand_name"`
	TypeName           string     `json:"type_name"`
	SerialNumber       string     `json:"serial_number"`
	RoomName           string     `json:"room_name"`
	PersonResponsible  string     `json:"person_responsible"`
	Catatan            string     `json:"catatan"`
	ImplementationDate *time.Time `json:"implementation_date"`
	// Unit of measure ("Satuan").
	Satuan string `json:"satuan"`
	// Quantity ("Jumlah"); may be empty, defaults to 1 on a fresh form.
	Jumlah Quantity `json:"jumlah"`
	// Condition flags. Independent, not mutually exclusive.
	KondisiBaik bool `json:"kondisi_baik"`
	KondisiRR   bool `json:"kondisi_rr"`
	KondisiRB   bool `json:"kondisi_rb"`
}

func (r InventoryRecord) Normalized(userID, picName string) InventoryRecord {
	out := r
	out.UserID = userID
	out.ToolName = strings.TrimSpace(r.ToolName)
	out.BrandName = strings.TrimSpace(r.BrandName)
	out.TypeName = strings.TrimSpace(r.TypeName)
	out.SerialNumber = strings.TrimSpace(r.SerialNumber)
	out.RoomName = strings.TrimSpace(r.RoomName)
	out.PersonResponsible = strings.TrimSpace(picName)
	out.Catatan = strings.TrimSpace(r.Catatan)
	out.Satuan = strings.TrimSpace(r.Satuan)
	return out
}

func (r InventoryRecord) SearchFields() []string {
	return []string{
		r.ToolName,
		r.BrandName,
		r.TypeName,
		r.SerialNumber,
		r.RoomName,
		r.Satuan,
		r.Jumlah.String(),
		DisplayDate(r.ImplementationDate),
		r.PersonResponsible,
		r.Catatan,
	}
}

// SortOrder selects the single-field ordering of a month fetch.
type SortOrder int

const (
	// SortDesc shows the newest entries first (list pages).
	SortDesc SortOrder = iota
	// SortAsc walks the month chronologically (dashboard aggregation).
	SortAsc
)

// MonthQuery scopes a record fetch: one calendar month, restricted to the
// acting user's own records unless AllUsers is set by an administrator
// session.
type MonthQuery struct {
	Month    Month
	UserID   string
	AllUsers bool
	Order    SortOrder
}

func (q MonthQuery) Validate() error {
	if err := q.Month.Validate(); err != nil {
		return err
	}
	if !q.AllUsers && strings.TrimSpace(q.UserID) == "" {
		return errors.Join(ErrInvalidArgument, fmt.Errorf("user id must be non-empty without the all-users override"))
	}
	return nil
}
