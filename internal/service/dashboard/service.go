// Package service aggregates one month of calibration records for the
// dashboard: totals, the room list, and the shareable summary text.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/candrasdkd/easywork/internal/model"
	"github.com/candrasdkd/easywork/internal/platform/logger"
)

type CalibrationLister interface {
	ListMonth(ctx context.Context, who model.Identity, month model.Month, order model.SortOrder) ([]model.CalibrationRecord, error)
}

// Summary is the aggregated month view.
type Summary struct {
	Month model.Month `json:"month"`
	// Room filter applied, empty for all rooms.
	Room       string   `json:"room,omitempty"`
	TotalItems int      `json:"total_items"`
	TotalRooms int      `json:"total_rooms"`
	Rooms      []string `json:"rooms"`
	// Shareable text block.
	SummaryText string `json:"summary_text"`
}

type service struct {
	calibrations CalibrationLister
}

func NewDashboardService(calibrations CalibrationLister) *service {
	return &service{calibrations: calibrations}
}

// MonthSummary walks the month chronologically and aggregates it, optionally
// narrowed to one room.
func (s *service) MonthSummary(ctx context.Context, who model.Identity, month model.Month, room string) (*Summary, error) {
	const op = "dashboard.service.MonthSummary"
	log := logger.With(
		logger.String("month", month.String()),
		logger.String("uid", who.UID),
	)

	items, err := s.calibrations.ListMonth(ctx, who, month, model.SortAsc)
	if err != nil {
		log.Error(ctx, "list calibrations", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	room = strings.TrimSpace(room)
	allRooms := uniqueSortedRooms(items)

	filtered := items
	if room != "" {
		filtered = lo.Filter(items, func(r model.CalibrationRecord, _ int) bool {
			return r.RoomName == room
		})
	}

	out := &Summary{
		Month:      month,
		Room:       room,
		TotalItems: len(filtered),
		TotalRooms: len(uniqueSortedRooms(filtered)),
		Rooms:      allRooms,
	}
	out.SummaryText = summaryText(out)

	return out, nil
}

func uniqueSortedRooms(items []model.CalibrationRecord) []string {
	rooms := lo.FilterMap(items, func(r model.CalibrationRecord, _ int) (string, bool) {
		return r.RoomName, r.RoomName != ""
	})
	rooms = lo.Uniq(rooms)
	sort.Strings(rooms)
	return rooms
}

func summaryText(s *Summary) string {
	var b strings.Builder
	b.WriteString("🧪 *LAPORAN KALIBRASI PERALATAN*\n\n")
	fmt.Fprintf(&b, "🗓 Periode: *%s*\n", model.DisplayMonth(s.Month))
	if s.Room != "" {
		fmt.Fprintf(&b, "🏢 Ruangan: *%s*\n", s.Room)
	}
	b.WriteString("\n📌 *DATA UTAMA*\n")
	fmt.Fprintf(&b, "▫️ Total Inputan: *%d*\n", s.TotalItems)
	fmt.Fprintf(&b, "▫️ Total Ruangan: *%d*\n", s.TotalRooms)
	return b.String()
}
