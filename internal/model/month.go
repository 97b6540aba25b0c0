package model

import (
	"errors"
	"fmt"
	"time"
)

// Month identifies a calendar month. Records are always fetched one month at
// a time, bounded by [Start, End] inclusive.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses the "YYYY-MM" form used by the HTTP API.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, errors.Join(ErrInvalidArgument, fmt.Errorf("month %q: want YYYY-MM", s))
	}
	return MonthOf(t), nil
}

func (m Month) Validate() error {
	if m.Year < 1 || m.Month < time.January || m.Month > time.December {
		return errors.Join(ErrInvalidArgument, fmt.Errorf("invalid month %d-%d", m.Year, int(m.Month)))
	}
	return nil
}

// Bounds returns the inclusive range covering the whole month in UTC.
// End is the last representable instant before the next month starts.
func (m Month) Bounds() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func (m Month) Contains(t time.Time) bool {
	start, end := m.Bounds()
	t = t.UTC()
	return !t.Before(start) && !t.After(end)
}

func (m Month) Prev() Month {
	start, _ := m.Bounds()
	return MonthOf(start.AddDate(0, -1, 0))
}

func (m Month) Next() Month {
	start, _ := m.Bounds()
	return MonthOf(start.AddDate(0, 1, 0))
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FileSuffix is the "YYYY_MM" fragment embedded in export filenames.
func (m Month) FileSuffix() string {
	return fmt.Sprintf("%04d_%02d", m.Year, int(m.Month))
}
