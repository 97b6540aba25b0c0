package model

import (
	"fmt"
	"time"
)

// Indonesian month names, as the app has always displayed dates
// ("DD MMMM YYYY" with the id locale).
var indonesianMonths = [...]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// DisplayDate renders an implementation date the way list rows and exports
// show it, e.g. "02 Januari 2024". A missing date renders as "". The filter
// matches against this string, not the raw timestamp.
func DisplayDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), indonesianMonths[t.Month()], t.Year())
}

// DisplayMonth renders a month selector value, e.g. "Mei 2024".
func DisplayMonth(m Month) string {
	return fmt.Sprintf("%s %d", indonesianMonths[m.Month], m.Year)
}
