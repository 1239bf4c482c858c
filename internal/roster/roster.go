// Package roster resolves the flat's cleaning roster against the current
// date.
//
// The roster is a CSV of weekly rows ("Jan 03 - 04,member3,member4").
// Only the first date of each label matters; it is read against the
// current year with a correction at the year boundary, and rows within a
// short window around today are reported.
package roster

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

//go:embed roster.csv
var defaultCSV string

const (
	lookBehindDays = 2
	lookAheadDays  = 30
	maxEntries     = 3

	noSchedule = "No upcoming schedule found."
)

var header = []string{"Date Range", "Kitchen", "WC + Floor"}

var months = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

type Row struct {
	Label   string
	Kitchen string
	WC      string
}

// Entry is a row resolved against a specific day.
type Entry struct {
	Row
	Date  time.Time
	Delta int // days from today; negative is in the past
}

// Parse reads a roster CSV with the standard header.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading roster csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading roster csv: empty file")
	}
	for i, h := range header {
		if i >= len(records[0]) || strings.TrimSpace(records[0][i]) != h {
			return nil, fmt.Errorf("reading roster csv: header must be %q", strings.Join(header, ","))
		}
	}
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			Label:   strings.TrimSpace(rec[0]),
			Kitchen: strings.TrimSpace(rec[1]),
			WC:      strings.TrimSpace(rec[2]),
		})
	}
	return rows, nil
}

// LoadFile reads a roster CSV from disk.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded roster.
func Default() []Row {
	rows, err := Parse(strings.NewReader(defaultCSV))
	if err != nil {
		panic(err) // embedded data is fixed at build time
	}
	return rows
}

// ParseDate resolves the first date of a label like "Jan 31 - Feb 01"
// against now's year. A January row seen in December belongs to next
// year; a December row seen in January belongs to last year.
func ParseDate(label string, now time.Time) (time.Time, bool) {
	first, _, _ := strings.Cut(label, " - ")
	fields := strings.Fields(first)
	if len(fields) != 2 {
		return time.Time{}, false
	}
	month, ok := months[fields[0]]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}

	year := now.Year()
	switch {
	case now.Month() == time.December && month == time.January:
		year++
	case now.Month() == time.January && month == time.December:
		year--
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false // e.g. Feb 29 outside a leap year
	}
	return d, true
}

// daysBetween counts calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

type Resolver struct {
	rows  []Row
	names map[string]string
	now   func() time.Time
}

// New builds a resolver. names maps assignee ids to display names; now
// defaults to time.Now.
func New(rows []Row, names map[string]string, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{rows: rows, names: names, now: now}
}

// Upcoming returns up to three entries dated between two days ago and
// thirty days ahead, nearest first. Rows with unparseable dates are
// skipped.
func (r *Resolver) Upcoming(now time.Time) []Entry {
	var out []Entry
	for _, row := range r.rows {
		d, ok := ParseDate(row.Label, now)
		if !ok {
			continue
		}
		delta := daysBetween(now, d)
		if delta < -lookBehindDays || delta > lookAheadDays {
			continue
		}
		out = append(out, Entry{Row: row, Date: d, Delta: delta})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Delta < out[j].Delta })
	if len(out) > maxEntries {
		out = out[:maxEntries]
	}
	return out
}

func (r *Resolver) Format(entries []Entry) string {
	if len(entries) == 0 {
		return noSchedule
	}
	var b strings.Builder
	b.WriteString("📋 **Cleaning Schedule:**\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n🗓 **%s**\n   🍳 Kitchen: %s\n   🚽 WC: %s\n",
			e.Label, r.displayName(e.Kitchen), r.displayName(e.WC))
	}
	return b.String()
}

// CheckAt formats the schedule as seen on now.
func (r *Resolver) CheckAt(now time.Time) string {
	return r.Format(r.Upcoming(now))
}

// Check formats the schedule as of the resolver's clock.
func (r *Resolver) Check() string {
	return r.CheckAt(r.now())
}

func (r *Resolver) displayName(id string) string {
	if name, ok := r.names[id]; ok && name != "" {
		return name
	}
	return id
}
