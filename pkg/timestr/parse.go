package timestr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/whenTZ/pkg/aliases"
)

// ErrUnparseable reports that no candidate format matched the input.
var ErrUnparseable = errors.New("unparseable time string")

// Clock-only layouts in priority order. The 12-hour forms come before the
// bare 24-hour form so "3:00 PM" is never half-consumed as 24-hour input.
// Go's "3" and "15" verbs both accept one- or two-digit hours, which covers
// the zero-padded variants as well.
var clockLayouts = []string{
	"3:04 PM", // 3:00 PM, 03:00 PM
	"3:04PM",  // 3:00PM
	"3 PM",    // 3 PM
	"3PM",     // 3pm
	"15:04",   // 15:00
	"3:04:05 PM",
	"15:04:05",
}

// Calendar-bearing fallbacks tried when no clock layout matches. RFC 3339
// carries its own offset; the rest are anchored to the effective zone.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse turns a time string into an absolute time. It strips a trailing
// timezone token, normalizes meridiem shorthand, and tries the candidate
// layouts in order. Clock-only matches take their date from now projected
// into the effective zone. The detected canonical zone is returned alongside
// the time ("" when the text carried none).
func Parse(text, defaultZone string, table *aliases.Table, now time.Time) (time.Time, string, error) {
	remainder, detected, _ := table.Extract(text)
	normalized := Normalize(remainder)

	zone := detected
	if zone == "" {
		zone = defaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("loading zone %q: %w", zone, err)
	}

	// Meridiem layouts want "PM", not "pm". Uppercasing is safe here since
	// every candidate layout is numeric apart from the markers.
	candidate := strings.ToUpper(strings.TrimSpace(normalized))

	for _, layout := range clockLayouts {
		clock, err := time.Parse(layout, candidate)
		if err != nil {
			continue
		}
		ref := now.In(loc)
		t := time.Date(ref.Year(), ref.Month(), ref.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, loc)
		return t, detected, nil
	}

	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, candidate, loc)
		if err != nil {
			continue
		}
		return t, detected, nil
	}

	return time.Time{}, "", ErrUnparseable
}
