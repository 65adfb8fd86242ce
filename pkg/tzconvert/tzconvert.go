// Package tzconvert projects instants between IANA timezones and renders the
// display strings the conversion pipeline hands back to callers.
package tzconvert

import (
	"fmt"
	"time"
)

// Named display formats. Callers may also pass a raw Go layout to FormatTime.
var namedFormats = map[string]string{
	"12h":  "3:04 PM",
	"24h":  "15:04",
	"long": "3:04 PM MST",
	"full": "Monday, January 2, 2006 3:04 PM MST",
}

// Convert re-anchors t to fromZone and re-projects it into toZone. Both steps
// preserve the instant; the two-step shape normalizes values that were parsed
// in a different zone than their effective source. Unknown identifiers are
// errors, never garbage values.
func Convert(t time.Time, fromZone, toZone string) (time.Time, error) {
	from, err := time.LoadLocation(fromZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading source zone %q: %w", fromZone, err)
	}
	to, err := time.LoadLocation(toZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading target zone %q: %w", toZone, err)
	}
	return t.In(from).In(to), nil
}

// Format12 renders the 12-hour clock form, e.g. "3:04 PM".
func Format12(t time.Time) string {
	return t.Format("3:04 PM")
}

// Format24 renders the 24-hour clock form, e.g. "15:04".
func Format24(t time.Time) string {
	return t.Format("15:04")
}

// Abbreviation returns the zone abbreviation in effect at t, e.g. "EST" or
// "PDT". Computed per instant so it tracks DST for that specific date.
func Abbreviation(t time.Time) string {
	return t.Format("MST")
}

// FormatTime renders t using a named format ("12h", "24h", "long", "full")
// or, when the name is unknown, treats it as a Go layout string.
func FormatTime(t time.Time, format string) string {
	if layout, ok := namedFormats[format]; ok {
		return t.Format(layout)
	}
	return t.Format(format)
}

// DisplayName returns the abbreviation for a zone at the given instant, or
// the identifier itself when the zone cannot be loaded. Never fails.
func DisplayName(zone string, at time.Time) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return zone
	}
	return at.In(loc).Format("MST")
}

// OffsetHours reports the whole-hour UTC offset of a timezone at the given
// instant. Accepts both "UTC±N" strings and IANA identifiers; anything
// unrecognized reports 0.
func OffsetHours(zone string, at time.Time) int {
	if len(zone) >= 3 && zone[:3] == "UTC" {
		return parseUTCOffset(zone[3:])
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return 0
	}
	_, offset := at.In(loc).Zone()
	return offset / 3600
}

func parseUTCOffset(s string) int {
	if s == "" {
		return 0
	}
	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			break
		}
		n = n*10 + int(ch-'0')
	}
	return sign * n
}
