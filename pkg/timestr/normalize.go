// Package timestr turns free-form time text into parsed civil times: it
// normalizes shorthand meridiem markers, detects start/end ranges, and
// matches an ordered list of clock formats with an ISO-8601 fallback.
package timestr

import "regexp"

// Shorthand meridiem after a digit: "8:00A", "8 p", "8a". The word boundary
// keeps longer tokens like "April" or "Pacific" untouched.
var (
	shorthandAM = regexp.MustCompile(`(?i)(\d)\s*a\b`)
	shorthandPM = regexp.MustCompile(`(?i)(\d)\s*p\b`)
)

// Normalize expands "A"/"P" meridiem shorthand into " AM"/" PM". Pure and
// total; text without shorthand passes through unchanged.
func Normalize(raw string) string {
	s := shorthandAM.ReplaceAllString(raw, "$1 AM")
	return shorthandPM.ReplaceAllString(s, "$1 PM")
}
