package tzconvert

import (
	"fmt"
	"time"
)

// ZoneInfo describes one selectable timezone for listing UIs.
type ZoneInfo struct {
	Value  string `json:"value"`  // IANA identifier
	Label  string `json:"label"`  // human-friendly name
	Offset string `json:"offset"` // "UTC-8" style, computed at the requested instant
}

var commonZones = []struct {
	value string
	label string
}{
	{"America/New_York", "New York (Eastern)"},
	{"America/Chicago", "Chicago (Central)"},
	{"America/Denver", "Denver (Mountain)"},
	{"America/Phoenix", "Phoenix (Arizona)"},
	{"America/Los_Angeles", "Los Angeles (Pacific)"},
	{"America/Anchorage", "Anchorage (Alaska)"},
	{"Pacific/Honolulu", "Honolulu (Hawaii)"},
	{"America/Toronto", "Toronto"},
	{"America/Mexico_City", "Mexico City"},
	{"America/Sao_Paulo", "São Paulo"},
	{"UTC", "UTC"},
	{"Europe/London", "London"},
	{"Europe/Paris", "Paris"},
	{"Europe/Berlin", "Berlin"},
	{"Europe/Moscow", "Moscow"},
	{"Asia/Dubai", "Dubai"},
	{"Asia/Kolkata", "India"},
	{"Asia/Singapore", "Singapore"},
	{"Asia/Hong_Kong", "Hong Kong"},
	{"Asia/Shanghai", "Shanghai"},
	{"Asia/Tokyo", "Tokyo"},
	{"Asia/Seoul", "Seoul"},
	{"Australia/Sydney", "Sydney"},
	{"Pacific/Auckland", "Auckland"},
}

// CommonZones lists the frequently used timezones with their offsets at the
// given instant, in a fixed display order.
func CommonZones(at time.Time) []ZoneInfo {
	zones := make([]ZoneInfo, 0, len(commonZones))
	for _, z := range commonZones {
		offset := OffsetHours(z.value, at)
		zones = append(zones, ZoneInfo{Value: z.value, Label: z.label, Offset: fmt.Sprintf("UTC%+d", offset)})
	}
	return zones
}
