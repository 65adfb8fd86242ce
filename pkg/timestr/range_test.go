package timestr

import (
	"testing"

	"github.com/codeGROOVE-dev/whenTZ/pkg/aliases"
)

func TestSplitRange(t *testing.T) {
	table := aliases.Default()

	tests := []struct {
		name      string
		input     string
		wantRange bool
		wantStart string
		wantEnd   string
		wantZone  string
	}{
		{
			name:      "to with zone",
			input:     "9:00 AM to 11:30 AM Pacific",
			wantRange: true,
			wantStart: "9:00 AM",
			wantEnd:   "11:30 AM",
			wantZone:  "America/Los_Angeles",
		},
		{
			name:      "end inherits meridiem",
			input:     "9:00 AM to 11:30",
			wantRange: true,
			wantStart: "9:00 AM",
			wantEnd:   "11:30 AM",
		},
		{
			name:      "start inherits meridiem from end",
			input:     "9 to 11 PM",
			wantRange: true,
			wantStart: "9 PM",
			wantEnd:   "11 PM",
		},
		{
			name:      "until connector",
			input:     "9:00 until 17:00",
			wantRange: true,
			wantStart: "9:00",
			wantEnd:   "17:00",
		},
		{
			name:      "till connector case insensitive",
			input:     "9:00 TILL 17:00",
			wantRange: true,
			wantStart: "9:00",
			wantEnd:   "17:00",
		},
		{
			name:      "spaced hyphen",
			input:     "9:00 - 10:00",
			wantRange: true,
			wantStart: "9:00",
			wantEnd:   "10:00",
		},
		{
			name:      "bare en dash",
			input:     "9:00–10:00",
			wantRange: true,
			wantStart: "9:00",
			wantEnd:   "10:00",
		},
		{
			name:      "bare hyphen",
			input:     "9-10",
			wantRange: true,
			wantStart: "9",
			wantEnd:   "10",
		},
		{
			name:      "single time",
			input:     "3:00 PM",
			wantStart: "3:00 PM",
		},
		{
			name:      "single time with zone",
			input:     "3:00 PM EST",
			wantStart: "3:00 PM",
			wantZone:  "America/New_York",
		},
		{
			name:      "iso date not split on hyphens",
			input:     "2024-01-15",
			wantStart: "2024-01-15",
		},
		{
			name:      "trailing dash is not a range",
			input:     "9:00 -",
			wantStart: "9:00 -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRange(tt.input, table)
			if got.IsRange != tt.wantRange {
				t.Fatalf("SplitRange(%q).IsRange = %v, want %v", tt.input, got.IsRange, tt.wantRange)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd || got.Zone != tt.wantZone {
				t.Errorf("SplitRange(%q) = {Start:%q End:%q Zone:%q}, want {Start:%q End:%q Zone:%q}",
					tt.input, got.Start, got.End, got.Zone, tt.wantStart, tt.wantEnd, tt.wantZone)
			}
		})
	}
}
