package aliases

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	table := Default()

	tests := []struct {
		name          string
		input         string
		wantRemainder string
		wantCanonical string
		wantOK        bool
	}{
		{"abbreviation", "3:00 PM EST", "3:00 PM", "America/New_York", true},
		{"full name beats prefix", "3:00 PM Pacific Time", "3:00 PM", "America/Los_Angeles", true},
		{"short name", "3:00 PM Pacific", "3:00 PM", "America/Los_Angeles", true},
		{"case insensitive", "3:00 pm pacific time", "3:00 pm", "America/Los_Angeles", true},
		{"multiple internal spaces", "3:00 PM Pacific   Time", "3:00 PM", "America/Los_Angeles", true},
		{"surrounding whitespace trimmed", "  15:00 UTC  ", "15:00", "UTC", true},
		{"no token", "3:00 PM", "3:00 PM", "", false},
		{"token needs leading whitespace", "EST", "EST", "", false},
		{"token mid-string ignored", "EST meeting", "EST meeting", "", false},
		{"range keeps token off the end only", "9:00 AM to 11:30 AM Pacific", "9:00 AM to 11:30 AM", "America/Los_Angeles", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remainder, canonical, ok := table.Extract(tt.input)
			if remainder != tt.wantRemainder || canonical != tt.wantCanonical || ok != tt.wantOK {
				t.Errorf("Extract(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, remainder, canonical, ok,
					tt.wantRemainder, tt.wantCanonical, tt.wantOK)
			}
		})
	}
}

func TestExtractLongestWins(t *testing.T) {
	// "Pacific" declared before "Pacific Time" must still lose to it.
	table := NewTable([]Entry{
		{"Pacific", "America/Los_Angeles"},
		{"Pacific Time", "America/Los_Angeles"},
		{"Time", "UTC"},
	})

	remainder, canonical, ok := table.Extract("3:00 PM Pacific Time")
	if !ok || canonical != "America/Los_Angeles" || remainder != "3:00 PM" {
		t.Errorf("Extract() = (%q, %q, %v), want full-token match", remainder, canonical, ok)
	}
}

func TestExtractEqualLengthDeclarationOrder(t *testing.T) {
	// Equal-length tokens tie-break by declaration order.
	table := NewTable([]Entry{
		{"XZT", "America/New_York"},
		{"XZT", "America/Chicago"},
	})

	_, canonical, ok := table.Extract("3:00 PM XZT")
	if !ok || canonical != "America/New_York" {
		t.Errorf("Extract() canonical = %q, want first-declared America/New_York", canonical)
	}
}

func TestTokenFor(t *testing.T) {
	table := Default()

	tests := []struct {
		canonical string
		wantToken string
	}{
		{"America/New_York", "EST"},
		{"America/Los_Angeles", "PST"},
		{"UTC", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.canonical, func(t *testing.T) {
			token, ok := table.TokenFor(tt.canonical)
			if !ok || token != tt.wantToken {
				t.Errorf("TokenFor(%q) = (%q, %v), want (%q, true)", tt.canonical, token, ok, tt.wantToken)
			}
		})
	}

	if _, ok := table.TokenFor("Not/AZone"); ok {
		t.Error("TokenFor(unknown) = ok, want false")
	}
}

func TestDefaultTableIsSane(t *testing.T) {
	entries := Default().Entries()
	if len(entries) < len(curatedEntries) {
		t.Fatalf("Default() has %d entries, want at least %d curated", len(entries), len(curatedEntries))
	}

	// Expanded abbreviations must not shadow meridiem markers.
	for _, e := range entries[len(curatedEntries):] {
		if len(e.Token) < 3 {
			t.Errorf("expanded token %q shorter than 3 characters", e.Token)
		}
		upper := strings.ToUpper(e.Token)
		if upper == "AM" || upper == "PM" {
			t.Errorf("expanded token %q collides with meridiem marker", e.Token)
		}
	}
}
