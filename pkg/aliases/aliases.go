// Package aliases maps human timezone tokens ("EST", "Pacific Time") to
// canonical IANA identifiers and strips them off the tail of time strings.
package aliases

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/tkuchiki/go-timezone"
)

// Entry pairs a textual token with a canonical IANA timezone identifier.
// Tokens match case-insensitively and may contain internal whitespace.
type Entry struct {
	Token     string
	Canonical string
}

// Curated tokens people actually type after a time. Declaration order is the
// tie-break when two tokens of equal length could both match, and TokenFor
// returns the first token declared for a zone, so order is part of the API.
var curatedEntries = []Entry{
	{"EST", "America/New_York"},
	{"EDT", "America/New_York"},
	{"ET", "America/New_York"},
	{"Eastern Time", "America/New_York"},
	{"Eastern", "America/New_York"},
	{"CST", "America/Chicago"},
	{"CDT", "America/Chicago"},
	{"CT", "America/Chicago"},
	{"Central Time", "America/Chicago"},
	{"Central", "America/Chicago"},
	{"MST", "America/Denver"},
	{"MDT", "America/Denver"},
	{"MT", "America/Denver"},
	{"Mountain Time", "America/Denver"},
	{"Mountain", "America/Denver"},
	{"PST", "America/Los_Angeles"},
	{"PDT", "America/Los_Angeles"},
	{"PT", "America/Los_Angeles"},
	{"Pacific Time", "America/Los_Angeles"},
	{"Pacific", "America/Los_Angeles"},
	{"AKST", "America/Anchorage"},
	{"AKDT", "America/Anchorage"},
	{"Alaska", "America/Anchorage"},
	{"HST", "Pacific/Honolulu"},
	{"Hawaii", "Pacific/Honolulu"},
	{"UTC", "UTC"},
	{"GMT", "UTC"},
	{"Zulu", "UTC"},
	{"BST", "Europe/London"},
	{"London", "Europe/London"},
	{"CET", "Europe/Paris"},
	{"CEST", "Europe/Paris"},
	{"Paris", "Europe/Paris"},
	{"Berlin", "Europe/Berlin"},
	{"IST", "Asia/Kolkata"},
	{"India", "Asia/Kolkata"},
	{"JST", "Asia/Tokyo"},
	{"Tokyo", "Asia/Tokyo"},
	{"SGT", "Asia/Singapore"},
	{"Singapore", "Asia/Singapore"},
	{"HKT", "Asia/Hong_Kong"},
	{"AEST", "Australia/Sydney"},
	{"AEDT", "Australia/Sydney"},
	{"Sydney", "Australia/Sydney"},
	{"NZST", "Pacific/Auckland"},
	{"NZDT", "Pacific/Auckland"},
	{"Auckland", "Pacific/Auckland"},
}

// Table is an ordered alias table with precompiled suffix matchers.
// Matching is longest-token-first so "Pacific Time" beats "Pacific".
type Table struct {
	entries  []Entry
	matchers []suffixMatcher
}

type suffixMatcher struct {
	re    *regexp.Regexp
	entry Entry
}

// NewTable builds a table from the given entries, preserving their order for
// tie-breaks and reverse lookups.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: append([]Entry(nil), entries...)}

	matchers := make([]suffixMatcher, 0, len(t.entries))
	for _, e := range t.entries {
		matchers = append(matchers, suffixMatcher{re: suffixPattern(e.Token), entry: e})
	}
	// Longest token first; SliceStable keeps declaration order for equal lengths.
	sort.SliceStable(matchers, func(i, j int) bool {
		return len(matchers[i].entry.Token) > len(matchers[j].entry.Token)
	})
	t.matchers = matchers
	return t
}

// suffixPattern compiles a case-insensitive end-of-string matcher for a token.
// The token must be preceded by whitespace, and internal whitespace in
// multi-word tokens matches one-or-more whitespace characters in the input.
func suffixPattern(token string) *regexp.Regexp {
	words := strings.Fields(token)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\s+` + strings.Join(words, `\s+`) + `$`)
}

var defaultTable = sync.OnceValue(func() *Table {
	return NewTable(append(append([]Entry(nil), curatedEntries...), abbreviationEntries()...))
})

// Default returns the shared alias table: the curated entries extended with
// unambiguous abbreviations from the go-timezone database.
func Default() *Table {
	return defaultTable()
}

// Candidate abbreviations beyond the curated set, resolved against the
// go-timezone catalog at startup. Two-letter forms are deliberately absent:
// they collide with meridiem markers and curated tokens.
var extraAbbreviations = []string{
	"WET", "WEST", "EET", "EEST", "MSK",
	"WAT", "CAT", "EAT", "SAST",
	"PKT", "ICT", "WIB", "WITA", "KST", "MYT", "PHT",
	"ACST", "ACDT", "AWST",
	"BRT", "ART", "CLT", "COT", "PET", "VET",
	"NST", "NDT", "AST", "ADT",
}

// abbreviationEntries resolves the candidate abbreviations through the
// go-timezone catalog. Only abbreviations naming exactly one IANA zone are
// kept, so extraction stays deterministic, and curated tokens always win.
func abbreviationEntries() []Entry {
	curated := make(map[string]bool, len(curatedEntries))
	for _, e := range curatedEntries {
		curated[strings.ToUpper(e.Token)] = true
	}

	tz := timezone.New()
	entries := make([]Entry, 0, len(extraAbbreviations))
	for _, abbr := range extraAbbreviations {
		if curated[abbr] {
			continue
		}
		zones, err := tz.GetTimezones(abbr)
		if err != nil || len(zones) != 1 {
			continue
		}
		entries = append(entries, Entry{Token: abbr, Canonical: zones[0]})
	}
	return entries
}

// Extract strips a recognized timezone token off the end of text. It returns
// the remaining text (trimmed), the token's canonical IANA identifier, and
// whether a token matched. Without a match the trimmed input comes back
// unchanged.
func (t *Table) Extract(text string) (remainder, canonical string, ok bool) {
	trimmed := strings.TrimSpace(text)
	for _, m := range t.matchers {
		if loc := m.re.FindStringIndex(trimmed); loc != nil {
			return strings.TrimSpace(trimmed[:loc[0]]), m.entry.Canonical, true
		}
	}
	return trimmed, "", false
}

// TokenFor returns the first declared token for a canonical zone identifier.
// Used to reattach an extracted zone to the halves of a time range.
func (t *Table) TokenFor(canonical string) (string, bool) {
	for _, e := range t.entries {
		if e.Canonical == canonical {
			return e.Token, true
		}
	}
	return "", false
}

// Entries returns a copy of the table's entries in declaration order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}
