package timestr

import (
	"regexp"
	"strings"

	"github.com/codeGROOVE-dev/whenTZ/pkg/aliases"
)

// Range is the outcome of range detection. When IsRange is false, Start
// holds the full timezone-stripped text and End is empty.
type Range struct {
	Start   string
	End     string
	Zone    string // canonical IANA id, "" when the text carried no zone token
	IsRange bool
}

// Connectors in priority order: worded connectors with mandatory surrounding
// whitespace before spaced dashes before bare dashes. The bare hyphen is a
// known false-positive risk for hyphenated tokens; splits that do not yield
// exactly two non-empty parts are rejected, which covers dates like
// "2024-01-15".
var connectorPatterns = func() []*regexp.Regexp {
	connectors := []string{" until ", " till ", " to ", " – ", " — ", " - ", "–", "—", "-"}
	res := make([]*regexp.Regexp, 0, len(connectors))
	for _, c := range connectors {
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(c)))
	}
	return res
}()

var meridiemSuffix = regexp.MustCompile(`(?i)(AM|PM|A|P)$`)

// SplitRange extracts a trailing timezone token, then tries each connector in
// priority order against the remaining text. The first connector producing
// exactly two non-empty parts wins. When exactly one half ends with a
// meridiem marker the other half inherits it, so "9:00 AM to 11:30" and
// "9 to 11 PM" both resolve cleanly.
func SplitRange(text string, table *aliases.Table) Range {
	remainder, zone, _ := table.Extract(text)

	for _, re := range connectorPatterns {
		parts := re.Split(remainder, -1)
		if len(parts) != 2 {
			continue
		}
		start := strings.TrimSpace(parts[0])
		end := strings.TrimSpace(parts[1])
		if start == "" || end == "" {
			continue
		}

		// Meridiem inheritance: "9:00 AM to 11:30" resolves the end as AM,
		// and "9 to 11 PM" resolves the start as PM.
		startMark := meridiemSuffix.FindString(start)
		endMark := meridiemSuffix.FindString(end)
		switch {
		case startMark != "" && endMark == "":
			end += " " + startMark
		case endMark != "" && startMark == "":
			start += " " + endMark
		}
		return Range{IsRange: true, Start: start, End: end, Zone: zone}
	}

	return Range{Start: remainder, Zone: zone}
}
