package whentz

// Result is the discriminated outcome of a conversion. On failure only Error
// is set. On success exactly one of the two field sets is populated, selected
// by IsRange; callers must dispatch on IsRange before reading the
// format-specific fields.
type Result struct {
	Success bool   `json:"success"`
	IsRange bool   `json:"isRange,omitempty"`
	Error   string `json:"error,omitempty"`

	// Single-time fields.
	ConvertedTime12   string `json:"convertedTime12,omitempty"`
	ConvertedTime24   string `json:"convertedTime24,omitempty"`
	FormattedOutput12 string `json:"formattedOutput12,omitempty"`
	FormattedOutput24 string `json:"formattedOutput24,omitempty"`

	// Range fields.
	StartTime12   string `json:"startTime12,omitempty"`
	StartTime24   string `json:"startTime24,omitempty"`
	EndTime12     string `json:"endTime12,omitempty"`
	EndTime24     string `json:"endTime24,omitempty"`
	RangeOutput12 string `json:"rangeOutput12,omitempty"`
	RangeOutput24 string `json:"rangeOutput24,omitempty"`
}

// Request is the JSON shape the conversion API accepts.
type Request struct {
	InputTime      string `json:"inputTime"`
	SourceTimezone string `json:"sourceTimezone"`
	TargetTimezone string `json:"targetTimezone"`
}
