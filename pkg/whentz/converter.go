// Package whentz converts natural-language time strings between timezones.
// It composes timezone-token extraction, range splitting, and multi-format
// parsing into a single pipeline that never returns an error to the caller:
// every failure comes back inside the Result.
package whentz

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/whenTZ/pkg/aliases"
	"github.com/codeGROOVE-dev/whenTZ/pkg/timestr"
	"github.com/codeGROOVE-dev/whenTZ/pkg/tzconvert"
)

// User-facing failure messages. The UI layer matches on these strings, so
// they are part of the API contract.
const (
	errSingleParse = `Could not parse time input. Try formats like "3:00 PM", "15:00", or "3pm"`
	errRangeParse  = `Could not parse time range. Try "9:00 AM to 11:30 AM Pacific"`
	errBadZone     = "Invalid timezone conversion"
	errUnknown     = "Unknown error occurred"
)

// Converter runs the conversion pipeline. One converter is safe for
// concurrent use; it holds no per-call state.
type Converter struct {
	logger *slog.Logger
	table  *aliases.Table
	now    func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger attaches a logger for parse-decision debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) { c.logger = logger }
}

// WithNow injects the clock used when input carries no date. Tests pin this
// to a fixed instant to make date-dependent conversions deterministic.
func WithNow(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// WithAliases replaces the default timezone alias table.
func WithAliases(table *aliases.Table) Option {
	return func(c *Converter) { c.table = table }
}

// New creates a Converter with the default alias table and wall clock.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		table:  aliases.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses input (a single time or a range, optionally carrying a
// timezone token) and re-projects it from sourceZone into targetZone. A zone
// embedded in the text overrides sourceZone. Panics from the time layer are
// recovered into a failure result.
func (c *Converter) Convert(input, sourceZone, targetZone string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("conversion panicked", "input", input, "panic", r)
			result = Result{Error: recoveredMessage(r)}
		}
	}()

	rng := timestr.SplitRange(input, c.table)
	if rng.IsRange {
		return c.convertRange(rng, sourceZone, targetZone)
	}
	return c.convertSingle(input, sourceZone, targetZone)
}

func (c *Converter) convertSingle(input, sourceZone, targetZone string) Result {
	now := c.now()
	parsed, detected, err := timestr.Parse(input, sourceZone, c.table, now)
	if err != nil {
		c.logger.Debug("single parse failed", "input", input, "error", err)
		return Result{Error: errSingleParse}
	}

	source := detected
	if source == "" {
		source = sourceZone
	}
	converted, err := tzconvert.Convert(parsed, source, targetZone)
	if err != nil {
		c.logger.Debug("conversion failed", "source", source, "target", targetZone, "error", err)
		return Result{Error: errBadZone}
	}

	abbr := tzconvert.Abbreviation(converted)
	return Result{
		Success:           true,
		ConvertedTime12:   tzconvert.Format12(converted),
		ConvertedTime24:   tzconvert.Format24(converted),
		FormattedOutput12: tzconvert.Format12(converted) + " " + abbr,
		FormattedOutput24: tzconvert.Format24(converted) + " " + abbr,
	}
}

func (c *Converter) convertRange(rng timestr.Range, sourceZone, targetZone string) Result {
	// The parser re-extracts timezones from text, so the token stripped
	// during range detection is reattached to both halves.
	startInput, endInput := rng.Start, rng.End
	if rng.Zone != "" {
		if token, ok := c.table.TokenFor(rng.Zone); ok {
			startInput += " " + token
			endInput += " " + token
		}
	}

	now := c.now()
	start, startZone, startErr := timestr.Parse(startInput, sourceZone, c.table, now)
	end, _, endErr := timestr.Parse(endInput, sourceZone, c.table, now)
	if startErr != nil || endErr != nil {
		c.logger.Debug("range parse failed",
			"start", startInput, "end", endInput, "start_error", startErr, "end_error", endErr)
		return Result{Error: errRangeParse}
	}

	source := rng.Zone
	if source == "" {
		source = startZone
	}
	if source == "" {
		source = sourceZone
	}

	startConv, err1 := tzconvert.Convert(start, source, targetZone)
	endConv, err2 := tzconvert.Convert(end, source, targetZone)
	if err1 != nil || err2 != nil {
		c.logger.Debug("range conversion failed", "source", source, "target", targetZone)
		return Result{Error: errBadZone}
	}

	abbr := tzconvert.Abbreviation(startConv)
	start12, start24 := tzconvert.Format12(startConv), tzconvert.Format24(startConv)
	end12, end24 := tzconvert.Format12(endConv), tzconvert.Format24(endConv)
	return Result{
		Success:       true,
		IsRange:       true,
		StartTime12:   start12,
		StartTime24:   start24,
		EndTime12:     end12,
		EndTime24:     end24,
		RangeOutput12: fmt.Sprintf("%s to %s %s", start12, end12, abbr),
		RangeOutput24: fmt.Sprintf("%s to %s %s", start24, end24, abbr),
	}
}

func recoveredMessage(r any) string {
	switch v := r.(type) {
	case error:
		if v.Error() != "" {
			return v.Error()
		}
	case string:
		if v != "" {
			return v
		}
	}
	return errUnknown
}
