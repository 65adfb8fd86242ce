// Package main implements the whentz CLI for converting natural-language
// time strings between timezones.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/codeGROOVE-dev/whenTZ/pkg/tzconvert"
	"github.com/codeGROOVE-dev/whenTZ/pkg/whentz"
	"github.com/fatih/color"
)

var (
	sourceZone = flag.String("source", "", "Source IANA timezone (or set WHENTZ_SOURCE; defaults to the local zone)")
	targetZone = flag.String("target", "", "Target IANA timezone (or set WHENTZ_TARGET; defaults to UTC)")
	only24     = flag.Bool("24", false, "Print only the 24-hour form")
	listZones  = flag.Bool("zones", false, "List common timezones and exit")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("whenTZ CLI v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *listZones {
		printZones()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <time string>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples: '3:00 PM', '15:00 EST', '9:00 AM to 11:30 AM Pacific'\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := strings.Join(args, " ")

	if *sourceZone == "" {
		*sourceZone = os.Getenv("WHENTZ_SOURCE")
		if *sourceZone == "" {
			*sourceZone = whentz.LocalTimezone()
		}
	}
	if *targetZone == "" {
		*targetZone = os.Getenv("WHENTZ_TARGET")
		if *targetZone == "" {
			*targetZone = "UTC"
		}
	}

	logger.Debug("converting", "input", input, "source", *sourceZone, "target", *targetZone)

	converter := whentz.New(whentz.WithLogger(logger))
	result := converter.Convert(input, *sourceZone, *targetZone)

	if !result.Success {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", result.Error)
		os.Exit(1)
	}

	printResult(input, result)
}

func printResult(input string, result whentz.Result) {
	green := color.New(color.FgGreen)
	grey := color.New(color.FgHiBlack)

	output12, output24 := result.FormattedOutput12, result.FormattedOutput24
	if result.IsRange {
		output12, output24 = result.RangeOutput12, result.RangeOutput24
	}

	if *only24 {
		fmt.Println(output24)
		return
	}

	grey.Printf("%s (%s → %s)\n", input, *sourceZone, *targetZone)
	green.Printf("🕐 %s\n", output12)
	green.Printf("   %s\n", output24)
}

func printZones() {
	now := time.Now()
	for _, z := range tzconvert.CommonZones(now) {
		fmt.Printf("%-22s %-8s %s\n", z.Value, z.Offset, z.Label)
	}
}
