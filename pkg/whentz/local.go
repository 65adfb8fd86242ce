package whentz

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/whenTZ/pkg/tzconvert"
)

// LocalTimezone reports the host's IANA timezone identifier. It checks the
// TZ environment variable, then the /etc/localtime symlink, and falls back
// to UTC when neither names a zone.
func LocalTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	if link, err := os.Readlink("/etc/localtime"); err == nil {
		// e.g. /usr/share/zoneinfo/America/New_York
		if i := strings.Index(link, "zoneinfo/"); i >= 0 {
			name := filepath.ToSlash(link[i+len("zoneinfo/"):])
			if _, err := time.LoadLocation(name); err == nil {
				return name
			}
		}
	}

	return "UTC"
}

// TimezoneDisplayName returns the abbreviation for a zone right now, or the
// identifier itself when the zone is invalid. Never fails.
func TimezoneDisplayName(zone string) string {
	return tzconvert.DisplayName(zone, time.Now())
}
