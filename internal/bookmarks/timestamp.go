// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmarks models the Chromium-family bookmark file and the
// Pocket-Export folder merge into it.
package bookmarks

import (
	"fmt"
	"strconv"
	"time"
)

// chromeEpochOffset is the number of microseconds between the Windows
// epoch (1601-01-01 UTC, which Chromium bookmark timestamps count from)
// and the Unix epoch.
const chromeEpochOffset = 11644473600000000

// TimeToChrome encodes t as a Chromium bookmark timestamp: a
// string-encoded integer count of microseconds since 1601-01-01 UTC.
func TimeToChrome(t time.Time) string {
	return strconv.FormatInt(t.UnixMicro()+chromeEpochOffset, 10)
}

// ChromeToTime decodes a Chromium bookmark timestamp back to wall-clock
// time in UTC.
func ChromeToTime(s string) (time.Time, error) {
	us, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing bookmark timestamp %q: %w", s, err)
	}
	return time.UnixMicro(us - chromeEpochOffset).UTC(), nil
}
