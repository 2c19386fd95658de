// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"testing"
	"time"
)

func TestTimeToChrome(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"unix epoch", time.Unix(0, 0).UTC(), "11644473600000000"},
		{"windows epoch", time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC), "0"},
		{"recent instant", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), "13360766400000000"},
		{"sub-second precision", time.Unix(0, 0).Add(1500 * time.Microsecond).UTC(), "11644473600001500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeToChrome(tt.in); got != tt.want {
				t.Errorf("TimeToChrome(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChromeToTime(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"unix epoch", "11644473600000000", time.Unix(0, 0).UTC(), false},
		{"windows epoch", "0", time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"not a number", "abc", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChromeToTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChromeToTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ChromeToTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	in := time.Date(2025, 3, 14, 9, 26, 53, 589000, time.UTC)
	got, err := ChromeToTime(TimeToChrome(in))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !got.Equal(in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}
