// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Browser
		wantErr bool
	}{
		{"menu number edge", "1", Edge, false},
		{"menu number chrome", "2", Chrome, false},
		{"menu number firefox", "3", Firefox, false},
		{"short name", "chrome", Chrome, false},
		{"display name", "Microsoft Edge", Edge, false},
		{"case insensitive", "FIREFOX", Firefox, false},
		{"surrounding whitespace", "  edge  ", Edge, false},
		{"unknown", "safari", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultFor(t *testing.T) {
	tests := []struct {
		goos   string
		want   Browser
		wantOK bool
	}{
		{"darwin", Edge, true},
		{"windows", Edge, true},
		{"linux", Chrome, true},
		{"freebsd", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, ok := DefaultFor(tt.goos)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DefaultFor(%q) = (%q, %v), want (%q, %v)", tt.goos, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBookmarksPathChromiumFamily(t *testing.T) {
	tests := []struct {
		name    string
		browser Browser
		goos    string
		want    string
	}{
		{"edge darwin", Edge, "darwin", "Library/Application Support/Microsoft Edge/Default/Bookmarks"},
		{"edge linux", Edge, "linux", ".config/microsoft-edge/Default/Bookmarks"},
		{"edge windows", Edge, "windows", "AppData/Local/Microsoft/Edge/User Data/Default/Bookmarks"},
		{"chrome darwin", Chrome, "darwin", "Library/Application Support/Google/Chrome/Default/Bookmarks"},
		{"chrome linux", Chrome, "linux", ".config/google-chrome/Default/Bookmarks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BookmarksPath(tt.browser, tt.goos, "/home/u")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("/home/u", filepath.FromSlash(tt.want)), got)
		})
	}
}

func TestBookmarksPathFirefoxResolvesProfileGlob(t *testing.T) {
	home := t.TempDir()
	profile := filepath.Join(home, ".mozilla", "firefox", "ab12cd.default-release")
	require.NoError(t, os.MkdirAll(profile, 0o755))
	target := filepath.Join(profile, "bookmarks.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

	got, err := BookmarksPath(Firefox, "linux", home)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestBookmarksPathFirefoxNoProfile(t *testing.T) {
	_, err := BookmarksPath(Firefox, "linux", t.TempDir())
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Microsoft Edge", Edge.DisplayName())
	assert.Equal(t, "Google Chrome", Chrome.DisplayName())
	assert.Equal(t, "Mozilla Firefox", Firefox.DisplayName())
}
