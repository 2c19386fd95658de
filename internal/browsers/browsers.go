// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browsers knows which browsers the exporter supports, where each
// one keeps its bookmark file, and which one to suggest for the running
// operating system.
package browsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Browser identifies one supported target browser.
type Browser string

const (
	Edge    Browser = "edge"
	Chrome  Browser = "chrome"
	Firefox Browser = "firefox"
)

// All lists the supported browsers in menu order.
var All = []Browser{Edge, Chrome, Firefox}

// DisplayName returns the human-facing browser name.
func (b Browser) DisplayName() string {
	switch b {
	case Edge:
		return "Microsoft Edge"
	case Chrome:
		return "Google Chrome"
	case Firefox:
		return "Mozilla Firefox"
	}
	return string(b)
}

// Parse maps user input to a Browser. It accepts the menu number ("1",
// "2", "3"), the short name, and the display name, case-insensitively.
func Parse(s string) (Browser, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "edge", "microsoft edge":
		return Edge, nil
	case "2", "chrome", "google chrome":
		return Chrome, nil
	case "3", "firefox", "mozilla firefox":
		return Firefox, nil
	}
	return "", fmt.Errorf("unknown browser %q (expected 1/2/3, edge, chrome, or firefox)", s)
}

// DefaultFor suggests a browser for the given GOOS. The second return is
// false when the OS is not recognized and the user must pick explicitly.
func DefaultFor(goos string) (Browser, bool) {
	switch goos {
	case "darwin", "windows":
		return Edge, true
	case "linux":
		return Chrome, true
	}
	return "", false
}

// BookmarksPath resolves the bookmark file location for a browser on a
// given OS, rooted at the user's home directory. Firefox profiles carry a
// per-installation name, so its location is a glob resolved against the
// filesystem; no matching profile is an error.
func BookmarksPath(b Browser, goos, home string) (string, error) {
	switch b {
	case Edge:
		switch goos {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "Microsoft Edge", "Default", "Bookmarks"), nil
		case "windows":
			return filepath.Join(home, "AppData", "Local", "Microsoft", "Edge", "User Data", "Default", "Bookmarks"), nil
		default:
			return filepath.Join(home, ".config", "microsoft-edge", "Default", "Bookmarks"), nil
		}
	case Chrome:
		switch goos {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "Bookmarks"), nil
		case "windows":
			return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "Bookmarks"), nil
		default:
			return filepath.Join(home, ".config", "google-chrome", "Default", "Bookmarks"), nil
		}
	case Firefox:
		var pattern string
		if goos == "darwin" {
			pattern = filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles", "*.default-release", "bookmarks.json")
		} else {
			pattern = filepath.Join(home, ".mozilla", "firefox", "*.default-release", "bookmarks.json")
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", fmt.Errorf("resolving Firefox profile: %w", err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("no Firefox profile with a bookmarks.json found under %s", filepath.Dir(filepath.Dir(pattern)))
		}
		return matches[0], nil
	}
	return "", fmt.Errorf("unknown browser %q", b)
}
