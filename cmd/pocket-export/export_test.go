// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pocket-export/internal/browsers"
	"github.com/pdiddy/pocket-export/internal/prompt"
)

func TestChooseBrowserPreset(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})

	got, err := chooseBrowser(p, &bytes.Buffer{}, "firefox", "linux")
	require.NoError(t, err)
	assert.Equal(t, browsers.Firefox, got)
}

func TestChooseBrowserPresetInvalid(t *testing.T) {
	p := prompt.New(strings.NewReader(""), &bytes.Buffer{})

	_, err := chooseBrowser(p, &bytes.Buffer{}, "safari", "linux")
	assert.Error(t, err)
}

func TestChooseBrowserAcceptsOSDefault(t *testing.T) {
	tests := []struct {
		goos string
		want browsers.Browser
	}{
		{"darwin", browsers.Edge},
		{"windows", browsers.Edge},
		{"linux", browsers.Chrome},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.New(strings.NewReader("\n"), &out)

			got, err := chooseBrowser(p, &out, "", tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Recommended browser")
		})
	}
}

func TestChooseBrowserUnknownOSForcesExplicitChoice(t *testing.T) {
	var out bytes.Buffer
	// Empty input is rejected (no default), then "3" selects Firefox.
	p := prompt.New(strings.NewReader("\n3\n"), &out)

	got, err := chooseBrowser(p, &out, "", "plan9")
	require.NoError(t, err)
	assert.Equal(t, browsers.Firefox, got)
	assert.NotContains(t, out.String(), "Recommended browser")
}

func TestChooseBrowserExplicitOverridesDefault(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("2\n"), &out)

	got, err := chooseBrowser(p, &out, "", "darwin")
	require.NoError(t, err)
	assert.Equal(t, browsers.Chrome, got)
}
