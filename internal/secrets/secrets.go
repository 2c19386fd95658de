// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads and stores Pocket credentials in a directory of
// plain-text files. Each file is one secret: the filename is the key name
// and the file contents (trimmed) are the value.
//
// Key files used by the exporter: pocket-consumer-key, pocket-access-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names understood by the CLI.
const (
	ConsumerKey = "pocket-consumer-key"
	AccessToken = "pocket-access-token"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Save writes one secret to dir/name, creating the directory when needed.
// The file is owner-readable only; the access token obtained during the
// authorization handshake is cached here so later runs skip the browser
// round trip.
func Save(dir, name, value string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating secrets directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing secret %s: %w", path, err)
	}
	return nil
}
