// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the per-run YAML summary.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report summarizes one export run, including the items that were
// dropped for lacking a URL — the merge stays silent about those, so the
// report is where the user can find them.
type Report struct {
	ExportedAt     time.Time `yaml:"exported_at"`
	Browser        string    `yaml:"browser"`
	BookmarksPath  string    `yaml:"bookmarks_path"`
	BackupPath     string    `yaml:"backup_path"`
	ItemsExported  int       `yaml:"items_exported"`
	ItemsSkipped   int       `yaml:"items_skipped"`
	SkippedItemIDs []string  `yaml:"skipped_item_ids,omitempty"`
}

// Write marshals r to path.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
