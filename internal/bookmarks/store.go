// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that the bookmark file does not exist at the
// expected path.
var ErrNotFound = errors.New("bookmark file not found")

// Store reads, backs up, and rewrites one browser bookmark file.
type Store struct {
	path       string
	backupPath string
}

// NewStore returns a store for the bookmark file at path. The backup is
// written next to it with a .bak extension.
func NewStore(path string) *Store {
	return &Store{path: path, backupPath: BackupPath(path)}
}

// Path returns the bookmark file location.
func (s *Store) Path() string { return s.path }

// BackupFilePath returns where Backup writes its copy.
func (s *Store) BackupFilePath() string { return s.backupPath }

// BackupPath derives the sibling backup path for a bookmark file:
// "Bookmarks" becomes "Bookmarks.bak", "bookmarks.json" becomes
// "bookmarks.bak".
func BackupPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".bak"
}

// Read loads and parses the bookmark file. A missing file yields
// ErrNotFound; unparseable content yields a *FormatError.
func (s *Store) Read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return doc, nil
}

// Backup copies the current bookmark file byte-for-byte to the backup
// path, overwriting any previous backup. It must complete before Write
// is called so an interrupted run always leaves a pre-run copy behind.
func (s *Store) Backup() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("backing up %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.backupPath, data, 0o600); err != nil {
		return fmt.Errorf("writing backup %s: %w", s.backupPath, err)
	}
	return nil
}

// Write serializes doc and atomically replaces the bookmark file. The
// bytes land in a temp file in the same directory first and are renamed
// over the target, so a failure mid-write never leaves a truncated file.
func (s *Store) Write(doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("serializing bookmarks: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".bookmarks-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	// Carry the original file's permissions over when it exists.
	if info, statErr := os.Stat(s.path); statErr == nil {
		os.Chmod(tmpName, info.Mode().Perm())
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
