// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"github.com/pdiddy/pocket-export/pkg/types"
)

// ExportFolderName is the folder all exported items land in, as a direct
// child of the "other" root.
const ExportFolderName = "Pocket-Export"

// Merge rebuilds the Pocket-Export folder under the "other" root from
// items. Any existing folder of that name is discarded together with its
// whole subtree, then a fresh folder is appended holding one bookmark per
// item with a resolvable URL; items without one are skipped. The
// replacement is total: the folder's contents after Merge reflect items
// alone, never a union with a previous run.
//
// Merge mutates doc in memory only; nothing is persisted until the caller
// writes the document, so a failed run leaves the file untouched.
func Merge(doc *Document, items []types.SavedItem, gen *Generator) error {
	other, err := doc.otherRoot()
	if err != nil {
		return err
	}

	children := nodeChildren(other)
	kept := make([]any, 0, len(children)+1)
	for _, child := range children {
		if node, ok := child.(map[string]any); ok &&
			nodeString(node, "type") == "folder" && nodeString(node, "name") == ExportFolderName {
			continue
		}
		kept = append(kept, child)
	}

	folder := map[string]any{
		"type":       "folder",
		"name":       ExportFolderName,
		"children":   []any{},
		"date_added": gen.Timestamp(),
		"id":         gen.ID(),
	}

	entries := make([]any, 0, len(items))
	for _, item := range items {
		url := item.URL()
		if url == "" {
			continue
		}
		entries = append(entries, map[string]any{
			"type":       "url",
			"name":       item.Title(),
			"url":        url,
			"date_added": gen.Timestamp(),
			"id":         gen.ID(),
		})
	}
	folder["children"] = entries

	other["children"] = append(kept, folder)
	return nil
}

// CountSkipped reports how many items Merge would drop for lacking a URL.
// The merge itself stays silent about them; the shell uses this to tell
// the user.
func CountSkipped(items []types.SavedItem) (skipped []string) {
	for _, item := range items {
		if item.URL() == "" {
			skipped = append(skipped, item.ItemID)
		}
	}
	return skipped
}
