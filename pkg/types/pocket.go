// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SavedItem is one record from the Pocket /v3/get item list. Only the
// fields the exporter needs are mapped; the API returns many more.
type SavedItem struct {
	ItemID        string `json:"item_id"`
	SortID        int    `json:"sort_id"`
	ResolvedTitle string `json:"resolved_title"`
	GivenTitle    string `json:"given_title"`
	ResolvedURL   string `json:"resolved_url"`
	GivenURL      string `json:"given_url"`
}

// Title resolves the bookmark name: resolved title, else given title,
// else the item ID.
func (s SavedItem) Title() string {
	if s.ResolvedTitle != "" {
		return s.ResolvedTitle
	}
	if s.GivenTitle != "" {
		return s.GivenTitle
	}
	return s.ItemID
}

// URL resolves the bookmark target: resolved URL, else given URL. An
// empty result marks the item invalid; such items are skipped, never
// exported.
func (s SavedItem) URL() string {
	if s.ResolvedURL != "" {
		return s.ResolvedURL
	}
	return s.GivenURL
}
