// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/pdiddy/pocket-export/internal/httputil"
	"github.com/pdiddy/pocket-export/pkg/types"
)

const defaultMaxItems = 5000

// FetchAll retrieves the user's saved items in one bulk call, newest
// bound by cfg.MaxItems (default 5000). Items come back in Pocket's sort
// order (sort_id ascending, item id as tiebreak) so the exported folder
// is stable across runs.
func (c *Client) FetchAll(ctx context.Context, accessToken string, cfg types.FetchConfig) ([]types.SavedItem, error) {
	maxItems := cfg.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}

	params := url.Values{
		"consumer_key": {c.consumerKey},
		"access_token": {accessToken},
		"state":        {"all"},
		"detailType":   {"simple"},
		"count":        {strconv.Itoa(maxItems)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v3/get?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building retrieve call: %w", err)
	}
	req.Header.Set("X-Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("retrieve call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{Endpoint: "/v3/get", Status: resp.StatusCode}
	}

	var body struct {
		List json.RawMessage `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing retrieve response: %w", err)
	}
	return decodeItemList(body.List)
}

// decodeItemList turns the "list" field into a sorted item slice. Pocket
// serializes the list as an object keyed by item id, except when it is
// empty, in which case it degrades to a bare JSON array.
func decodeItemList(raw json.RawMessage) ([]types.SavedItem, error) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == "[]" {
		return nil, nil
	}

	var byID map[string]types.SavedItem
	if err := json.Unmarshal(raw, &byID); err != nil {
		return nil, fmt.Errorf("parsing item list: %w", err)
	}

	items := make([]types.SavedItem, 0, len(byID))
	for id, item := range byID {
		if item.ItemID == "" {
			item.ItemID = id
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortID != items[j].SortID {
			return items[i].SortID < items[j].SortID
		}
		return items[i].ItemID < items[j].ItemID
	})
	return items, nil
}
