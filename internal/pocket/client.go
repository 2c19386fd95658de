// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pocket talks to the Pocket v3 API: the request/authorize/poll
// credential handshake and the single bulk retrieval of saved items.
package pocket

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/pocket-export/pkg/types"
)

// baseURL is the Pocket API origin. Declared as a var so tests can
// substitute an httptest server.
var baseURL = "https://getpocket.com"

// redirectURI is where Pocket sends the user after authorization. The
// exporter never serves this URL; Pocket's own landing page is used so no
// local callback listener is needed.
const redirectURI = "https://getpocket.com/connected_accounts"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pocket-export/0.1"
)

// Client is a Pocket API client bound to one consumer key.
type Client struct {
	httpClient  *http.Client
	consumerKey string
	userAgent   string
}

// NewClient returns a client for the given consumer key.
func NewClient(consumerKey string, cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		consumerKey: consumerKey,
		userAgent:   userAgent,
	}
}

// postForm builds a form-encoded POST with the X-Accept header Pocket
// requires for JSON answers.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
