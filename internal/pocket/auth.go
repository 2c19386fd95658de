// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/pocket-export/pkg/types"
)

const defaultPollInterval = 2 * time.Second

// RequestToken performs step one of the handshake: it asks Pocket for a
// request token tied to the consumer key. HTTP 400 and 403 mean the key
// itself was rejected and surface as *AuthError.
func (c *Client) RequestToken(ctx context.Context) (string, error) {
	form := url.Values{
		"consumer_key": {c.consumerKey},
		"redirect_uri": {redirectURI},
	}
	req, err := c.postForm(ctx, "/v3/oauth/request", form)
	if err != nil {
		return "", fmt.Errorf("building request-token call: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request-token call: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusForbidden:
		return "", &AuthError{Status: resp.StatusCode}
	default:
		return "", &RemoteError{Endpoint: "/v3/oauth/request", Status: resp.StatusCode}
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("parsing request-token response: %w", err)
	}
	if body.Code == "" {
		return "", fmt.Errorf("request-token response missing code")
	}
	return body.Code, nil
}

// AuthorizeURL returns the browser-facing page where the user grants this
// application access. The exporter opens it and then polls for the
// access token; the page is never fetched by this process.
func (c *Client) AuthorizeURL(requestToken string) string {
	q := url.Values{
		"request_token": {requestToken},
		"redirect_uri":  {redirectURI},
	}
	return baseURL + "/auth/authorize?" + q.Encode()
}

// PollAccessToken performs step three: it asks Pocket to convert the
// request token into an access token, retrying on a fixed interval until
// the user has authorized the application out of band.
//
// Anything other than HTTP 200 — including transport errors — counts as
// "not authorized yet" and is retried, because Pocket answers 403 until
// the user clicks through. cfg.MaxPollAttempts bounds the loop; zero
// polls until ctx is cancelled.
func (c *Client) PollAccessToken(ctx context.Context, requestToken string, cfg types.AuthConfig) (string, error) {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	for attempt := 1; ; attempt++ {
		token, ok := c.tryAccessToken(ctx, requestToken)
		if ok {
			return token, nil
		}

		if cfg.MaxPollAttempts > 0 && attempt >= cfg.MaxPollAttempts {
			return "", fmt.Errorf("authorization not completed after %d attempts", attempt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}
}

// tryAccessToken makes one access-token attempt. A false return means
// "keep polling".
func (c *Client) tryAccessToken(ctx context.Context, requestToken string) (string, bool) {
	form := url.Values{
		"consumer_key": {c.consumerKey},
		"code":         {requestToken},
	}
	req, err := c.postForm(ctx, "/v3/oauth/authorize", form)
	if err != nil {
		return "", false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.AccessToken == "" {
		return "", false
	}
	return body.AccessToken, true
}

// Authorize runs the whole handshake: request token, hand the
// authorization URL to openURL (the shell opens a browser with it), then
// poll until the token arrives or the bound is hit.
func (c *Client) Authorize(ctx context.Context, cfg types.AuthConfig, openURL func(string) error) (string, error) {
	requestToken, err := c.RequestToken(ctx)
	if err != nil {
		return "", err
	}
	if err := openURL(c.AuthorizeURL(requestToken)); err != nil {
		return "", fmt.Errorf("opening authorization page: %w", err)
	}
	return c.PollAccessToken(ctx, requestToken, cfg)
}
