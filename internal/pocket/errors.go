// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pocket

import "fmt"

// AuthError reports a rejected consumer key or access credential. It is
// user-correctable: the shell tells the user to re-check the key.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("pocket: credential rejected (HTTP %d)", e.Status)
}

// RemoteError reports a Pocket API call that failed with an unexpected
// status.
type RemoteError struct {
	Endpoint string
	Status   int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("pocket: %s returned HTTP %d", e.Endpoint, e.Status)
}
