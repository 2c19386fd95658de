// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browsers

import (
	"errors"
	"os/exec"
	"runtime"
)

// OpenURL asks the OS to open url with the default handler. The command
// is started, not waited on; the authorization flow continues while the
// browser comes up.
func OpenURL(url string) error {
	if url == "" {
		return errors.New("open: empty url")
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		// start needs a window-title argument before the URL.
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
