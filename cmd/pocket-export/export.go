// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocket-export/internal/bookmarks"
	"github.com/pdiddy/pocket-export/internal/browsers"
	"github.com/pdiddy/pocket-export/internal/history"
	"github.com/pdiddy/pocket-export/internal/pocket"
	"github.com/pdiddy/pocket-export/internal/prompt"
	"github.com/pdiddy/pocket-export/internal/report"
	"github.com/pdiddy/pocket-export/internal/secrets"
	"github.com/pdiddy/pocket-export/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the Pocket list into a browser's bookmarks",
	Long: `Export authorizes against Pocket (opening a browser for the one-time
grant), fetches the full saved-item list, backs up the selected browser's
bookmark file, and rewrites the Pocket-Export folder from scratch.`,
	RunE: runExport,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, exportCmd} {
		cmd.Flags().String("consumer-key", "", "Pocket API consumer key")
		cmd.Flags().String("browser", "", "target browser: edge, chrome, or firefox (default: ask, suggesting one for this OS)")
		cmd.Flags().String("bookmarks-file", "", "bookmark file path (default: resolved from the browser)")
		cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
		cmd.Flags().Duration("poll-interval", 0, "delay between authorization polls (default 2s)")
		cmd.Flags().Int("max-poll-attempts", 0, "bound on authorization polls (0 waits indefinitely)")
		cmd.Flags().Int("max-items", 0, "maximum items fetched from Pocket (default 5000)")
		cmd.Flags().String("history-db", "", "SQLite run ledger path (default: ~/.config/pocket-export/history.db, \"none\" disables)")
		cmd.Flags().String("report", "", "write a YAML run report to this path")
	}
	rootCmd.AddCommand(exportCmd)
}

// buildConfig assembles the run configuration from flags, the config
// file, and built-in defaults, in that order of precedence.
func buildConfig(cmd *cobra.Command) types.ExportConfig {
	str := func(flag, key string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		return viper.GetString(key)
	}
	dur := func(flag, key string, def time.Duration) time.Duration {
		if v, _ := cmd.Flags().GetDuration(flag); v != 0 {
			return v
		}
		if v := viper.GetDuration(key); v != 0 {
			return v
		}
		return def
	}
	num := func(flag, key string, def int) int {
		if v, _ := cmd.Flags().GetInt(flag); v != 0 {
			return v
		}
		if v := viper.GetInt(key); v != 0 {
			return v
		}
		return def
	}

	httpCfg := types.HTTPConfig{
		Timeout:   dur("timeout", "timeout", 30*time.Second),
		UserAgent: fmt.Sprintf("pocket-export/%s", version),
	}

	historyDB := str("history-db", "history_db")
	if historyDB == "" {
		historyDB = defaultHistoryDB()
	} else if historyDB == "none" {
		historyDB = ""
	}

	return types.ExportConfig{
		Auth: types.AuthConfig{
			HTTPConfig:      httpCfg,
			PollInterval:    dur("poll-interval", "poll_interval", 2*time.Second),
			MaxPollAttempts: num("max-poll-attempts", "max_poll_attempts", 0),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: httpCfg,
			MaxItems:   num("max-items", "max_items", 5000),
		},
		Browser:       str("browser", "browser"),
		BookmarksPath: str("bookmarks-file", "bookmarks_path"),
		HistoryDB:     historyDB,
		ReportPath:    str("report", "report_path"),
	}
}

func defaultHistoryDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pocket-export", "history.db")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := buildConfig(cmd)
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	out := cmd.OutOrStdout()

	consumerKey, err := resolveConsumerKey(cmd, p)
	if err != nil {
		return fmt.Errorf("consumer key: %w", err)
	}
	client := pocket.NewClient(consumerKey, cfg.Auth.HTTPConfig)

	token, err := resolveAccessToken(ctx, client, cfg.Auth, out)
	if err != nil {
		var aerr *pocket.AuthError
		if errors.As(err, &aerr) {
			return fmt.Errorf("authorization: %w\nPlease check that you copied the entire consumer key from https://getpocket.com/developer/apps/", err)
		}
		return fmt.Errorf("authorization: %w", err)
	}

	fmt.Fprintln(out, "Fetching items from Pocket...")
	items, err := client.FetchAll(ctx, token, cfg.Fetch)
	if err != nil {
		return fmt.Errorf("fetching items: %w", err)
	}
	fmt.Fprintf(out, "Fetched %d items from Pocket.\n", len(items))

	browser, err := chooseBrowser(p, out, cfg.Browser, runtime.GOOS)
	if err != nil {
		return fmt.Errorf("browser selection: %w", err)
	}

	path := cfg.BookmarksPath
	if path == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return fmt.Errorf("locating home directory: %w", herr)
		}
		path, err = browsers.BookmarksPath(browser, runtime.GOOS, home)
		if err != nil {
			return fmt.Errorf("locating bookmark file: %w", err)
		}
	}
	store := bookmarks.NewStore(path)

	fmt.Fprintf(out, "Loading and backing up bookmarks (%s)...\n", path)
	doc, err := store.Read()
	if err != nil {
		if errors.Is(err, bookmarks.ErrNotFound) {
			return fmt.Errorf("loading bookmarks: %w\nStart %s once so it creates its bookmark file, then re-run.", err, browser.DisplayName())
		}
		return fmt.Errorf("loading bookmarks: %w", err)
	}
	if err := store.Backup(); err != nil {
		return fmt.Errorf("backing up bookmarks: %w", err)
	}

	skipped := bookmarks.CountSkipped(items)
	if err := bookmarks.Merge(doc, items, bookmarks.NewGenerator(doc)); err != nil {
		return fmt.Errorf("merging bookmarks: %w", err)
	}
	if err := store.Write(doc); err != nil {
		return fmt.Errorf("saving bookmarks: %w", err)
	}

	exported := len(items) - len(skipped)
	fmt.Fprintf(out, "Exported %d bookmarks into the %q folder.\n", exported, bookmarks.ExportFolderName)
	if len(skipped) > 0 {
		fmt.Fprintf(out, "Skipped %d items without a URL.\n", len(skipped))
	}
	fmt.Fprintf(out, "Backup written to %s.\n", store.BackupFilePath())

	run := history.Run{
		ExportedAt:    time.Now(),
		Browser:       string(browser),
		BookmarksPath: store.Path(),
		BackupPath:    store.BackupFilePath(),
		ItemsExported: exported,
		ItemsSkipped:  len(skipped),
	}
	recordRun(ctx, cfg.HistoryDB, run)

	if cfg.ReportPath != "" {
		rep := report.Report{
			ExportedAt:     run.ExportedAt,
			Browser:        run.Browser,
			BookmarksPath:  run.BookmarksPath,
			BackupPath:     run.BackupPath,
			ItemsExported:  run.ItemsExported,
			ItemsSkipped:   run.ItemsSkipped,
			SkippedItemIDs: skipped,
		}
		if err := report.Write(cfg.ReportPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	fmt.Fprintln(out, "Done. Restart the browser to reload the bookmarks.")
	return nil
}

// resolveConsumerKey finds the Pocket consumer key: flag, then config,
// then the secrets cache, then an interactive prompt.
func resolveConsumerKey(cmd *cobra.Command, p *prompt.Prompter) (string, error) {
	if v, _ := cmd.Flags().GetString("consumer-key"); v != "" {
		return v, nil
	}
	if v := viper.GetString("consumer_key"); v != "" {
		return v, nil
	}
	if v := loadedSecrets[secrets.ConsumerKey]; v != "" {
		return v, nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), `A Pocket API consumer key is required. To get one:
  1. Go to https://getpocket.com/developer/apps/new
  2. Create an application with "Retrieve" permission
  3. Copy the consumer key from the app details page`)
	key, err := p.NonEmpty("Please enter your Pocket consumer key: ", "Consumer key cannot be empty.")
	if err != nil {
		return "", err
	}
	if err := secrets.Save(secretsDir, secrets.ConsumerKey, key); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not cache consumer key: %v\n", err)
	}
	return key, nil
}

// resolveAccessToken returns the cached access token or runs the
// authorization handshake, caching the result.
func resolveAccessToken(ctx context.Context, client *pocket.Client, cfg types.AuthConfig, out io.Writer) (string, error) {
	if v := loadedSecrets[secrets.AccessToken]; v != "" {
		return v, nil
	}

	fmt.Fprintln(out, "Authenticating with Pocket...")
	token, err := client.Authorize(ctx, cfg, func(u string) error {
		fmt.Fprintf(out, "Please authorize this application in your browser:\n  %s\n", u)
		if oerr := browsers.OpenURL(u); oerr != nil {
			fmt.Fprintln(out, "Could not open a browser automatically; please visit the URL above.")
		}
		fmt.Fprintln(out, "Waiting for authorization (close the browser tab once done)...")
		return nil
	})
	if err != nil {
		return "", err
	}

	if serr := secrets.Save(secretsDir, secrets.AccessToken, token); serr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not cache access token: %v\n", serr)
	}
	return token, nil
}

// chooseBrowser resolves the target browser. A preset (flag or config)
// wins; otherwise the user picks interactively, with the OS-appropriate
// browser offered as the Enter default.
func chooseBrowser(p *prompt.Prompter, out io.Writer, preset, goos string) (browsers.Browser, error) {
	if preset != "" {
		return browsers.Parse(preset)
	}

	options := make([]string, len(browsers.All))
	for i, b := range browsers.All {
		options[i] = b.DisplayName()
	}

	def := -1
	if b, ok := browsers.DefaultFor(goos); ok {
		for i, cand := range browsers.All {
			if cand == b {
				def = i
			}
		}
		fmt.Fprintf(out, "Recommended browser for this system: %s\n", b.DisplayName())
	}

	idx, err := p.Choice("Select the browser for export:", options, def)
	if err != nil {
		return "", err
	}
	return browsers.All[idx], nil
}

// recordRun appends to the history ledger; failure only warns because the
// export itself already succeeded.
func recordRun(ctx context.Context, dbPath string, run history.Run) {
	if dbPath == "" {
		return
	}
	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
