// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pocket-export/internal/pocket"
	"github.com/pdiddy/pocket-export/internal/prompt"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Run the Pocket authorization handshake and cache the token",
	Long: `Auth obtains a Pocket access token without exporting anything. The
token is cached in .secrets/ so later export runs skip the browser
round trip.`,
	RunE: runAuth,
}

func init() {
	authCmd.Flags().String("consumer-key", "", "Pocket API consumer key")
	authCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	authCmd.Flags().Duration("poll-interval", 0, "delay between authorization polls (default 2s)")
	authCmd.Flags().Int("max-poll-attempts", 0, "bound on authorization polls (0 waits indefinitely)")

	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := buildConfig(cmd)
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	consumerKey, err := resolveConsumerKey(cmd, p)
	if err != nil {
		return fmt.Errorf("consumer key: %w", err)
	}

	client := pocket.NewClient(consumerKey, cfg.Auth.HTTPConfig)
	if _, err := resolveAccessToken(ctx, client, cfg.Auth, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("authorization: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Authorized. The access token is cached for future runs.")
	return nil
}
