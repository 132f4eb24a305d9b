// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/punitmishra/publish-engine/internal/format"
	"github.com/punitmishra/publish-engine/internal/ledger"
	"github.com/punitmishra/publish-engine/internal/secrets"
	"github.com/punitmishra/publish-engine/internal/twitter"
)

var tweetCmd = &cobra.Command{
	Use:   "tweet",
	Short: "Post an article announcement to Twitter (X)",
	Long: `Tweet formats an article into an announcement (emoji title, up to three
hashtags, canonical link) and posts it through the X API v2. The text never
exceeds 280 characters; overlong titles are truncated with an ellipsis.

Select the article with --slug, or use --daily-update to pick the newest
article that has not been tweeted yet. --dry-run prints the tweet without
posting or recording anything.`,
	RunE: runTweet,
}

func init() {
	tweetCmd.Flags().String("slug", "", "article slug (filename without .md)")
	tweetCmd.Flags().Bool("daily-update", false, "pick the newest untweeted article")
	tweetCmd.Flags().Bool("dry-run", false, "print the tweet instead of posting it")

	rootCmd.AddCommand(tweetCmd)
}

func runTweet(cmd *cobra.Command, args []string) error {
	slug, _ := cmd.Flags().GetString("slug")
	daily, _ := cmd.Flags().GetBool("daily-update")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if slug == "" && !daily {
		return fmt.Errorf("provide --slug or --daily-update")
	}

	cfg := publishConfig()

	var led *ledger.Ledger
	if daily || !dryRun {
		var err error
		led, err = ledger.Open(cfg.LedgerPath)
		if err != nil {
			return err
		}
		defer led.Close()
	}

	a, _, err := selectArticle(cfg, led, slug, daily, ledger.PlatformTwitter)
	if err != nil {
		return err
	}
	if a == nil {
		fmt.Println("Nothing to post: every article has already been tweeted.")
		return nil
	}

	text := format.Tweet(*a, cfg.Site.BaseURL)

	if dryRun {
		fmt.Println(text)
		return nil
	}

	creds := secrets.Load(envFile())
	client, err := twitter.New(creds, cfg.HTTPConfig)
	if err != nil {
		return err
	}

	id, err := client.PostTweet(cmd.Context(), text)
	if err != nil {
		return err
	}

	url := "https://x.com/i/web/status/" + id
	if err := led.Record(a.Slug, ledger.PlatformTwitter, url); err != nil {
		fmt.Fprintf(os.Stderr, "warning: tweet posted but not recorded: %v\n", err)
	}
	fmt.Printf("Tweeted %s: %s\n", a.Slug, url)
	return nil
}
