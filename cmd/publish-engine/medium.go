// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/punitmishra/publish-engine/internal/format"
	"github.com/punitmishra/publish-engine/internal/ledger"
	"github.com/punitmishra/publish-engine/internal/medium"
	"github.com/punitmishra/publish-engine/internal/secrets"
	"github.com/punitmishra/publish-engine/pkg/types"
)

var mediumCmd = &cobra.Command{
	Use:   "medium",
	Short: "Cross-post an article to Medium",
	Long: `Medium wraps an article's markdown body in a title heading and an
attribution footer pointing at the canonical URL, then submits it through
the Medium API. Tags are capped at five; posts default to draft status so
they can be reviewed before going public.

Select the article with --slug, or use --daily-update to pick the newest
article that has not been cross-posted yet. --dry-run prints the payload
without posting.`,
	RunE: runMedium,
}

func init() {
	mediumCmd.Flags().String("slug", "", "article slug (filename without .md)")
	mediumCmd.Flags().Bool("daily-update", false, "pick the newest uncross-posted article")
	mediumCmd.Flags().Bool("dry-run", false, "print the payload instead of posting it")
	mediumCmd.Flags().String("token", "", "Medium integration token (overrides MEDIUM_TOKEN)")
	mediumCmd.Flags().String("publish-status", string(types.StatusDraft), "post visibility: draft or public")

	rootCmd.AddCommand(mediumCmd)
}

func runMedium(cmd *cobra.Command, args []string) error {
	slug, _ := cmd.Flags().GetString("slug")
	daily, _ := cmd.Flags().GetBool("daily-update")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	token, _ := cmd.Flags().GetString("token")
	statusFlag, _ := cmd.Flags().GetString("publish-status")

	if slug == "" && !daily {
		return fmt.Errorf("provide --slug or --daily-update")
	}

	status := types.PublishStatus(statusFlag)
	if status != types.StatusDraft && status != types.StatusPublic {
		return fmt.Errorf("invalid --publish-status %q: use draft or public", statusFlag)
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

	a, body, err := selectArticle(cfg, led, slug, daily, ledger.PlatformMedium)
	if err != nil {
		return err
	}
	if a == nil {
		fmt.Println("Nothing to post: every article is already on Medium.")
		return nil
	}

	payload := format.MediumArticle(*a, body, cfg.Site.BaseURL, status)

	if dryRun {
		fmt.Printf("Title:     %s\n", payload.Title)
		fmt.Printf("Tags:      %v\n", payload.Tags)
		fmt.Printf("Canonical: %s\n", payload.CanonicalURL)
		fmt.Printf("Status:    %s\n\n", payload.PublishStatus)
		fmt.Println(payload.Content)
		return nil
	}

	if token == "" {
		token = secrets.Load(envFile()).MediumToken
	}
	client, err := medium.New(token, cfg.HTTPConfig)
	if err != nil {
		return err
	}

	userID, err := client.Me(cmd.Context())
	if err != nil {
		return err
	}

	url, err := client.CreatePost(cmd.Context(), userID, payload)
	if err != nil {
		return err
	}

	if err := led.Record(a.Slug, ledger.PlatformMedium, url); err != nil {
		fmt.Fprintf(os.Stderr, "warning: post created but not recorded: %v\n", err)
	}
	fmt.Printf("Cross-posted %s (%s): %s\n", a.Slug, payload.PublishStatus, url)
	return nil
}
