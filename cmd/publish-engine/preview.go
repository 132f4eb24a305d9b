// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/punitmishra/publish-engine/internal/article"
	"github.com/punitmishra/publish-engine/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render an article to a standalone HTML page",
	Long: `Preview renders an article's markdown body (GitHub-flavored markdown
plus typographic punctuation) into a minimal standalone HTML page for
local inspection before publishing. Output goes to stdout unless --out
is given.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("slug", "", "article slug (filename without .md)")
	previewCmd.Flags().String("out", "", "write the page to this file instead of stdout")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	slug, _ := cmd.Flags().GetString("slug")
	if slug == "" {
		return fmt.Errorf("provide --slug")
	}
	outPath, _ := cmd.Flags().GetString("out")

	cfg := publishConfig()
	a, body, err := article.Load(cfg.Site.ContentDir, slug)
	if err != nil {
		return err
	}

	title := a.Title
	if title == "" {
		title = slug
	}

	page, err := render.Page(title, body)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Print(page)
		return nil
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	return nil
}
