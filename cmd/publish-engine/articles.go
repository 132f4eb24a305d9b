// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/punitmishra/publish-engine/internal/article"
	"github.com/punitmishra/publish-engine/internal/ledger"
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List articles in the content directory",
	Long: `Articles lists every markdown article newest-first with its metadata
and, when the publish ledger exists, markers for where each article has
already been posted.`,
	RunE: runArticles,
}

func init() {
	rootCmd.AddCommand(articlesCmd)
}

func runArticles(cmd *cobra.Command, args []string) error {
	cfg := publishConfig()

	articles, err := article.List(cfg.Site.ContentDir)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		fmt.Printf("No articles in %s\n", cfg.Site.ContentDir)
		return nil
	}

	// Listing is read-only: only consult the ledger when it already
	// exists, so the command never creates .publish/ as a side effect.
	var led *ledger.Ledger
	if _, err := os.Stat(cfg.LedgerPath); err == nil {
		led, err = ledger.Open(cfg.LedgerPath)
		if err != nil {
			return err
		}
		defer led.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSLUG\tTITLE\tCATEGORY\tFEATURED\tPOSTED")
	for _, a := range articles {
		var posted string
		if led != nil {
			for _, p := range []ledger.Platform{ledger.PlatformTwitter, ledger.PlatformMedium} {
				ok, err := led.IsPublished(a.Slug, p)
				if err != nil {
					return err
				}
				if ok {
					if posted != "" {
						posted += ","
					}
					posted += string(p)
				}
			}
		}
		featured := ""
		if a.Featured {
			featured = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Date, a.Slug, a.Title, a.Category, featured, posted)
	}
	return w.Flush()
}
