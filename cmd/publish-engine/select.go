// Copyright Punit Mishra, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/punitmishra/publish-engine/internal/article"
	"github.com/punitmishra/publish-engine/internal/ledger"
	"github.com/punitmishra/publish-engine/pkg/types"
)

// selectArticle picks the article to publish: the one named by slug, or
// with daily set, the newest article without a ledger row on platform.
// A nil article with nil error means everything is already posted.
func selectArticle(cfg types.PublishConfig, led *ledger.Ledger, slug string, daily bool, platform ledger.Platform) (*types.Article, string, error) {
	if !daily {
		a, body, err := article.Load(cfg.Site.ContentDir, slug)
		if err != nil {
			return nil, "", err
		}
		return &a, body, nil
	}

	articles, err := article.List(cfg.Site.ContentDir)
	if err != nil {
		return nil, "", err
	}
	if len(articles) == 0 {
		return nil, "", fmt.Errorf("no articles found in %s", cfg.Site.ContentDir)
	}

	pick, err := led.LatestUnpublished(articles, platform)
	if err != nil {
		return nil, "", err
	}
	if pick == nil {
		return nil, "", nil
	}

	a, body, err := article.Load(cfg.Site.ContentDir, pick.Slug)
	if err != nil {
		return nil, "", err
	}
	return &a, body, nil
}
