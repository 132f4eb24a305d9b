// Copyright Punit Mishra, 2026. All rights reserved.

// Package article loads blog posts from the content directory. Each post
// is a <slug>.md file with a frontmatter block.
package article

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/punitmishra/publish-engine/internal/frontmatter"
	"github.com/punitmishra/publish-engine/pkg/types"
)

// Load reads the article with the given slug from dir and returns its
// metadata and markdown body.
//
// Malformed frontmatter degrades to empty metadata with a notice on
// stderr instead of failing the load; the site has always treated bad
// metadata as a soft error and the publishing flow keeps that behavior.
// A missing file is a hard error.
func Load(dir, slug string) (types.Article, string, error) {
	path := filepath.Join(dir, slug+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Article{}, "", fmt.Errorf("reading article %s: %w", path, err)
	}

	fields, body, err := frontmatter.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v; continuing with empty metadata\n", path, err)
		fields = frontmatter.Fields{}
		body = data
	}

	return fromFields(slug, fields), string(body), nil
}

// List reads every .md file in dir and returns the articles sorted
// newest-first by frontmatter date (ISO dates sort lexically); undated
// articles sort last. Files whose frontmatter fails to parse appear with
// empty metadata, matching Load.
func List(dir string) ([]types.Article, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var articles []types.Article
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		a, _, err := Load(dir, slug)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		di, dj := articles[i].Date, articles[j].Date
		if di == "" {
			return false
		}
		if dj == "" {
			return true
		}
		return di > dj
	})
	return articles, nil
}

func fromFields(slug string, f frontmatter.Fields) types.Article {
	return types.Article{
		Slug:     slug,
		Title:    f.Str("title"),
		Date:     f.Str("date"),
		Category: f.Str("category"),
		Tags:     f.List("tags"),
		ReadTime: f.Str("readTime"),
		Featured: f.Bool("featured"),
	}
}
