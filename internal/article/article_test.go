// Copyright Punit Mishra, 2026. All rights reserved.

package article

import (
	"os"
	"path/filepath"
	"testing"
)

func writeArticle(t *testing.T, dir, slug, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "first-post",
		"---\n"+
			"title: First Post\n"+
			"date: 2024-03-01\n"+
			"category: Engineering\n"+
			"tags: [Go, Testing]\n"+
			"readTime: 4 min read\n"+
			"featured: true\n"+
			"---\n"+
			"Hello world.\n")

	a, body, err := Load(dir, "first-post")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a.Slug != "first-post" || a.Title != "First Post" || a.Date != "2024-03-01" {
		t.Errorf("metadata = %+v", a)
	}
	if a.Category != "Engineering" || a.ReadTime != "4 min read" || !a.Featured {
		t.Errorf("metadata = %+v", a)
	}
	if len(a.Tags) != 2 || a.Tags[0] != "Go" || a.Tags[1] != "Testing" {
		t.Errorf("Tags = %v", a.Tags)
	}
	if body != "Hello world.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestLoadMalformedFrontmatterSoftFails(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "broken", "---\ntitle: [never closed\n---\nStill readable.\n")

	a, body, err := Load(dir, "broken")
	if err != nil {
		t.Fatalf("Load() error = %v, want soft fallback", err)
	}
	if a.Title != "" || len(a.Tags) != 0 {
		t.Errorf("metadata = %+v, want empty", a)
	}
	if body == "" {
		t.Error("body is empty, want original file content")
	}
	if a.Slug != "broken" {
		t.Errorf("Slug = %q", a.Slug)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(t.TempDir(), "nope"); err == nil {
		t.Fatal("Load() error = nil for missing file")
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "old", "---\ntitle: Old\ndate: 2022-05-01\n---\nx\n")
	writeArticle(t, dir, "new", "---\ntitle: New\ndate: 2024-06-15\n---\nx\n")
	writeArticle(t, dir, "mid", "---\ntitle: Mid\ndate: 2023-01-20\n---\nx\n")
	writeArticle(t, dir, "undated", "---\ntitle: Undated\n---\nx\n")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	articles, err := List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(articles) != 4 {
		t.Fatalf("len = %d, want 4", len(articles))
	}
	wantOrder := []string{"new", "mid", "old", "undated"}
	for i, slug := range wantOrder {
		if articles[i].Slug != slug {
			t.Errorf("articles[%d].Slug = %q, want %q", i, articles[i].Slug, slug)
		}
	}
}

func TestCanonicalURL(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "some-post", "---\ntitle: T\n---\nx\n")

	a, _, err := Load(dir, "some-post")
	if err != nil {
		t.Fatal(err)
	}
	got := a.CanonicalURL("https://punitmishra.github.io")
	if got != "https://punitmishra.github.io/blog/some-post" {
		t.Errorf("CanonicalURL = %q", got)
	}
}
