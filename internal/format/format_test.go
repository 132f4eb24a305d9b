// Copyright Punit Mishra, 2026. All rights reserved.

package format

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/punitmishra/publish-engine/pkg/types"
)

const testBaseURL = "https://punitmishra.github.io"

func TestTweetReferenceShape(t *testing.T) {
	a := types.Article{
		Title: "Test Post",
		Slug:  "test-post",
		Tags:  []string{"Rust", "CLI", "Tools", "Extra"},
	}

	got := Tweet(a, testBaseURL)

	if !strings.HasPrefix(got, "📝 Test Post") {
		t.Errorf("tweet does not start with emoji title line:\n%s", got)
	}
	if !strings.Contains(got, "#Rust #CLI #Tools") {
		t.Errorf("tweet missing first-three hashtags:\n%s", got)
	}
	if strings.Contains(got, "#Extra") {
		t.Errorf("tweet includes fourth tag:\n%s", got)
	}
	if !strings.HasSuffix(got, "🔗 https://punitmishra.github.io/blog/test-post") {
		t.Errorf("tweet does not end with the canonical link:\n%s", got)
	}
}

func TestTweetNeverExceedsLimit(t *testing.T) {
	titles := []string{
		"short",
		strings.Repeat("a", 279),
		strings.Repeat("a", 280),
		strings.Repeat("long title ", 100),
		strings.Repeat("日本語のタイトル", 60),
	}
	for _, title := range titles {
		a := types.Article{
			Title: title,
			Slug:  "some-article-with-a-reasonably-long-slug",
			Tags:  []string{"Engineering", "Distributed Systems", "Go"},
		}
		got := Tweet(a, testBaseURL)
		if n := utf8.RuneCountInString(got); n > 280 {
			t.Errorf("tweet length = %d runes for title %q..., want <= 280", n, title[:10])
		}
	}
}

func TestTweetTruncatedTitleHasEllipsis(t *testing.T) {
	a := types.Article{
		Title: strings.Repeat("x", 400),
		Slug:  "s",
	}
	got := Tweet(a, testBaseURL)
	lines := strings.Split(got, "\n")
	if !strings.HasSuffix(lines[0], "...") {
		t.Errorf("truncated title line = %q, want trailing ellipsis", lines[0])
	}
}

func TestTweetTruncationIsConfinedToTitle(t *testing.T) {
	// When the fixed parts leave no room at all, the title empties but
	// hashtags and link come through untouched.
	a := types.Article{
		Title: "Any Title",
		Slug:  "s",
		Tags:  []string{strings.Repeat("VeryLongTag", 10), strings.Repeat("AnotherTag", 10), strings.Repeat("ThirdTag", 12)},
	}
	got := Tweet(a, testBaseURL)

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("tweet has %d lines, want 5", len(lines))
	}
	if lines[0] != titlePrefix {
		t.Errorf("title line = %q, want bare prefix %q", lines[0], titlePrefix)
	}
	if want := Hashtags(a.Tags); lines[2] != want {
		t.Errorf("hashtags line = %q, want untouched %q", lines[2], want)
	}
	if !strings.HasSuffix(lines[4], "/blog/s") {
		t.Errorf("link line = %q, want untouched link", lines[4])
	}
}

func TestTweetEmptyTagsKeepsStructure(t *testing.T) {
	a := types.Article{Title: "No Tags Here", Slug: "no-tags"}
	got := Tweet(a, testBaseURL)

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("tweet has %d lines, want 5:\n%q", len(lines), got)
	}
	if lines[1] != "" || lines[3] != "" {
		t.Errorf("blank separator lines missing: %q", lines)
	}
	if lines[2] != "" {
		t.Errorf("hashtags line = %q, want empty", lines[2])
	}
}

func TestHashtags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"Go"}, "#Go"},
		{"caps at three", []string{"A", "B", "C", "D"}, "#A #B #C"},
		{"strips punctuation", []string{"C++", "Node.js", "CI/CD"}, "#C #Nodejs #CICD"},
		{"spaces removed", []string{"Distributed Systems"}, "#DistributedSystems"},
		{"all-symbol tag dropped", []string{"!!!", "Go"}, "#Go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hashtags(tt.tags); got != tt.want {
				t.Errorf("Hashtags(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestMediumArticle(t *testing.T) {
	a := types.Article{
		Title: "Scaling Static Sites",
		Slug:  "scaling-static-sites",
		Tags:  []string{"Web", "Performance", "CDN", "Caching", "Edge", "Extra", "More"},
	}
	body := "Intro paragraph.\n\n## Details\n\nMore text."

	got := MediumArticle(a, body, testBaseURL, types.StatusDraft)

	if got.Title != a.Title {
		t.Errorf("Title = %q, want %q", got.Title, a.Title)
	}
	if got.ContentFormat != "markdown" {
		t.Errorf("ContentFormat = %q, want markdown", got.ContentFormat)
	}
	if len(got.Tags) != 5 {
		t.Fatalf("len(Tags) = %d, want 5", len(got.Tags))
	}
	for i, want := range []string{"Web", "Performance", "CDN", "Caching", "Edge"} {
		if got.Tags[i] != want {
			t.Errorf("Tags[%d] = %q, want %q", i, got.Tags[i], want)
		}
	}
	if got.CanonicalURL != "https://punitmishra.github.io/blog/scaling-static-sites" {
		t.Errorf("CanonicalURL = %q", got.CanonicalURL)
	}
	if got.PublishStatus != types.StatusDraft {
		t.Errorf("PublishStatus = %q, want draft", got.PublishStatus)
	}
	if got.License != "all-rights-reserved" {
		t.Errorf("License = %q", got.License)
	}

	if !strings.HasPrefix(got.Content, "# Scaling Static Sites\n\n") {
		t.Errorf("content missing heading:\n%s", got.Content)
	}
	if !strings.Contains(got.Content, body) {
		t.Errorf("content missing body:\n%s", got.Content)
	}
	if !strings.Contains(got.Content, "\n---\n") {
		t.Errorf("content missing horizontal rule:\n%s", got.Content)
	}
	if !strings.Contains(got.Content, "[punitmishra.github.io](https://punitmishra.github.io/blog/scaling-static-sites)") {
		t.Errorf("content missing attribution link:\n%s", got.Content)
	}
}

func TestMediumArticleShortTagList(t *testing.T) {
	a := types.Article{Title: "T", Slug: "t", Tags: []string{"One", "Two"}}
	got := MediumArticle(a, "body", testBaseURL, types.StatusPublic)
	if len(got.Tags) != 2 {
		t.Errorf("len(Tags) = %d, want 2", len(got.Tags))
	}
}
