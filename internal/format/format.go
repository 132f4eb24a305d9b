// Copyright Punit Mishra, 2026. All rights reserved.

// Package format builds sharing-ready payloads (tweets, Medium posts)
// from article metadata.
package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/punitmishra/publish-engine/pkg/types"
)

// tweetLimit is the Twitter (X) character limit. Counted in runes; see
// Tweet for the truncation rule.
const tweetLimit = 280

const (
	titlePrefix = "📝 "
	linkPrefix  = "🔗 "
	ellipsis    = "..."
	maxHashtags = 3
	maxTags     = 5
)

// Tweet builds the outbound tweet text for an article:
//
//	📝 <title>
//
//	#Tag1 #Tag2 #Tag3
//
//	🔗 <baseURL>/blog/<slug>
//
// The blank-line structure is fixed even when the article has no tags.
// If the full payload would exceed 280 runes the title is truncated with
// a trailing ellipsis; hashtags and the link line are never shortened.
// Truncation applies to the title only: should the hashtags and link
// alone ever exceed the limit, the output exceeds it too. With the
// article's usual short tags and slug the result stays within 280 runes.
func Tweet(a types.Article, baseURL string) string {
	hashtags := Hashtags(a.Tags)
	link := linkPrefix + a.CanonicalURL(baseURL)

	// Budget for the title: the limit minus every fixed part.
	fixed := utf8.RuneCountInString(titlePrefix) + len("\n\n") + len("\n\n")
	budget := tweetLimit - fixed - utf8.RuneCountInString(hashtags) - utf8.RuneCountInString(link)

	title := a.Title
	if utf8.RuneCountInString(title) > budget {
		title = truncate(title, budget)
	}

	return titlePrefix + title + "\n\n" + hashtags + "\n\n" + link
}

// Hashtags renders up to three tags as space-separated hashtags, dropping
// any rune that is not a letter or digit ("C++" becomes "#C").
func Hashtags(tags []string) string {
	if len(tags) > maxHashtags {
		tags = tags[:maxHashtags]
	}
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		cleaned := stripNonAlphanumeric(tag)
		if cleaned == "" {
			continue
		}
		parts = append(parts, "#"+cleaned)
	}
	return strings.Join(parts, " ")
}

// MediumArticle wraps the article body into a Medium cross-post payload:
// a level-1 heading, the body, a horizontal rule, and an attribution
// footer pointing at the canonical URL. Tags beyond the first five are
// dropped, order preserved.
func MediumArticle(a types.Article, body, baseURL string, status types.PublishStatus) types.MediumPayload {
	canonical := a.CanonicalURL(baseURL)

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(a.Title)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n---\n\n")
	b.WriteString("*Originally published at [")
	b.WriteString(strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://"))
	b.WriteString("](")
	b.WriteString(canonical)
	b.WriteString(")*\n")

	tags := a.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	return types.MediumPayload{
		Title:         a.Title,
		ContentFormat: "markdown",
		Content:       b.String(),
		Tags:          tags,
		CanonicalURL:  canonical,
		PublishStatus: status,
		License:       "all-rights-reserved",
	}
}

// truncate shortens s to at most budget runes, ellipsis included. A budget
// too small for the ellipsis itself yields an empty string.
func truncate(s string, budget int) string {
	keep := budget - len(ellipsis)
	if keep <= 0 {
		return ""
	}
	runes := []rune(s)
	if keep >= len(runes) {
		return s
	}
	return string(runes[:keep]) + ellipsis
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
