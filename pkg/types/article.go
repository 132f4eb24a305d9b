// Copyright Punit Mishra, 2026. All rights reserved.

package types

// Article holds the frontmatter metadata of one blog post. It is parsed
// once per file and never mutated afterwards.
type Article struct {
	// Slug is the URL-safe identifier, derived from the article's
	// filename (e.g. "building-a-cli-in-rust").
	Slug string `json:"slug" yaml:"slug"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Date is the publication date as written in the frontmatter
	// (ISO form, "2024-01-15").
	Date string `json:"date" yaml:"date"`

	// Category is the single top-level category.
	Category string `json:"category" yaml:"category"`

	// Tags lists the article tags in source order.
	Tags []string `json:"tags" yaml:"tags"`

	// ReadTime is the human-readable reading estimate ("6 min read").
	ReadTime string `json:"read_time" yaml:"readTime"`

	// Featured marks articles pinned on the site's landing page.
	Featured bool `json:"featured" yaml:"featured"`
}

// CanonicalURL returns the authoritative URL for the article on the site.
func (a Article) CanonicalURL(baseURL string) string {
	return baseURL + "/blog/" + a.Slug
}

// MediumPayload is the request body for a Medium cross-post. Derived from
// an Article plus its markdown body; never persisted.
type MediumPayload struct {
	Title string `json:"title"`

	// ContentFormat is always "markdown".
	ContentFormat string `json:"contentFormat"`

	// Content is the markdown document: heading, body, attribution footer.
	Content string `json:"content"`

	// Tags holds at most five tags, in source order.
	Tags []string `json:"tags"`

	// CanonicalURL points back at the original post to avoid
	// duplicate-content penalties.
	CanonicalURL string `json:"canonicalUrl"`

	PublishStatus PublishStatus `json:"publishStatus"`

	License string `json:"license"`
}
