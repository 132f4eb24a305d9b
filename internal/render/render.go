// Copyright Punit Mishra, 2026. All rights reserved.

// Package render converts article markdown into HTML for local preview.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// engine is configured once: GFM tables/strikethrough/autolinks plus
// typographic punctuation, matching how the site renders article bodies.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// Fragment renders markdown to an HTML fragment.
func Fragment(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// pageTemplate wraps a rendered fragment in a minimal standalone page.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', sans-serif; max-width: 720px; margin: 0 auto; padding: 32px 16px; line-height: 1.6;">
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))

// Page renders markdown into a complete HTML document titled title.
func Page(title, markdown string) (string, error) {
	fragment, err := Fragment(markdown)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = pageTemplate.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(fragment)})
	if err != nil {
		return "", fmt.Errorf("rendering preview page: %w", err)
	}
	return b.String(), nil
}
