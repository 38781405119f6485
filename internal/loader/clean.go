// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"html"
	"regexp"
	"strings"
)

var (
	// markdownLink matches [label](target).
	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

	// jsonArtifact matches inline {...} fragments (status payloads, debug
	// info) that chat clients leave in exported text, with optional quotes.
	jsonArtifact = regexp.MustCompile(`(?s)"?\{.*?\}"?`)
)

// Clean normalizes exported message text: Markdown links are reduced to
// their label, HTML entities are decoded, inline JSON artifacts are dropped,
// and surrounding whitespace is trimmed.
func Clean(content string) string {
	content = markdownLink.ReplaceAllString(content, "$1")
	content = html.UnescapeString(content)
	content = jsonArtifact.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}
