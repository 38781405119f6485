// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/chat-export/pkg/types"
)

// formatAliases maps accepted --output-format spellings to formats.
var formatAliases = map[string]types.OutputFormat{
	"text":      types.OutputText,
	"txt":       types.OutputText,
	"plaintext": types.OutputText,
	"markdown":  types.OutputMarkdown,
	"md":        types.OutputMarkdown,
	"html":      types.OutputHTML,
}

// ResolveFormat picks the output format. An explicit name wins; otherwise
// the output path extension decides (.html/.htm for HTML, .md/.markdown for
// Markdown, anything else plaintext). Unknown names wrap types.ErrConfig.
func ResolveFormat(name, outputPath string) (types.OutputFormat, error) {
	if name != "" {
		f, ok := formatAliases[strings.ToLower(name)]
		if !ok {
			return "", fmt.Errorf("%w: unsupported output format %q: use text, markdown, or html", types.ErrConfig, name)
		}
		return f, nil
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".html", ".htm":
		return types.OutputHTML, nil
	case ".md", ".markdown":
		return types.OutputMarkdown, nil
	default:
		return types.OutputText, nil
	}
}

// DefaultOutputPath returns <input-base>_formatted.<ext> next to the input.
func DefaultOutputPath(inputPath string, format types.OutputFormat) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "_formatted." + format.Extension()
}
