// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pdiddy/chat-export/pkg/types"
)

// htmlDocument wraps one block per message in a static page. html/template
// escapes every interpolated role and content value.
const htmlDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.message { margin-bottom: 1.5rem; }
.message h3 { margin: 0 0 0.25rem; }
.message p { margin: 0; white-space: pre-wrap; }
</style>
</head>
<body>
{{- range .Messages }}
<div class="message {{ .Role | lower | replace " " "-" }}">
<h3>{{ .Label }}</h3>
<p>{{ .Content }}</p>
</div>
{{- end }}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("conversation").Funcs(sprig.FuncMap()).Parse(htmlDocument))

type htmlPage struct {
	Title    string
	Messages []htmlMessage
}

type htmlMessage struct {
	Role    string
	Label   string
	Content string
}

func renderHTML(conv *types.Conversation, opts Options) (string, error) {
	page := htmlPage{Title: opts.Title}
	if page.Title == "" {
		page.Title = defaultTitle
	}
	for _, m := range messages(conv) {
		page.Messages = append(page.Messages, htmlMessage{
			Role:    m.Role,
			Label:   label(m, opts),
			Content: m.Content,
		})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("executing HTML template: %w", err)
	}
	return buf.String(), nil
}
