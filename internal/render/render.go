// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats a Conversation as plaintext, Markdown, or HTML.
// Rendering is a pure function of the conversation and options: one block
// per message, in conversation order.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/chat-export/pkg/types"
)

// TimestampLayout is the layout used for message timestamps in labels.
const TimestampLayout = "2006-01-02 15:04:05"

const defaultTitle = "Conversation"

// Options controls rendering.
type Options struct {
	// Format selects the renderer.
	Format types.OutputFormat

	// Timestamps appends each message's timestamp to its label when present.
	Timestamps bool

	// Location is the zone timestamps are printed in (default time.Local).
	Location *time.Location

	// Title is the HTML document title (default "Conversation").
	Title string
}

// Render returns the document for conv in opts.Format. An unsupported
// format yields an error wrapping types.ErrConfig.
func Render(conv *types.Conversation, opts Options) (string, error) {
	switch opts.Format {
	case types.OutputText:
		return renderText(conv, opts), nil
	case types.OutputMarkdown:
		return renderMarkdown(conv, opts), nil
	case types.OutputHTML:
		return renderHTML(conv, opts)
	default:
		return "", fmt.Errorf("%w: unsupported output format %q: use text, markdown, or html", types.ErrConfig, opts.Format)
	}
}

// renderText writes "<Role>:\n<content>\n\n" per message, content verbatim.
func renderText(conv *types.Conversation, opts Options) string {
	var b strings.Builder
	for _, m := range messages(conv) {
		fmt.Fprintf(&b, "%s:\n%s\n\n", label(m, opts), m.Content)
	}
	return b.String()
}

// renderMarkdown writes a bold label and the content as its own paragraphs.
func renderMarkdown(conv *types.Conversation, opts Options) string {
	var b strings.Builder
	for _, m := range messages(conv) {
		fmt.Fprintf(&b, "**%s:**\n\n%s\n\n", label(m, opts), strings.ReplaceAll(m.Content, "\n", "\n\n"))
	}
	return b.String()
}

func messages(conv *types.Conversation) []types.Message {
	if conv == nil {
		return nil
	}
	return conv.Messages
}

// label is the capitalized role, followed by the timestamp when requested.
func label(m types.Message, opts Options) string {
	role := capitalize(m.Role)
	if !opts.Timestamps || !m.HasTimestamp() {
		return role
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return fmt.Sprintf("%s [%s]", role, m.Timestamp.In(loc).Format(TimestampLayout))
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
