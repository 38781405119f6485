// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chat-export/pkg/types"
)

func sampleConversation() *types.Conversation {
	return &types.Conversation{
		Source: "chat.json",
		Messages: []types.Message{
			{Role: "user", Content: "Is a < b & c > d?", Timestamp: time.Unix(1700000000, 0), Index: 0},
			{Role: "assistant", Content: "Yes.\nAlways.", Index: 1},
		},
	}
}

func TestRender_Text(t *testing.T) {
	tests := []struct {
		name string
		conv *types.Conversation
		opts Options
		want string
	}{
		{
			name: "labels and verbatim content",
			conv: sampleConversation(),
			opts: Options{Format: types.OutputText},
			want: "User:\nIs a < b & c > d?\n\nAssistant:\nYes.\nAlways.\n\n",
		},
		{
			name: "timestamps only where present",
			conv: sampleConversation(),
			opts: Options{Format: types.OutputText, Timestamps: true, Location: time.UTC},
			want: "User [2023-11-14 22:13:20]:\nIs a < b & c > d?\n\nAssistant:\nYes.\nAlways.\n\n",
		},
		{
			name: "empty conversation",
			conv: &types.Conversation{},
			opts: Options{Format: types.OutputText},
			want: "",
		},
		{
			name: "nil conversation",
			conv: nil,
			opts: Options{Format: types.OutputText},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.conv, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Markdown(t *testing.T) {
	got, err := Render(sampleConversation(), Options{Format: types.OutputMarkdown})
	require.NoError(t, err)

	want := "**User:**\n\nIs a < b & c > d?\n\n**Assistant:**\n\nYes.\n\nAlways.\n\n"
	assert.Equal(t, want, got)
}

func TestRender_HTML(t *testing.T) {
	got, err := Render(sampleConversation(), Options{Format: types.OutputHTML, Title: "chat.json"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(got, "</html>\n"))
	assert.Contains(t, got, "<title>chat.json</title>")
	assert.Contains(t, got, "Is a &lt; b &amp; c &gt; d?")
	assert.NotContains(t, got, "a < b")
	assert.Equal(t, 2, strings.Count(got, `<div class="message `))
	assert.Contains(t, got, `<div class="message user">`)
	assert.Less(t, strings.Index(got, "<h3>User</h3>"), strings.Index(got, "<h3>Assistant</h3>"))
}

func TestRender_HTMLEscapesRole(t *testing.T) {
	conv := &types.Conversation{Messages: []types.Message{
		{Role: "<script>", Content: "<img src=x onerror=alert(1)>"},
	}}

	got, err := Render(conv, Options{Format: types.OutputHTML})
	require.NoError(t, err)

	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "<img")
	assert.Contains(t, got, "&lt;img src=x onerror=alert(1)&gt;")
}

func TestRender_HTMLEmpty(t *testing.T) {
	got, err := Render(&types.Conversation{}, Options{Format: types.OutputHTML})
	require.NoError(t, err)

	assert.Contains(t, got, "<title>Conversation</title>")
	assert.Contains(t, got, "<body>")
	assert.Contains(t, got, "</body>\n</html>")
	assert.NotContains(t, got, `class="message`)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(sampleConversation(), Options{Format: "pdf"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConfig)
	assert.Contains(t, err.Error(), `"pdf"`)
}

func TestRender_PreservesOrderAndCount(t *testing.T) {
	const n = 25
	conv := &types.Conversation{}
	for i := 0; i < n; i++ {
		conv.Messages = append(conv.Messages, types.Message{
			Role:    fmt.Sprintf("speaker%02d", i),
			Content: fmt.Sprintf("message %d", i),
			Index:   i,
		})
	}

	for _, format := range []types.OutputFormat{types.OutputText, types.OutputMarkdown, types.OutputHTML} {
		t.Run(string(format), func(t *testing.T) {
			got, err := Render(conv, Options{Format: format})
			require.NoError(t, err)

			last := -1
			for i := 0; i < n; i++ {
				label := fmt.Sprintf("Speaker%02d", i)
				assert.Equal(t, 1, strings.Count(got, label), "label %s", label)
				idx := strings.Index(got, label)
				assert.Greater(t, idx, last, "label %s out of order", label)
				last = idx
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "User", capitalize("user"))
	assert.Equal(t, "Assistant", capitalize("ASSISTANT"))
	assert.Equal(t, "Élan", capitalize("élan"))
	assert.Equal(t, "", capitalize(""))
}
