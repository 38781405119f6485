// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chat-export/pkg/types"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name   string
		flag   string
		output string
		want   types.OutputFormat
	}{
		{"explicit text", "text", "out.html", types.OutputText},
		{"explicit html", "HTML", "", types.OutputHTML},
		{"alias md", "md", "", types.OutputMarkdown},
		{"alias plaintext", "plaintext", "", types.OutputText},
		{"html extension", "", "out.html", types.OutputHTML},
		{"htm extension", "", "out.HTM", types.OutputHTML},
		{"markdown extension", "", "notes/out.markdown", types.OutputMarkdown},
		{"txt extension", "", "out.txt", types.OutputText},
		{"no output path", "", "", types.OutputText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFormat(tt.flag, tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFormat_Unsupported(t *testing.T) {
	_, err := ResolveFormat("docx", "out.docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConfig)
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format types.OutputFormat
		want   string
	}{
		{"chat.json", types.OutputText, "chat_formatted.txt"},
		{"exports/chat.json", types.OutputMarkdown, "exports/chat_formatted.md"},
		{"exports/chat.v2.yaml", types.OutputHTML, "exports/chat.v2_formatted.html"},
		{"noext", types.OutputText, "noext_formatted.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultOutputPath(tt.input, tt.format))
		})
	}
}
