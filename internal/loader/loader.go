// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package loader reads chat export files and builds a Conversation.
// Exports are JSON (or YAML) documents with a top-level "messages" list;
// each message carries a role and content that may be nested in blocks,
// steps, or alternative versions.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chat-export/pkg/types"
)

const unknownRole = "unknown"

// Options controls how messages are extracted.
type Options struct {
	// Raw keeps message content as exported, skipping Clean.
	Raw bool

	// Logger receives warnings for skipped messages. Nil discards them.
	Logger *zerolog.Logger
}

// Load reads the export at path and returns its conversation. It returns an
// error wrapping types.ErrIO when the file cannot be read and types.ErrParse
// when the content is not a valid export. No partial conversation is
// returned on failure.
func Load(path string, opts Options) (*types.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", path, types.ErrIO, err)
	}

	doc, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	root, _ := doc.(map[string]any)
	entries, _ := root["messages"].([]any)

	conv := &types.Conversation{
		Source:   path,
		Messages: make([]types.Message, 0, len(entries)),
	}
	for i, e := range entries {
		raw, _ := e.(map[string]any)
		msg, ok := buildMessage(raw, i, opts.Raw, log)
		if !ok {
			continue
		}
		msg.Index = len(conv.Messages)
		conv.Messages = append(conv.Messages, msg)
	}

	log.Debug().
		Str("path", path).
		Int("entries", len(entries)).
		Int("messages", conv.Len()).
		Msg("loaded conversation")
	return conv, nil
}

// decode parses data as YAML when path has a YAML extension and as JSON
// otherwise. Binary content is rejected before parsing.
func decode(path string, data []byte) (any, error) {
	if !isText(data) {
		mt := mimetype.Detect(data)
		return nil, fmt.Errorf("%s: %w: unexpected content type %s", path, types.ErrParse, mt.String())
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w: invalid YAML: %w", path, types.ErrParse, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w: invalid JSON: %w", path, types.ErrParse, err)
		}
	}
	return doc, nil
}

// isText reports whether mimetype places data under text/plain. JSON, YAML,
// and empty input all qualify.
func isText(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}

// buildMessage converts one export entry into a Message. It reports false
// when the entry has nothing to render.
func buildMessage(raw map[string]any, pos int, keepRaw bool, log zerolog.Logger) (types.Message, bool) {
	src := raw
	if versions, ok := raw["versions"].([]any); ok {
		selected := intValue(raw["currentlySelected"])
		if selected < 0 || selected >= len(versions) {
			log.Warn().
				Int("message", pos).
				Int("currentlySelected", selected).
				Int("versions", len(versions)).
				Msg("currentlySelected index out of range, skipping message")
			return types.Message{}, false
		}
		src, _ = versions[selected].(map[string]any)
	}

	role, _ := src["role"].(string)
	if role == "" {
		role = unknownRole
	}

	content := ExtractContent(src)
	if !keepRaw {
		content = Clean(content)
	}
	if strings.TrimSpace(content) == "" {
		log.Debug().Int("message", pos).Str("role", role).Msg("empty content, skipping message")
		return types.Message{}, false
	}

	msg := types.Message{Role: role, Content: content}
	if ts, ok := timestampValue(raw["timestamp"]); ok {
		msg.Timestamp = ts
	}
	return msg, true
}
