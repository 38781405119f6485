// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"math"
	"strings"
	"time"
)

const stepContentBlock = "contentBlock"

// ExtractContent collects the text of an export node. Objects yield their
// "text" field, else their "content", else the content blocks among their
// "steps", else their nested "messages". Lists concatenate each element
// followed by a newline.
func ExtractContent(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case []any:
		var b strings.Builder
		for _, elem := range v {
			b.WriteString(ExtractContent(elem))
			b.WriteByte('\n')
		}
		return b.String()
	case map[string]any:
		if text, ok := v["text"]; ok {
			return ExtractContent(text)
		}
		if content, ok := v["content"]; ok {
			return ExtractContent(content)
		}
		if steps, ok := v["steps"]; ok {
			return extractSteps(steps)
		}
		if messages, ok := v["messages"]; ok {
			return ExtractContent(messages)
		}
	}
	return ""
}

func extractSteps(steps any) string {
	list, _ := steps.([]any)
	var b strings.Builder
	for _, s := range list {
		step, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if kind, _ := step["type"].(string); kind != stepContentBlock {
			continue
		}
		b.WriteString(ExtractContent(step["content"]))
	}
	return b.String()
}

// intValue converts a decoded JSON or YAML number to int. Non-numbers are 0.
func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// timestampValue converts a Unix-seconds number to a time.
func timestampValue(v any) (time.Time, bool) {
	var secs float64
	switch n := v.(type) {
	case int:
		secs = float64(n)
	case int64:
		secs = float64(n)
	case uint64:
		secs = float64(n)
	case float64:
		secs = n
	default:
		return time.Time{}, false
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))), true
}
