// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the chat-export pipeline:
// the loaded Conversation, stage configuration, and the error kinds reported
// by the loader, formatter, and writer.
package types

import "time"

// Message is one entry in a conversation: a sender role and its text.
type Message struct {
	// Role identifies the sender (e.g. "user", "assistant").
	Role string `json:"role" yaml:"role"`

	// Content is the cleaned message text. It may span multiple lines.
	Content string `json:"content" yaml:"content"`

	// Timestamp is when the message was sent. Zero when the export has none.
	Timestamp time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Index is the position of the message in the conversation.
	Index int `json:"index" yaml:"index"`
}

// HasTimestamp reports whether the export carried a timestamp for the message.
func (m Message) HasTimestamp() bool {
	return !m.Timestamp.IsZero()
}

// Conversation is the ordered list of messages loaded from one export file.
// It is built once by the loader and never mutated afterwards.
type Conversation struct {
	// Source is the path the conversation was loaded from.
	Source string `json:"source" yaml:"source"`

	// Messages holds the messages in export order.
	Messages []Message `json:"messages" yaml:"messages"`
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Messages)
}

// Roles returns the role of every message in order.
func (c *Conversation) Roles() []string {
	if c == nil {
		return nil
	}
	roles := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		roles[i] = m.Role
	}
	return roles
}
