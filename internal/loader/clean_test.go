// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markdown link", "read [this](http://x.io/a) now", "read this now"},
		{"entities", "a &lt;b&gt; &amp; c", "a <b> & c"},
		{"json artifact", `done {"status": "ok"} here`, "done  here"},
		{"quoted artifact spans lines", "x \"{\n\"k\": 1\n}\" y", "x  y"},
		{"trims whitespace", "\n\t padded \n", "padded"},
		{"plain text untouched", "a < b & c > d", "a < b & c > d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}
