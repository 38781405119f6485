// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/chat-export/pkg/types"
)

// WriteOutput writes content verbatim to path, creating missing parent
// directories and truncating an existing file. Failures wrap types.ErrIO;
// the file's state after a failed write is undefined.
func WriteOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w: %w", dir, types.ErrIO, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", path, types.ErrIO, err)
	}
	return nil
}
