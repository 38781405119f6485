// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds. Every failure returned by the pipeline wraps exactly one of
// these so callers can tell which class of problem ended the run.
var (
	// ErrIO reports a file that could not be opened, read, or written.
	ErrIO = errors.New("i/o error")

	// ErrParse reports input that does not match the export record structure.
	ErrParse = errors.New("parse error")

	// ErrConfig reports an invalid output format or a missing argument.
	ErrConfig = errors.New("configuration error")
)

// Kind returns the error kind wrapped by err, or nil when err carries none.
func Kind(err error) error {
	for _, k := range []error{ErrIO, ErrParse, ErrConfig} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
