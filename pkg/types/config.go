// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OutputFormat selects how a conversation is rendered.
type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputMarkdown OutputFormat = "markdown"
	OutputHTML     OutputFormat = "html"
)

// Extension returns the file extension (without dot) used for default output
// paths in this format.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputMarkdown:
		return "md"
	case OutputHTML:
		return "html"
	default:
		return "txt"
	}
}

// ConversionConfig holds the settings for one conversion run.
type ConversionConfig struct {
	// InputPath is the export file to convert.
	InputPath string `json:"input_path" yaml:"input_path" validate:"required"`

	// OutputPath is where the rendered document is written. When empty the
	// pipeline derives <input-base>_formatted.<ext>.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Format selects the renderer. When empty it is inferred from the
	// output path extension.
	Format OutputFormat `json:"output_format,omitempty" yaml:"output_format,omitempty"`

	// Timestamps includes message timestamps in the rendered labels.
	Timestamps bool `json:"timestamps" yaml:"timestamps"`

	// Raw disables content cleaning (link stripping, entity unescaping).
	Raw bool `json:"raw" yaml:"raw"`

	// Timezone is the IANA zone used to print timestamps (default: local).
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty" validate:"omitempty,timezone"`
}

// Validate checks required fields and the timezone name. Violations wrap
// ErrConfig.
func (c ConversionConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: invalid conversion settings: %w", ErrConfig, err)
	}
	return nil
}
