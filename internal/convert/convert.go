// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the chat-export pipeline: load an export file,
// render it, and write the document. Each run executes the three steps once,
// in order, and stops at the first failure.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/chat-export/internal/loader"
	"github.com/pdiddy/chat-export/internal/logger"
	"github.com/pdiddy/chat-export/internal/render"
	"github.com/pdiddy/chat-export/pkg/types"
)

// Result describes a completed conversion.
type Result struct {
	OutputPath string
	Format     types.OutputFormat
	Messages   int
	Bytes      int
}

// Run converts cfg.InputPath and writes the rendered document, printing a
// confirmation line to w. Errors name the failing step and wrap one of
// types.ErrIO, types.ErrParse, or types.ErrConfig. Nothing is written unless
// loading and rendering both succeed.
func Run(cfg types.ConversionConfig, log zerolog.Logger, w io.Writer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("config failed: %w", err)
	}

	format, err := ResolveFormat(string(cfg.Format), cfg.OutputPath)
	if err != nil {
		return Result{}, fmt.Errorf("config failed: %w", err)
	}
	loc, err := location(cfg.Timezone)
	if err != nil {
		return Result{}, fmt.Errorf("config failed: %w", err)
	}

	outPath := cfg.OutputPath
	if outPath == "" {
		outPath = DefaultOutputPath(cfg.InputPath, format)
	}

	loaderLog := logger.Component(log, "loader")
	conv, err := loader.Load(cfg.InputPath, loader.Options{
		Raw:    cfg.Raw,
		Logger: &loaderLog,
	})
	if err != nil {
		return Result{}, fmt.Errorf("load failed: %w", err)
	}

	doc, err := render.Render(conv, render.Options{
		Format:     format,
		Timestamps: cfg.Timestamps,
		Location:   loc,
		Title:      filepath.Base(cfg.InputPath),
	})
	if err != nil {
		return Result{}, fmt.Errorf("format failed: %w", err)
	}

	if err := WriteOutput(outPath, doc); err != nil {
		return Result{}, fmt.Errorf("write failed: %w", err)
	}

	log.Info().
		Str("input", cfg.InputPath).
		Str("output", outPath).
		Str("format", string(format)).
		Int("messages", conv.Len()).
		Msg("conversation converted")
	fmt.Fprintf(w, "Formatted conversation saved to %s\n", outPath)

	return Result{
		OutputPath: outPath,
		Format:     format,
		Messages:   conv.Len(),
		Bytes:      len(doc),
	}, nil
}

// location resolves an IANA zone name. Empty means local time.
func location(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", types.ErrConfig, name, err)
	}
	return loc, nil
}
