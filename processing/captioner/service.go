// Package captioner generates natural-language captions for images using a
// pretrained vision-language model behind a pluggable backend.
package captioner

import (
	"context"
	"errors"
	"strings"
)

// FailedPlaceholder is returned per item by GenerateMany when a caption
// could not be produced.
const FailedPlaceholder = "unable to generate caption"

var (
	// ErrCaption marks a recoverable caption generation failure.
	ErrCaption = errors.New("caption generation failed")

	// ErrModelLoad marks a fatal failure to bring the model up.
	ErrModelLoad = errors.New("caption model unavailable")
)

// Options control caption generation.
type Options struct {
	MaxLength int
	BeamWidth int
}

func (o Options) withDefaults() Options {
	if o.MaxLength <= 0 {
		o.MaxLength = 50
	}
	if o.BeamWidth <= 0 {
		o.BeamWidth = 4
	}
	return o
}

// Service produces captions for images on disk.
type Service interface {
	// Name identifies the backend for status display.
	Name() string

	// Load brings the model up. Must be called once before Generate.
	Load(ctx context.Context) error

	// Generate returns a non-empty caption for the image at path, or an
	// error wrapping ErrCaption.
	Generate(ctx context.Context, path string, opts Options) (string, error)
}

// GenerateMany captions each path in order. It never fails outright:
// per-item failures degrade to FailedPlaceholder.
func GenerateMany(ctx context.Context, svc Service, paths []string, opts Options) []string {
	captions := make([]string, 0, len(paths))
	for _, p := range paths {
		text, err := svc.Generate(ctx, p, opts)
		if err != nil || strings.TrimSpace(text) == "" {
			captions = append(captions, FailedPlaceholder)
			continue
		}
		captions = append(captions, text)
	}
	return captions
}
