// Package speech turns caption text into audible output through a pluggable
// text-to-speech engine.
package speech

import (
	"context"
	"errors"
)

// ErrSpeech marks a recoverable speech synthesis or playback failure.
var ErrSpeech = errors.New("speech synthesis failed")

// Synthesizer speaks text out loud. Speak blocks until the utterance has
// finished playing; there is no cancellation mid-utterance.
type Synthesizer interface {
	// Name identifies the engine for status display.
	Name() string

	// Available reports whether the engine can run on this machine.
	Available() bool

	// Speak synthesizes and plays text, returning once playback ends.
	Speak(ctx context.Context, text string) error
}
