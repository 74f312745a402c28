// Package session owns the application state machine and orchestrates the
// long-running caption and speech tasks behind it. All state lives behind a
// single run loop: user commands and task completions are funneled through
// one channel and applied strictly one at a time, so Session and State are
// never touched concurrently.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"captor/processing/captioner"
	"captor/processing/speech"
)

// TaskKind identifies a unit of deferred, potentially blocking work.
type TaskKind int

const (
	TaskLoadModel TaskKind = iota
	TaskCaption
	TaskSpeak
)

func (k TaskKind) String() string {
	switch k {
	case TaskLoadModel:
		return "load model"
	case TaskCaption:
		return "generate caption"
	case TaskSpeak:
		return "speak"
	default:
		return "unknown"
	}
}

// Command is a user request delivered through Controller.Request.
type Command interface{ command() }

// SelectImage loads a new image, clearing any previous caption.
type SelectImage struct{ Path string }

// GenerateCaption requests a caption for the selected image.
type GenerateCaption struct{}

// ReadAloud speaks the current caption.
type ReadAloud struct{}

// Export writes the current caption verbatim to Path as UTF-8 text.
type Export struct{ Path string }

// SetCaptionOptions updates the generation parameters for future captions.
type SetCaptionOptions struct{ Options captioner.Options }

// SetAutoSpeak toggles reading captions aloud as soon as they arrive.
type SetAutoSpeak struct{ On bool }

func (SelectImage) command()       {}
func (GenerateCaption) command()   {}
func (ReadAloud) command()         {}
func (Export) command()            {}
func (SetCaptionOptions) command() {}
func (SetAutoSpeak) command()      {}

// Notification describes a state or status change for the presentation
// layer. Err set means an error dialog should be shown; Rejected set means
// the last command was refused and Status holds the warning.
type Notification struct {
	State    State
	Session  Session
	Status   string
	Err      error
	Rejected bool
}

// Options configure a Controller.
type Options struct {
	Caption   captioner.Options
	AutoSpeak bool
	Notify    func(Notification)
}

type completion struct {
	kind  TaskKind
	id    uuid.UUID
	value string
	err   error
}

type event struct {
	cmd  Command
	done *completion
}

// Controller validates commands against the current state, runs blocking
// work on one-shot worker goroutines and applies their single completion
// back on the run loop.
type Controller struct {
	captions captioner.Service
	voice    speech.Synthesizer
	opts     Options

	events chan event

	state    State
	sess     Session
	inflight map[TaskKind]uuid.UUID
}

func New(captions captioner.Service, voice speech.Synthesizer, opts Options) *Controller {
	if opts.Notify == nil {
		opts.Notify = func(Notification) {}
	}

	return &Controller{
		captions: captions,
		voice:    voice,
		opts:     opts,
		events:   make(chan event, 16),
		state:    Idle,
		inflight: make(map[TaskKind]uuid.UUID),
	}
}

// Request posts a user command. Safe to call from any goroutine; the
// command is validated and applied on the run loop.
func (c *Controller) Request(cmd Command) {
	c.events <- event{cmd: cmd}
}

// Run dispatches the model load and then serves commands and task
// completions until ctx is cancelled. It must be the only goroutine ever
// running this controller.
func (c *Controller) Run(ctx context.Context) {
	c.state = ModelLoading
	c.dispatch(ctx, TaskLoadModel, func(ctx context.Context) (string, error) {
		return "", c.captions.Load(ctx)
	})
	c.notify("Loading model, please wait...")

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.events:
			if ev.done != nil {
				c.apply(ctx, *ev.done)
			} else {
				c.handle(ctx, ev.cmd)
			}
		}
	}
}

func (c *Controller) handle(ctx context.Context, cmd Command) {
	switch cmd := cmd.(type) {
	case SelectImage:
		if !c.state.CanSelectImage() {
			c.reject("Please wait for the model to load.")
			return
		}

		if _, err := os.Stat(cmd.Path); err != nil {
			c.notifyErr("Failed to load image", fmt.Errorf("load image: %w", err))
			return
		}

		// Invalidate in-flight work for the previous image so its late
		// completion cannot touch the new session.
		delete(c.inflight, TaskCaption)
		delete(c.inflight, TaskSpeak)

		c.sess = Session{ImagePath: cmd.Path}
		c.state = ImageLoaded
		c.notify("Image loaded: " + filepath.Base(cmd.Path))

	case GenerateCaption:
		switch {
		case c.state == Idle || c.state == ModelLoading || c.state == ModelFailed:
			c.reject("Please wait for the model to load.")
		case c.sess.ImagePath == "":
			c.reject("Please select an image first.")
		case !c.state.CanGenerate():
			c.reject("Caption generation is not available right now.")
		default:
			path := c.sess.ImagePath
			opts := c.opts.Caption

			c.sess.Caption = ""
			c.state = Captioning
			c.dispatch(ctx, TaskCaption, func(ctx context.Context) (string, error) {
				return c.captions.Generate(ctx, path, opts)
			})
			c.notify("Generating caption...")
		}

	case ReadAloud:
		switch {
		case c.sess.Caption == "":
			c.reject("Please generate a caption first.")
		case !c.state.CanSpeak():
			c.reject("Reading aloud is not available right now.")
		default:
			c.speak(ctx)
		}

	case Export:
		switch {
		case c.sess.Caption == "":
			c.reject("Please generate a caption first.")
		case !c.state.CanExport():
			c.reject("Export is not available right now.")
		default:
			if err := os.WriteFile(cmd.Path, []byte(c.sess.Caption), 0644); err != nil {
				c.notifyErr("Export failed", fmt.Errorf("export caption: %w", err))
				return
			}
			c.notify("Caption exported to " + filepath.Base(cmd.Path))
		}

	case SetCaptionOptions:
		c.opts.Caption = cmd.Options

	case SetAutoSpeak:
		c.opts.AutoSpeak = cmd.On
	}
}

func (c *Controller) apply(ctx context.Context, done completion) {
	if c.inflight[done.kind] != done.id {
		slog.Debug("dropping stale completion", "task", done.kind.String())
		return
	}
	delete(c.inflight, done.kind)

	switch done.kind {
	case TaskLoadModel:
		if done.err != nil {
			c.state = ModelFailed
			c.notifyErr("Failed to load model. Please restart the application.", done.err)
			return
		}
		c.state = Ready
		c.notify("Model loaded successfully! Select an image to begin.")

	case TaskCaption:
		if done.err != nil {
			c.state = ImageLoaded
			c.notifyErr("Caption generation failed", done.err)
			return
		}

		c.sess.Caption = done.value
		c.state = CaptionReady
		c.notify("Caption generated successfully!")

		if c.opts.AutoSpeak {
			c.speak(ctx)
		}

	case TaskSpeak:
		c.state = CaptionReady
		if done.err != nil {
			c.notifyErr("Reading aloud failed", done.err)
			return
		}
		c.notify("Finished reading caption.")
	}
}

func (c *Controller) speak(ctx context.Context) {
	text := c.sess.Caption

	c.state = Speaking
	c.dispatch(ctx, TaskSpeak, func(ctx context.Context) (string, error) {
		return "", c.voice.Speak(ctx, text)
	})
	c.notify("Reading caption aloud...")
}

// dispatch runs fn on a fresh one-shot goroutine and guarantees exactly one
// completion is posted back, converting panics into failures. The uuid lets
// apply drop completions from superseded tasks.
func (c *Controller) dispatch(ctx context.Context, kind TaskKind, fn func(context.Context) (string, error)) {
	id := uuid.New()
	c.inflight[kind] = id

	go func() {
		var value string
		var err error

		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s task panicked: %v", kind, r)
			}
			select {
			case c.events <- event{done: &completion{kind: kind, id: id, value: value, err: err}}:
			case <-ctx.Done():
			}
		}()

		value, err = fn(ctx)
	}()
}

func (c *Controller) notify(status string) {
	c.opts.Notify(Notification{State: c.state, Session: c.sess, Status: status})
}

func (c *Controller) notifyErr(status string, err error) {
	c.opts.Notify(Notification{State: c.state, Session: c.sess, Status: status, Err: err})
}

func (c *Controller) reject(status string) {
	slog.Debug("command rejected", "state", c.state.String(), "reason", status)
	c.opts.Notify(Notification{State: c.state, Session: c.sess, Status: status, Rejected: true})
}
