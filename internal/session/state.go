package session

// State is the application's position in the captioning workflow. It is
// owned by the Controller and mutated only on its run loop.
type State int

const (
	// Idle is the startup state before the model load is dispatched.
	Idle State = iota

	// ModelLoading means the caption model is being brought up.
	ModelLoading

	// Ready means the model is loaded and no image is selected.
	Ready

	// ImageLoaded means an image is selected and no caption exists.
	ImageLoaded

	// Captioning means a caption request is in flight.
	Captioning

	// CaptionReady means a caption exists for the selected image.
	CaptionReady

	// Speaking means the caption is being read aloud.
	Speaking

	// ModelFailed is the terminal state after an unrecoverable model
	// load failure.
	ModelFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ModelLoading:
		return "model loading"
	case Ready:
		return "ready"
	case ImageLoaded:
		return "image loaded"
	case Captioning:
		return "captioning"
	case CaptionReady:
		return "caption ready"
	case Speaking:
		return "speaking"
	case ModelFailed:
		return "model failed"
	default:
		return "unknown"
	}
}

// CanSelectImage reports whether a new image may be loaded. Allowed from
// every state once the model is up, including while a caption or speech
// task is still in flight; the stale task's completion is then dropped.
func (s State) CanSelectImage() bool {
	switch s {
	case Idle, ModelLoading, ModelFailed:
		return false
	default:
		return true
	}
}

// CanGenerate reports whether a caption may be requested.
func (s State) CanGenerate() bool {
	return s == ImageLoaded || s == CaptionReady
}

// CanSpeak reports whether the caption may be read aloud.
func (s State) CanSpeak() bool {
	return s == CaptionReady
}

// CanExport reports whether the caption may be exported.
func (s State) CanExport() bool {
	return s == CaptionReady
}

// Busy reports whether a background task is in flight.
func (s State) Busy() bool {
	return s == ModelLoading || s == Captioning || s == Speaking
}

// Session is the in-memory record of the selected image and its caption.
// Exactly one exists per running application.
type Session struct {
	ImagePath string
	Caption   string
}
