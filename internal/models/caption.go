package models

// CaptionResult is the wire format a caption inference server answers with.
type CaptionResult struct {
	Caption string `json:"caption"`
	Error   string `json:"error,omitempty"`
	Model   string `json:"model,omitempty"`
}
