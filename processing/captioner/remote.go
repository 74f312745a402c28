package captioner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"captor/internal/models"
)

const remoteReadTimeout = 2 * time.Minute

// Remote captions images through a local inference server speaking the
// captioner websocket protocol: generation parameters in the dial query,
// one binary JPEG frame in, one JSON result out.
type Remote struct {
	host string
}

func NewRemote(host string) *Remote {
	return &Remote{host: host}
}

func (r *Remote) Name() string {
	return "local inference server"
}

// Load checks the server is reachable. The model itself is loaded by the
// server; a successful dial means it is ready to accept work.
func (r *Remote) Load(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, r.endpoint(Options{}.withDefaults()), nil)
	if err != nil {
		return fmt.Errorf("%w: connect %s: %v", ErrModelLoad, r.host, err)
	}

	conn.Close()
	slog.Info("caption server reachable", "host", r.host)
	return nil
}

func (r *Remote) Generate(ctx context.Context, path string, opts Options) (string, error) {
	opts = opts.withDefaults()

	frame, err := encodeRGB(path)
	if err != nil {
		return "", err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, r.endpoint(opts), nil)
	if err != nil {
		return "", fmt.Errorf("%w: connect %s: %v", ErrCaption, r.host, err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return "", fmt.Errorf("%w: send image: %v", ErrCaption, err)
	}

	deadline := time.Now().Add(remoteReadTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetReadDeadline(deadline)

	_, message, err := conn.ReadMessage()
	if err != nil {
		return "", fmt.Errorf("%w: read result: %v", ErrCaption, err)
	}

	var result models.CaptionResult
	if err := json.Unmarshal(message, &result); err != nil {
		return "", fmt.Errorf("%w: decode result: %v", ErrCaption, err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrCaption, result.Error)
	}

	caption := strings.TrimSpace(result.Caption)
	if caption == "" {
		return "", fmt.Errorf("%w: server returned an empty caption", ErrCaption)
	}

	return caption, nil
}

func (r *Remote) endpoint(opts Options) string {
	q := url.Values{}
	q.Set("max_length", fmt.Sprint(opts.MaxLength))
	q.Set("num_beams", fmt.Sprint(opts.BeamWidth))

	u := url.URL{Scheme: "ws", Host: r.host, Path: "/caption", RawQuery: q.Encode()}
	return u.String()
}
