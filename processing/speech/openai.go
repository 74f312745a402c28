package speech

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultSpeechModel = "gpt-4o-mini-tts"
	defaultSpeechVoice = "nova"
)

// OpenAI synthesizes speech through the OpenAI audio API and plays the
// resulting WAV with the platform player.
type OpenAI struct {
	client openai.Client
	voice  string
}

func NewOpenAISpeech(apiKey, voice string) *OpenAI {
	if voice == "" {
		voice = defaultSpeechVoice
	}

	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		voice:  voice,
	}
}

func (o *OpenAI) Name() string {
	return defaultSpeechModel
}

func (o *OpenAI) Available() bool {
	_, err := exec.LookPath(playerCommand())
	return err == nil
}

func (o *OpenAI) Speak(ctx context.Context, text string) error {
	resp, err := o.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(defaultSpeechModel),
		Voice:          openai.AudioSpeechNewParamsVoice(o.voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatWAV,
	})
	if err != nil {
		return fmt.Errorf("%w: synthesize: %v", ErrSpeech, err)
	}
	defer resp.Body.Close()

	f, err := os.CreateTemp("", "captor-speech-*.wav")
	if err != nil {
		return fmt.Errorf("%w: temp audio file: %v", ErrSpeech, err)
	}
	defer os.Remove(f.Name())

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("%w: write audio: %v", ErrSpeech, err)
	}
	f.Close()

	return play(ctx, f.Name())
}

func play(ctx context.Context, path string) error {
	player := playerCommand()

	var args []string
	switch runtime.GOOS {
	case "windows":
		args = []string{"-NoProfile", "-Command",
			fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", path)}
	default:
		args = []string{path}
	}

	slog.Debug("playing audio", "player", player, "file", path)

	out, err := exec.CommandContext(ctx, player, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: play audio: %v (%s)", ErrSpeech, err, out)
	}

	return nil
}

func playerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "afplay"
	case "windows":
		return "powershell"
	default:
		return "aplay"
	}
}
