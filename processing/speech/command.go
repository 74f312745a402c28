package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// Command speaks through the operating system's TTS command: `say` on
// macOS, `espeak-ng` (or `espeak`) on Linux, the SAPI synthesizer through
// PowerShell on Windows.
type Command struct {
	voice  string // explicit voice override; empty picks by caption language
	rate   int    // words per minute
	picker *VoicePicker
}

func NewCommand(voice string, rate int) *Command {
	if rate <= 0 {
		rate = 150
	}

	return &Command{
		voice:  voice,
		rate:   rate,
		picker: NewVoicePicker(),
	}
}

func (c *Command) Name() string {
	name, _ := c.binary()
	return name
}

func (c *Command) Available() bool {
	name, fallback := c.binary()
	if _, err := exec.LookPath(name); err == nil {
		return true
	}
	if fallback != "" {
		if _, err := exec.LookPath(fallback); err == nil {
			return true
		}
	}
	return false
}

func (c *Command) Speak(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: nothing to speak", ErrSpeech)
	}

	name, args := c.commandFor(text)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s not found", ErrSpeech, name)
	}

	slog.Debug("speaking", "engine", name, "chars", len(text))

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s: %v (%s)", ErrSpeech, name, err, strings.TrimSpace(string(out)))
	}

	return nil
}

func (c *Command) binary() (name, fallback string) {
	switch runtime.GOOS {
	case "darwin":
		return "say", ""
	case "windows":
		return "powershell", ""
	default:
		return "espeak-ng", "espeak"
	}
}

func (c *Command) commandFor(text string) (string, []string) {
	tag := c.picker.Tag(text)

	switch runtime.GOOS {
	case "darwin":
		voice := c.voice
		if voice == "" {
			voice = macVoices[isoCode(tag)]
		}

		args := []string{"-r", fmt.Sprint(c.rate)}
		if voice != "" {
			args = append(args, "-v", voice)
		}
		return "say", append(args, text)

	case "windows":
		// SAPI rate runs -10..10 around a 180 wpm baseline.
		rate := (c.rate - 180) / 30
		if rate < -10 {
			rate = -10
		} else if rate > 10 {
			rate = 10
		}

		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; $s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $s.Rate = %d; $s.Speak('%s')",
			rate, strings.ReplaceAll(text, "'", "''"),
		)
		return "powershell", []string{"-NoProfile", "-Command", script}

	default:
		name := "espeak-ng"
		if _, err := exec.LookPath(name); err != nil {
			name = "espeak"
		}

		voice := c.voice
		if voice == "" {
			voice = isoCode(tag)
		}

		return name, []string{"-s", fmt.Sprint(c.rate), "-v", voice, text}
	}
}
