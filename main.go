package main

import (
	"context"
	"log/slog"
	"os"

	"captor/internal/config"
	"captor/internal/session"
	ui "captor/internal/ui"
	"captor/processing/captioner"
	"captor/processing/speech"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.LoadConfigFile(config.DefaultConfigPath)

	captions := captioner.NewService(cfg)
	voice := speech.NewSynthesizer(cfg)

	if !voice.Available() {
		slog.Warn("speech engine unavailable", "engine", voice.Name())
	}

	app := ui.CreateApp(cfg)

	ctrl := session.New(captions, voice, session.Options{
		Caption: captioner.Options{
			MaxLength: cfg.Caption.MaxLength,
			BeamWidth: cfg.Caption.BeamWidth,
		},
		AutoSpeak: cfg.Speech.AutoSpeak,
		Notify:    app.HandleNotification,
	})
	app.SetController(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	app.Run()
}
