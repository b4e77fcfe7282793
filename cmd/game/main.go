package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/graeme-lockley/cursor-asteroids/internal/audio"
	"github.com/graeme-lockley/cursor-asteroids/internal/game"
	"github.com/graeme-lockley/cursor-asteroids/internal/storage"
)

const appName = "cursor-asteroids"

func main() {
	logger := log.New(os.Stderr)

	store, err := storage.Open(appName)
	if err != nil {
		logger.Warn("high scores will not persist", "err", err)
	}

	sounds := audio.NewManager()
	if err := sounds.Start(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer sounds.Close()

	if settings, err := store.LoadSettings(); err == nil {
		if !settings.SoundEnabled {
			sounds.SetVolume(0)
		} else {
			sounds.SetVolume(settings.Volume)
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := game.Options{
		Sounds: sounds,
		Scores: storage.HighScores{Store: store},
	}
	if err := game.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
