package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/countdown/audio"
	"github.com/lixenwraith/countdown/constants"
	"github.com/lixenwraith/countdown/widget"
)

var (
	durationFlag = flag.String("duration", constants.DefaultInput, "Initial countdown duration in seconds")
	cueFlag      = flag.String("cue", "", "WAV file used for all cues (default: built-in chime)")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	debugFlag    = flag.Bool("debug", false, "Write diagnostics to logs/countdown.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Panic Recovery: ensure terminal is restored even if the widget crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOUNTDOWN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := widget.Options{
		Input: *durationFlag,
		Muted: *muteFlag,
	}

	cfg := audio.LoadAudioConfig()
	if *cueFlag != "" {
		cfg.AssetPath = *cueFlag
	}
	if cfg.Enabled {
		if player := startAudio(ctx, cfg); player != nil {
			defer player.Close()
			opts.Player = player
		}
	}

	w := widget.New(screen, opts)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("countdown: %v", err)
	}
}

// startAudio opens the cue player and, for a file asset, watches it for
// changes. Failures leave the widget silent.
func startAudio(ctx context.Context, cfg *audio.AudioConfig) *audio.Player {
	player, err := audio.NewPlayer(cfg)
	if err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return nil
	}

	if cfg.AssetPath == "" {
		return player
	}

	watcher, err := audio.NewAssetWatcher(cfg.AssetPath)
	if err != nil {
		log.Printf("Cue watcher unavailable: %v", err)
		return player
	}
	go watcher.Run(ctx, func() {
		if err := player.Reload(); err != nil {
			log.Printf("Cue reload failed: %v", err)
			return
		}
		log.Printf("Cues reloaded from %s", player.AssetPath())
	})

	return player
}
