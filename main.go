package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfield/logger"
	"github.com/milk9111/snowfield/prefabs"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run owns every deferred cleanup so the profiler is flushed on all exit paths.
func run(args []string) int {
	flags := flag.NewFlagSet("snowfield", flag.ContinueOnError)
	debug := flags.Bool("debug", false, "draw the debug overlay")
	logLevel := flags.String("log-level", "", "log level (trace, debug, info, warn, error); defaults to $LOG_LEVEL or info")
	logFormat := flags.String("log-format", "", "log format (text, json); defaults to $LOG_FORMAT or text")
	profileMode := flags.String("profile", "", "write a cpu or mem profile (cpu, mem)")
	profileDir := flags.String("profile-dir", ".", "directory the profile is written to")
	prefabDir := flags.String("prefabs", prefabs.Dir, "directory with prefab overrides, watched for changes")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log := logger.New(logger.Config{Level: *logLevel, Format: *logFormat}.FromEnv())

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	default:
		log.WithField("profile", *profileMode).Error("unknown profile mode")
		return 2
	}

	prefabs.Dir = *prefabDir
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.WithError(err).Error("load game spec")
		return 1
	}

	game, err := NewGame(spec, log, *debug)
	if err != nil {
		log.WithError(err).Error("create game")
		return 1
	}
	defer game.Close()

	if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
		if err := game.WatchPrefabs(prefabs.Dir); err != nil {
			log.WithError(err).Warn("prefab hot reload disabled")
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(spec.Window.Title)
	if spec.Window.TPS > 0 {
		ebiten.SetTPS(spec.Window.TPS)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game exited")
		return 1
	}
	return 0
}
