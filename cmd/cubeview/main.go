package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"cubeview/internal/config"
	"cubeview/internal/game"
	"cubeview/internal/logging"
)

func main() {
	configDir := flag.String("config", "", "directory holding "+config.FileName+" (default: executable directory)")
	flag.Parse()

	dir := *configDir
	if dir == "" {
		// "go run" builds into a temp go-build directory; fall back to the working directory there.
		if execPath, err := os.Executable(); err == nil && !strings.Contains(filepath.Dir(execPath), "go-build") {
			dir = filepath.Dir(execPath)
		} else {
			dir = "."
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		logging.New("info", nil).Fatal().Err(err).Str("dir", dir).Msg("failed to load config")
	}
	log := logging.New(cfg.LogLevel, nil)
	log.Info().Str("dir", dir).Msg("config loaded")

	g, err := game.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build scene")
	}
	if err := g.Run(); err != nil {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
