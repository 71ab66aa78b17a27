package aoc

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging sends the global logger to stderr in console form and loads
// .env from the working directory when there is one.
func SetupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	_ = godotenv.Load()
}

// SetDebug switches the global level between debug and info.
func SetDebug(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// InputPath resolves a relative input name under $AOC_INPUT_DIR when set.
func InputPath(name string) string {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" && !filepath.IsAbs(name) {
		return filepath.Join(dir, name)
	}
	return name
}
