package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"notepad/internal/logger"
)

const (
	AppName    = "Notepad"
	AppID      = "com.notepad.editor"
	AppVersion = "1.0.0"

	DefaultFontSize = 12
	WindowWidth     = 800
	WindowHeight    = 600
)

// Config holds the settings read from the environment at startup.
type Config struct {
	LogLevel        zerolog.Level
	JSONLogs        bool
	FontDirs        []string
	DefaultFontSize float32
}

// Load builds a Config from getenv, normally os.Getenv.
func Load(getenv func(string) string) Config {
	cfg := Config{
		LogLevel:        logger.ParseLevel(getenv("NOTEPAD_LOG_LEVEL")),
		JSONLogs:        getenv("NOTEPAD_JSON_LOGS") == "true",
		DefaultFontSize: DefaultFontSize,
	}

	if getenv("NOTEPAD_DEBUG") == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}

	if raw := getenv("NOTEPAD_FONT_SIZE"); raw != "" {
		if size, err := strconv.ParseFloat(raw, 32); err == nil && size > 0 {
			cfg.DefaultFontSize = float32(size)
		}
	}

	for _, dir := range filepath.SplitList(getenv("NOTEPAD_FONT_DIRS")) {
		if dir = strings.TrimSpace(dir); dir != "" {
			cfg.FontDirs = append(cfg.FontDirs, dir)
		}
	}

	return cfg
}

// FromEnvironment is Load(os.Getenv).
func FromEnvironment() Config {
	return Load(os.Getenv)
}

// NewLogger returns the logger described by the config.
func (c Config) NewLogger() logger.Logger {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}
