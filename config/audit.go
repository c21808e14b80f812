// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFilePermissions = 0o640

var logLevels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// setupAudit points the global logger at the configured outputs.
func (cfg *ServerConfig) setupAudit() {
	level := logLevels[cfg.Log.Level]
	if cfg.Development.InDevelopment {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	outputs := cfg.Log.Outputs
	if len(outputs) == 0 {
		outputs = []string{"/dev/stderr"}
	}

	writers := make([]io.Writer, 0, len(outputs))

	for _, output := range outputs {
		w, err := cfg.logWriter(output)
		if err != nil {
			// Keep going with the remaining outputs.
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", output, err)

			continue
		}

		writers = append(writers, w)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

func (cfg *ServerConfig) logWriter(output string) (io.Writer, error) {
	var f *os.File

	switch output {
	case "/dev/stdout":
		f = os.Stdout
	case "/dev/stderr":
		f = os.Stderr
	default:
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
		if err != nil {
			return nil, err
		}

		f = file
	}

	if cfg.Log.Format == "json" {
		return f, nil
	}

	return ConsoleWriter(f), nil
}

// ConsoleWriter returns a human-readable zerolog writer, coloured only when f is a terminal.
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isatty.IsTerminal(f.Fd())

	w := zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.DateTime}

	if !noColor {
		w.FormatPrepare = func(m map[string]any) error {
			// one-line request logs
			if sys, ok := m["sys"]; ok && sys == "http" {
				m["message"] = fmt.Sprintf("%s %-5s %s", m["status_code"], m["method"], m["url"])
				delete(m, "sys")
				delete(m, "method")
				delete(m, "status_code")
				delete(m, "url")
				delete(m, "request_id")
			}

			return nil
		}
	}

	return w
}
