// Copyright 2025 go-glm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with glmnoise-specific fields.
type Logger struct {
	*slog.Logger
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// newLogger builds the logger selected by the config.
func newLogger(cfg *Config) (*Logger, error) {
	if cfg.Quiet {
		return NoopLogger(), nil
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogJSON {
		return NewJSONLogger(os.Stderr, level), nil
	}
	return NewTextLogger(os.Stderr, level), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("glmnoise: unknown log level %q", s)
}

// WithField adds the field geometry to the logger.
func (l *Logger) WithField(width, height, dim int) *Logger {
	return &Logger{Logger: l.With("width", width, "height", height, "dim", dim)}
}
