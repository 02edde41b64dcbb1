// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a structured JSON logger used by all services.
package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON structured logger writing to the given writer at the
// given level. Accepted levels are debug, info, warn and error.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}
