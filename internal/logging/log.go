//
// gochess - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2021-2024 The gochess Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging provides a single lazily-created application logger
// shared by every other package, backed by go-logging the way the
// teacher engine's own internal/logging package is.
package logging

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
)

var log *logging.Logger

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{shortfunc} %{message}`,
)

// Level re-exports go-logging's level type so callers outside this
// package never need to import op/go-logging directly just to name a
// level.
type Level = logging.Level

// levelNames maps the lowercase level names accepted by the -loglevel
// command-line flag to go-logging's Level constants.
var levelNames = map[string]Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

// LevelFromString parses one of the accepted level names, defaulting
// to INFO and an error for anything unrecognized.
func LevelFromString(s string) (Level, error) {
	if lvl, ok := levelNames[s]; ok {
		return lvl, nil
	}
	return logging.INFO, fmt.Errorf("unknown log level %q", s)
}

// GetLog returns the shared application logger, creating it (with a
// stderr backend so it never collides with UCI's stdout protocol
// stream) on first use.
func GetLog() *logging.Logger {
	if log == nil {
		log = logging.MustGetLogger("gochess")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		log.SetBackend(leveled)
	}
	return log
}

// SetLevel adjusts the application logger's verbosity. Accepts the
// go-logging level names: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG.
func SetLevel(level logging.Level) {
	GetLog()
	logging.SetLevel(level, "gochess")
}
