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

// Package config holds globally available configuration, read once
// from a TOML file at startup and otherwise left at documented
// defaults - the engine never requires a config file to run.
package config

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the process-wide configuration, populated by Setup().
var Settings = conf{
	Log: logConfig{
		Level:   "info",
		LogPath: ".",
	},
	Search: searchConfig{
		TTSizeMB:           64,
		NodesBetweenChecks: 2048,
		MaxDepth:           64,
	},
}

var initialized = false

type conf struct {
	Log    logConfig
	Search searchConfig
}

type logConfig struct {
	Level   string
	LogPath string
}

type searchConfig struct {
	TTSizeMB           int
	NodesBetweenChecks uint64
	MaxDepth           int
}

// Setup reads ConfFile if present, overlaying it onto the defaults.
// A missing or malformed file is not an error: the engine logs it and
// keeps running with defaults, since UCI has no notion of a fatal
// startup error.
func Setup(confFile string) {
	if initialized {
		return
	}
	initialized = true
	if confFile == "" {
		return
	}
	if _, err := os.Stat(confFile); err != nil {
		return
	}
	if _, err := toml.DecodeFile(confFile, &Settings); err != nil {
		log.Printf("config: could not parse %s, using defaults: %v", confFile, err)
	}
}
