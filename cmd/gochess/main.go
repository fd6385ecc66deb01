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

package main

import (
	"bufio"
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkvoss/gochess/internal/config"
	"github.com/mkvoss/gochess/internal/logging"
	"github.com/mkvoss/gochess/internal/uci"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "print version info and exit")
	configFile := flag.String("config", "./config.toml", "path to a TOML configuration file")
	logLevel := flag.String("loglevel", "info", "log level: critical|error|warning|notice|info|debug")
	logPath := flag.String("logpath", ".", "directory to write log files to")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to ./cpu.pprof for the duration of the process")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, err := logging.LevelFromString(*logLevel); err == nil {
		logging.SetLevel(lvl)
	}

	runUCILoop()
}

func printVersionInfo() {
	out.Println("gochess")
	out.Println("Environment:")
	out.Printf("  Go version: %s\n", runtime.Version())
	out.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	out.Printf("  CPUs: %d\n", runtime.NumCPU())
}

// runUCILoop is the cooperative think-pump: command lines and search
// work share the single execution context expected by the engine.
// The only concession to concurrency is a dedicated goroutine that
// does nothing but read stdin into a channel, so a blocking read
// never prevents an in-progress search from making slices of
// progress between lines - the arrangement the browser-worker
// deployment this engine targets approximates with postMessage.
func runUCILoop() {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	handler := uci.NewHandler()
	for {
		if handler.Quit() {
			return
		}
		if handler.Searching() {
			select {
			case line, ok := <-lines:
				if !ok {
					return
				}
				writer.WriteString(handler.HandleLine(line))
				writer.Flush()
			default:
				writer.WriteString(handler.Think())
				writer.Flush()
			}
			continue
		}

		line, ok := <-lines
		if !ok {
			return
		}
		writer.WriteString(handler.HandleLine(line))
		writer.Flush()
	}
}
