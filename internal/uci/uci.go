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

// Package uci implements the UCI protocol handler: it turns protocol
// lines into position/search state changes and turns search progress
// back into protocol lines. It is deliberately synchronous and
// allocation-light at the per-line level, since HandleLine and Think
// are the two operations a cooperative host (a browser worker, in the
// deployment this engine is designed for) calls in alternation.
package uci

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	golog "log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/mkvoss/gochess/internal/config"
	applog "github.com/mkvoss/gochess/internal/logging"
	"github.com/mkvoss/gochess/internal/movegen"
	"github.com/mkvoss/gochess/internal/position"
	"github.com/mkvoss/gochess/internal/search"
	"github.com/mkvoss/gochess/internal/tt"
	. "github.com/mkvoss/gochess/internal/types"
)

const (
	engineName   = "gochess"
	engineAuthor = "the gochess project"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler is a single UCI session: one position, one search session,
// one transposition table shared across the game's searches.
type Handler struct {
	log    *logging.Logger
	uciLog *logging.Logger

	pos     *position.Position
	table   *tt.Table
	session *search.Session

	searching bool
	quit      bool

	out strings.Builder
}

// NewHandler creates a ready-to-use session at the start position.
func NewHandler() *Handler {
	table := tt.New(config.Settings.Search.TTSizeMB)
	h := &Handler{
		log:    applog.GetLog(),
		uciLog: getUciLog(),
		pos:    position.New(),
		table:  table,
	}
	h.session = search.NewSession(table)
	h.session.OnInfo = h.onInfo
	return h
}

// Quit reports whether a `quit` command has been processed; the host
// loop should stop calling HandleLine/Think once this is true.
func (h *Handler) Quit() bool { return h.quit }

// Searching reports whether a search session is in progress - the
// host should keep calling Think until it returns true once this is
// set.
func (h *Handler) Searching() bool { return h.searching }

// HandleLine processes one line of UCI input and returns the output
// text it produced. Blank lines produce no output. Unknown commands
// are silently ignored, per UCI convention.
func (h *Handler) HandleLine(line string) string {
	h.out.Reset()
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	h.uciLog.Infof("<< %s", trimmed)

	tokens := regexWhiteSpace.Split(trimmed, -1)
	switch tokens[0] {
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.send(fmt.Sprintf("option name Hash type spin default %d min 0 max %d", config.Settings.Search.TTSizeMB, tt.MaxSizeInMB))
		h.send("option name Ponder type check default false")
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		if h.searching {
			h.stopSearch()
		}
		h.pos = position.New()
		h.session.NewGame()
	case "setoption":
		h.setOption(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.stopSearch()
	case "d":
		h.send(h.pos.String())
		h.send(fmt.Sprintf("Fen: %s", h.pos.ToFEN()))
		h.send(fmt.Sprintf("Key: %x", h.pos.Hash))
	case "register":
		h.send("info string register not implemented")
	case "debug":
		h.send("info string debug not implemented")
	case "quit":
		if h.searching {
			h.stopSearch()
		}
		h.quit = true
	}
	return h.out.String()
}

// Think performs one bounded slice of search work (when a search is
// in progress) and returns any output text produced - an `info` line
// on iteration completion, or `bestmove` once the session finishes.
// It is a no-op when no search is running.
func (h *Handler) Think() string {
	h.out.Reset()
	if !h.searching {
		return ""
	}
	if h.session.Think(context.Background()) {
		h.searching = false
		result := h.session.Result()
		h.sendBestMove(result.BestMove)
	}
	return h.out.String()
}

func (h *Handler) stopSearch() {
	if h.searching {
		h.session.Stop()
		// Cooperative cancellation resolves on the very next poll;
		// since the engine is single-threaded there is no running
		// search to race with here, so draining it now keeps the
		// state machine's Searching->Idle transition synchronous with
		// the `stop` command that caused it.
		for !h.session.Think(context.Background()) {
		}
		h.searching = false
		result := h.session.Result()
		h.sendBestMove(result.BestMove)
	}
}

// sendBestMove sends the final "bestmove" reply. There is never a
// "ponder" suggestion: pondering is a Non-goal.
func (h *Handler) sendBestMove(best Move) {
	if best == MoveNone {
		h.send("bestmove (none)")
		return
	}
	h.send(fmt.Sprintf("bestmove %s", best.StringUci()))
}

func (h *Handler) onInfo(info search.Info) {
	h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d hashfull %d pv %s",
		info.Depth, info.Score.String(), info.Nodes, info.Nps, info.TimeMs, info.Hashfull, info.PV))
}

func (h *Handler) setOption(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		h.send("info string malformed setoption command")
		return
	}
	switch name {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			h.send("info string setoption Hash: not a number: " + value)
			return
		}
		h.table.Resize(mb)
	case "Ponder":
		// Accepted and ignored: this engine never ponders.
	default:
		h.send("info string no such option: " + name)
	}
}

func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 3 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = strings.Join(tokens[i+1:], " ")
	}
	return name, value, name != ""
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.send("info string malformed position command")
		return
	}
	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = position.StartFEN
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		h.send("info string malformed position command")
		return
	}

	pos, err := position.FromFEN(fen)
	if err != nil {
		h.send("info string invalid fen: " + err.Error())
		return
	}
	h.pos = pos

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := movegen.MoveFromUCI(h.pos, tokens[i])
			if m == MoveNone {
				h.send("info string illegal move in position command: " + tokens[i])
				return
			}
			h.pos.DoMove(m)
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	if h.searching {
		h.stopSearch()
	}

	if len(tokens) >= 2 && tokens[1] == "perft" {
		depth := 4
		if len(tokens) >= 3 {
			if d, err := strconv.Atoi(tokens[2]); err == nil {
				depth = d
			}
		}
		h.perft(depth)
		return
	}

	limits, ok := h.parseGoLimits(tokens)
	if !ok {
		return
	}
	h.session.Start(h.pos, limits)
	h.searching = true
}

func (h *Handler) perft(depth int) {
	entries := movegen.PerftDivide(h.pos, depth)
	for _, e := range entries {
		h.send(fmt.Sprintf("%s: %d", e.Move.StringUci(), e.Nodes))
	}
	h.send("")
	h.send(fmt.Sprintf("Nodes searched: %d", movegen.TotalNodes(entries)))
}

func (h *Handler) parseGoLimits(tokens []string) (search.Limits, bool) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		readMillis := func() (time.Duration, bool) {
			i++
			if i >= len(tokens) {
				return 0, false
			}
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return 0, false
			}
			return time.Duration(v) * time.Millisecond, true
		}
		switch tok {
		case "infinite":
			limits.Infinite = true
			i++
		case "depth":
			i++
			if i >= len(tokens) {
				h.send("info string go depth: missing value")
				return limits, false
			}
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.send("info string go depth: not a number: " + tokens[i])
				return limits, false
			}
			limits.Depth = v
			i++
		case "nodes":
			i++
			if i >= len(tokens) {
				h.send("info string go nodes: missing value")
				return limits, false
			}
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				h.send("info string go nodes: not a number: " + tokens[i])
				return limits, false
			}
			limits.Nodes = v
			i++
		case "movetime":
			d, ok := readMillis()
			if !ok {
				h.send("info string go movetime: invalid value")
				return limits, false
			}
			limits.MoveTime = d
			limits.TimeControl = true
			i++
		case "wtime":
			d, ok := readMillis()
			if !ok {
				h.send("info string go wtime: invalid value")
				return limits, false
			}
			limits.WhiteTime = d
			limits.TimeControl = true
			i++
		case "btime":
			d, ok := readMillis()
			if !ok {
				h.send("info string go btime: invalid value")
				return limits, false
			}
			limits.BlackTime = d
			limits.TimeControl = true
			i++
		case "winc":
			d, ok := readMillis()
			if !ok {
				h.send("info string go winc: invalid value")
				return limits, false
			}
			limits.WhiteInc = d
			i++
		case "binc":
			d, ok := readMillis()
			if !ok {
				h.send("info string go binc: invalid value")
				return limits, false
			}
			limits.BlackInc = d
			i++
		case "movestogo":
			i++
			if i >= len(tokens) {
				h.send("info string go movestogo: missing value")
				return limits, false
			}
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.send("info string go movestogo: not a number: " + tokens[i])
				return limits, false
			}
			limits.MovesToGo = v
			i++
		case "ponder":
			// Accepted and treated as an ordinary search start, since
			// this engine never ponders.
			i++
		default:
			i++
		}
	}
	return limits, true
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	h.out.WriteString(s)
	h.out.WriteByte('\n')
}

// getUciLog returns a dedicated logger for the raw UCI transcript,
// mirroring the teacher's practice of keeping protocol traffic in its
// own timestamped log file separate from the application log.
func getUciLog() *logging.Logger {
	uciLog := logging.MustGetLogger("uci")
	format := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

	stdoutBackend := logging.NewLogBackend(os.Stderr, "", golog.Lmsgprefix)
	stdoutFormatter := logging.NewBackendFormatter(stdoutBackend, format)
	leveled := logging.AddModuleLevel(stdoutFormatter)
	leveled.SetLevel(logging.INFO, "")
	uciLog.SetBackend(leveled)

	logPath := config.Settings.Log.LogPath
	if logPath == "" {
		return uciLog
	}
	logFile, err := os.OpenFile(filepath.Join(logPath, "gochess_uci.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("uci log file could not be opened:", err)
		return uciLog
	}
	fileBackend := logging.NewLogBackend(logFile, "", golog.Lmsgprefix)
	fileFormatter := logging.NewBackendFormatter(fileBackend, format)
	fileLeveled := logging.AddModuleLevel(fileFormatter)
	fileLeveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(leveled, fileLeveled))
	return uciLog
}
