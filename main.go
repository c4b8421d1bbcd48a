/*
Copyright (C) 2025  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
    "flag"
    "fmt"
    "log/slog"
    "os"
    "time"

    "github.com/fsnotify/fsnotify"
    "github.com/x7lang/x7/lisp"
)

func main() {
    lineMode := flag.Bool("l", false, "print the final value on its own line and exit, for scripted capture")
    watch := flag.Bool("watch", false, "re-run the file from a fresh environment whenever it changes on disk")
    docTopic := flag.String("d", "", "print documentation for a single builtin and exit; empty lists every builtin")
    verbose := flag.Bool("v", false, "enable debug-level diagnostics logging")
    flag.Parse()

    level := slog.LevelWarn
    if *verbose {
        level = slog.LevelDebug
    }
    logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

    if isDocInvocation() {
        fmt.Println(lisp.Doc(*docTopic))
        return
    }

    args := flag.Args()
    if len(args) == 0 {
        in := lisp.New(logger)
        if err := lisp.Repl(in); err != nil {
            // Repl prints evaluation errors itself (including a Panic
            // that aborted the session); a returned error is only
            // reflected in the exit code.
            os.Exit(1)
        }
        return
    }

    path := args[0]
    if *watch {
        runWatched(path, logger, *lineMode)
        return
    }
    runOnce(path, logger, *lineMode)
}

// isDocInvocation distinguishes an explicit `-d` (with or without a
// topic) from the zero-value default of an unset flag.
func isDocInvocation() bool {
    found := false
    flag.Visit(func(f *flag.Flag) {
        if f.Name == "d" {
            found = true
        }
    })
    return found
}

func runOnce(path string, logger *slog.Logger, lineMode bool) {
    data, err := os.ReadFile(path)
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    in := lisp.New(logger)
    result, evalErr := in.EvalSource(string(data))
    if evalErr != nil {
        fmt.Fprintln(os.Stderr, evalErr.Error())
        os.Exit(1)
    }
    if lineMode {
        fmt.Println(lisp.Serialize(result))
    }
}

// runWatched re-reads and re-evaluates path from a fresh root
// Environment every time fsnotify reports a change, debouncing bursts
// of events (editors commonly emit several writes per save) the same
// way a simple file watcher coalesces rapid successive events before
// acting.
func runWatched(path string, logger *slog.Logger, lineMode bool) {
    runOnce(path, logger, lineMode)

    watcher, err := fsnotify.NewWatcher()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    defer watcher.Close()
    if err := watcher.Add(path); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }

    var debounce *time.Timer
    for {
        select {
        case event, ok := <-watcher.Events:
            if !ok {
                return
            }
            if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
                continue
            }
            if debounce != nil {
                debounce.Stop()
            }
            debounce = time.AfterFunc(150*time.Millisecond, func() {
                logger.Info("reloading", "path", path)
                runOnce(path, logger, lineMode)
            })
        case werr, ok := <-watcher.Errors:
            if !ok {
                return
            }
            logger.Error("watch error", "error", werr.Error())
        }
    }
}
