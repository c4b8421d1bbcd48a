/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

package lisp

import (
    "fmt"
    "io"

    "github.com/chzyer/readline"
)

const newprompt = ">>> "
const contprompt = "... "

// Repl drives an interactive session against in, reading one complete
// form at a time. A form spanning multiple lines (unbalanced parens)
// keeps accumulating under the continuation prompt rather than erroring
// immediately, the same anti-panic accumulation the teacher's prompt
// loop uses for "expecting matching )".
func Repl(in *Interpreter) error {
    l, err := readline.NewEx(&readline.Config{
        Prompt:            newprompt,
        HistoryFile:       ".x7-history.tmp",
        InterruptPrompt:   "^C",
        EOFPrompt:         "exit",
        HistorySearchFold: true,
    })
    if err != nil {
        return err
    }
    defer l.Close()
    l.CaptureExitSignal()

    pending := ""
    for {
        line, err := l.Readline()
        full := pending + line
        if err == readline.ErrInterrupt {
            if len(full) == 0 {
                break
            }
            pending = ""
            l.SetPrompt(newprompt)
            continue
        } else if err == io.EOF {
            break
        } else if err != nil {
            return err
        }
        if full == "" {
            continue
        }

        form, more, rerr := ReadOne(full)
        if rerr != nil {
            pending = full + "\n"
            l.SetPrompt(contprompt)
            continue
        }
        _ = more
        pending = ""
        l.SetPrompt(newprompt)

        result, err := in.EvalForm(form)
        if err != nil {
            fmt.Println(err.Error())
            // A Panic aborts the whole program, unlike every other
            // error kind which only terminates this one top-level form.
            if e, ok := err.(*Error); ok && e.Kind == Panic {
                return err
            }
            continue
        }
        fmt.Println(Serialize(result))
    }
    return nil
}
