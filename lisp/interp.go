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
package lisp

import "log/slog"

// Interpreter bundles a root Environment with diagnostics. It is the
// entry point main.go drives for both file execution and the REPL.
type Interpreter struct {
    Root *Env
    Log  *slog.Logger
}

// New builds an Interpreter with every builtin bound at the root frame.
func New(log *slog.Logger) *Interpreter {
    if log == nil {
        log = slog.Default()
    }
    root := NewRootEnv()
    Bind(root)
    return &Interpreter{Root: root, Log: log}
}

// EvalSource reads every top-level form in src and evaluates them in
// order, returning the last result. Used for whole-file execution.
func (in *Interpreter) EvalSource(src string) (Value, error) {
    forms, rerr := Read(src)
    if rerr != nil {
        in.Log.Error("reader failed", "error", rerr.Error())
        return Value{}, rerr
    }
    var last Value = Nil
    for _, f := range forms {
        v, err := Eval(f, in.Root)
        if err != nil {
            return Value{}, err
        }
        last = v
    }
    return last, nil
}

// EvalForm evaluates a single already-parsed form. Used by the REPL,
// which reads one form at a time via ReadOne.
func (in *Interpreter) EvalForm(v Value) (Value, error) {
    return Eval(v, in.Root)
}
