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

import (
    "fmt"
    "sort"
)

func init() {
    declareTitle("core")

    declare("ident", "returns its argument unchanged", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("ident", 1, 1, len(args))
        }
        return args[0], nil
    })

    declare("print", "writes a value to standard output without a trailing newline", func(args []Value, env *Env) (Value, error) {
        for _, a := range args {
            fmt.Print(Display(a))
        }
        return Nil, nil
    })

    declare("println", "writes values to standard output followed by a newline", func(args []Value, env *Env) (Value, error) {
        for i, a := range args {
            if i > 0 {
                fmt.Print(" ")
            }
            fmt.Print(Display(a))
        }
        fmt.Println()
        return Nil, nil
    })

    declare("type", "returns the type name of a value as a string", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("type", 1, 1, len(args))
        }
        return Str(args[0].TypeName()), nil
    })

    declare("doc", "returns the documentation of a builtin, or a full listing with no argument", func(args []Value, env *Env) (Value, error) {
        switch len(args) {
        case 0:
            return Str(Doc("")), nil
        case 1:
            name := args[0].AsSymbol()
            if args[0].Kind() == KindString {
                name = args[0].AsString()
            }
            return Str(Doc(name)), nil
        }
        return Value{}, arityMismatch("doc", 0, 1, len(args))
    })

    declare("err", "raises a user error carrying the given message", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || args[0].Kind() != KindString {
            return Value{}, badTypes("err expects a single string argument")
        }
        return Value{}, newError(UserError, "%s", args[0].AsString())
    })

    declare("panic", "aborts the entire program with the given message", func(args []Value, env *Env) (Value, error) {
        msg := ""
        if len(args) == 1 {
            msg = Display(args[0])
        }
        return Value{}, newError(Panic, "%s", msg)
    })

    declare("eval", "evaluates a value as an expression in the global environment", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("eval", 1, 1, len(args))
        }
        return Eval(args[0], env.Root())
    })

    declare("all-symbols", "lists every symbol bound at the root environment", func(args []Value, env *Env) (Value, error) {
        names := env.Root().Names()
        sort.Strings(names)
        out := make([]Value, len(names))
        for i, n := range names {
            out[i] = Sym(n)
        }
        return ListFromSlice(out), nil
    })
}
