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

func init() {
    declareTitle("records")

    declare("call_method", "invokes a named method on a record with the given arguments", func(args []Value, env *Env) (Value, error) {
        if len(args) < 2 || args[0].Kind() != KindRecord || args[1].Kind() != KindString {
            return Value{}, badTypes("call_method expects (call_method record name args...)")
        }
        return args[0].AsRecord().CallMethod(args[1].AsString(), args[2:])
    })

    declare("methods", "lists the method names a record exposes", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || args[0].Kind() != KindRecord {
            return Value{}, badTypes("methods expects a single record argument")
        }
        names := args[0].AsRecord().Methods()
        out := make([]Value, len(names))
        for i, n := range names {
            out[i] = Str(n)
        }
        return ListFromSlice(out), nil
    })

    declareTitle("filesystem")

    declare("fs::open", "opens a file as a record, mode one of \"r\", \"w\", \"a\"", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindString || args[1].Kind() != KindString {
            return Value{}, badTypes("fs::open expects (fs::open path mode)")
        }
        rec, err := NewFileRecord(args[0].AsString(), args[1].AsString())
        if err != nil {
            return Value{}, err
        }
        return RecordVal(rec), nil
    })
}
