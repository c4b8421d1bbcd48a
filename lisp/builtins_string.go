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
    "strings"

    "golang.org/x/text/cases"
    "golang.org/x/text/language"
)

// caser drives upper/lower the Unicode-aware way instead of ASCII-only
// strings.ToUpper/ToLower, so non-Latin scripts case-fold correctly.
var upperCaser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

func init() {
    declareTitle("strings")

    declare("upper", "uppercases a string using Unicode case folding", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || args[0].Kind() != KindString {
            return Value{}, badTypes("upper expects a single string argument")
        }
        return Str(upperCaser.String(args[0].AsString())), nil
    })

    declare("lower", "lowercases a string using Unicode case folding", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || args[0].Kind() != KindString {
            return Value{}, badTypes("lower expects a single string argument")
        }
        return Str(lowerCaser.String(args[0].AsString())), nil
    })

    declare("trim", "removes leading and trailing whitespace from a string", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || args[0].Kind() != KindString {
            return Value{}, badTypes("trim expects a single string argument")
        }
        return Str(strings.TrimSpace(args[0].AsString())), nil
    })

    declare("split", "splits a string on a separator into a list of strings", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindString || args[1].Kind() != KindString {
            return Value{}, badTypes("split expects (split string separator)")
        }
        parts := strings.Split(args[0].AsString(), args[1].AsString())
        out := make([]Value, len(parts))
        for i, p := range parts {
            out[i] = Str(p)
        }
        return ListFromSlice(out), nil
    })

    declare("join", "joins a list of strings with a separator", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || !args[0].IsList() || args[1].Kind() != KindString {
            return Value{}, badTypes("join expects (join list separator)")
        }
        parts := make([]string, len(args[0].Elements()))
        for i, v := range args[0].Elements() {
            if v.Kind() != KindString {
                return Value{}, badTypes("join requires a list of strings")
            }
            parts[i] = v.AsString()
        }
        return Str(strings.Join(parts, args[1].AsString())), nil
    })

    declare("str", "converts a value to its display string", func(args []Value, env *Env) (Value, error) {
        var b strings.Builder
        for _, a := range args {
            b.WriteString(Display(a))
        }
        return Str(b.String()), nil
    })
}
