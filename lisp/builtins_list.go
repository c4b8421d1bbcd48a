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

import "sort"

func init() {
    declareTitle("lists")

    declare("list", "constructs a list from its arguments", func(args []Value, env *Env) (Value, error) {
        return ListFromSlice(append([]Value{}, args...)), nil
    })

    declare("tuple", "constructs a tuple from its arguments", func(args []Value, env *Env) (Value, error) {
        return TupleOf(append([]Value{}, args...)), nil
    })

    declare("head", "returns the first element of a list", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || !args[0].IsList() {
            return Value{}, badTypes("head expects a single list argument")
        }
        if len(args[0].list) == 0 {
            return Value{}, indexOutOfBounds(0, 0)
        }
        return args[0].list[0], nil
    })

    declare("tail", "returns every element but the first", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || !args[0].IsList() {
            return Value{}, badTypes("tail expects a single list argument")
        }
        if len(args[0].list) == 0 {
            return Value{}, indexOutOfBounds(0, 0)
        }
        return ListFromSlice(append([]Value{}, args[0].list[1:]...)), nil
    })

    declare("cons", "prepends an element to a list", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || !args[1].IsList() {
            return Value{}, badTypes("cons expects (cons elem list)")
        }
        out := make([]Value, 0, len(args[1].list)+1)
        out = append(out, args[0])
        out = append(out, args[1].list...)
        return ListFromSlice(out), nil
    })

    declare("nth", "returns the nth (0-indexed) element of a list", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || !args[0].IsList() || args[1].Kind() != KindNum {
            return Value{}, badTypes("nth expects (nth list index)")
        }
        idx := int(args[1].AsNum().IntPart())
        if idx < 0 || idx >= len(args[0].list) {
            return Value{}, indexOutOfBounds(idx, len(args[0].list))
        }
        return args[0].list[idx], nil
    })

    declare("len", "returns the length of a list, tuple, or string", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("len", 1, 1, len(args))
        }
        switch args[0].Kind() {
        case KindList, KindQuote, KindTuple:
            return NumFromInt(int64(len(args[0].list))), nil
        case KindString:
            return NumFromInt(int64(len([]rune(args[0].AsString())))), nil
        case KindNil:
            return NumFromInt(0), nil
        }
        return Value{}, badTypes("len does not support %s", args[0].TypeName())
    })

    declare("empty?", "returns true if a list, tuple, or string has zero elements", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("empty?", 1, 1, len(args))
        }
        switch args[0].Kind() {
        case KindNil:
            return True, nil
        case KindList, KindQuote, KindTuple:
            return Bool(len(args[0].list) == 0), nil
        case KindString:
            return Bool(args[0].AsString() == ""), nil
        }
        return Value{}, badTypes("empty? does not support %s", args[0].TypeName())
    })

    declare("zip", "pairs up corresponding elements of two lists as tuples", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || !args[0].IsList() || !args[1].IsList() {
            return Value{}, badTypes("zip expects two lists")
        }
        a, b := args[0].list, args[1].list
        n := len(a)
        if len(b) < n {
            n = len(b)
        }
        out := make([]Value, n)
        for i := 0; i < n; i++ {
            out[i] = TupleOf([]Value{a[i], b[i]})
        }
        return ListFromSlice(out), nil
    })

    declare("apply", "applies a function to a list of arguments", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindFunction || !args[1].IsList() {
            return Value{}, badTypes("apply expects (apply fn arglist)")
        }
        return Apply(args[0].AsFunction(), append([]Value{}, args[1].list...), env.Root())
    })

    declare("sort", "sorts a list ascending using the language's total order", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 || !args[0].IsList() {
            return Value{}, badTypes("sort expects a single list argument")
        }
        out := append([]Value{}, args[0].list...)
        sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
        return ListFromSlice(out), nil
    })
}
