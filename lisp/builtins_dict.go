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
    declareTitle("dictionaries")

    declare("dict", "constructs a dict from alternating key/value arguments", func(args []Value, env *Env) (Value, error) {
        d, err := DictFromPairs(args)
        if err != nil {
            return Value{}, err
        }
        return DictVal(d), nil
    })

    declare("assoc", "returns a new dict with a key bound to a value", func(args []Value, env *Env) (Value, error) {
        if len(args) != 3 || args[0].Kind() != KindDict {
            return Value{}, badTypes("assoc expects (assoc dict key value)")
        }
        return DictVal(args[0].AsDict().Assoc(args[1], args[2])), nil
    })

    declare("remove", "returns a new dict without a key", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindDict {
            return Value{}, badTypes("remove expects (remove dict key)")
        }
        return DictVal(args[0].AsDict().Remove(args[1])), nil
    })

    declare("get", "looks up a key in a dict, returning a default (nil) if absent", func(args []Value, env *Env) (Value, error) {
        if len(args) < 2 || len(args) > 3 || args[0].Kind() != KindDict {
            return Value{}, badTypes("get expects (get dict key [default])")
        }
        if v, ok := args[0].AsDict().Get(args[1]); ok {
            return v, nil
        }
        if len(args) == 3 {
            return args[2], nil
        }
        return Nil, nil
    })
}
