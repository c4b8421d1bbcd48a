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

import "github.com/shopspring/decimal"

func init() {
    declareTitle("arithmetic")

    declare("+", "adds numbers, concatenates strings, or concatenates lists/tuples of the same kind", func(args []Value, env *Env) (Value, error) {
        if len(args) == 0 {
            return NumFromInt(0), nil
        }
        acc := args[0]
        for _, a := range args[1:] {
            v, err := Add(acc, a)
            if err != nil {
                return Value{}, err
            }
            acc = v
        }
        return acc, nil
    })

    declare("-", "subtracts numbers; negates a single argument", func(args []Value, env *Env) (Value, error) {
        return Sub(args)
    })

    declare("*", "multiplies numbers, or repeats a string a given number of times", func(args []Value, env *Env) (Value, error) {
        if len(args) == 0 {
            return NumFromInt(1), nil
        }
        acc := args[0]
        for _, a := range args[1:] {
            v, err := Mul(acc, a)
            if err != nil {
                return Value{}, err
            }
            acc = v
        }
        return acc, nil
    })

    declare("/", "divides numbers left to right", func(args []Value, env *Env) (Value, error) {
        return Div(args)
    })

    declare("%", "computes the remainder of dividing the first argument by the second", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 {
            return Value{}, arityMismatch("%", 2, 2, len(args))
        }
        return Mod(args[0], args[1])
    })

    declare("sqrt", "computes the truncated square root of a non-negative number", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("sqrt", 1, 1, len(args))
        }
        return Sqrt(args[0])
    })

    declare("inc", "adds one to a number", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("inc", 1, 1, len(args))
        }
        return Inc(args[0])
    })

    declare("int", "truncates a number toward zero", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("int", 1, 1, len(args))
        }
        return IntOf(args[0])
    })

    declare("=", "tests n-ary structural equality", func(args []Value, env *Env) (Value, error) {
        if len(args) < 2 {
            return Value{}, arityMismatch("=", 2, -1, len(args))
        }
        for i := 0; i+1 < len(args); i++ {
            if !Equal(args[i], args[i+1]) {
                return False, nil
            }
        }
        return True, nil
    })

    declare("<", "tests a chained strictly-increasing order over numbers", func(args []Value, env *Env) (Value, error) {
        return CompareChain(args, "<", func(a, b decimal.Decimal) bool { return a.LessThan(b) })
    })
    declare("<=", "tests a chained non-decreasing order over numbers", func(args []Value, env *Env) (Value, error) {
        return CompareChain(args, "<=", func(a, b decimal.Decimal) bool { return a.LessThanOrEqual(b) })
    })
    declare(">", "tests a chained strictly-decreasing order over numbers", func(args []Value, env *Env) (Value, error) {
        return CompareChain(args, ">", func(a, b decimal.Decimal) bool { return a.GreaterThan(b) })
    })
    declare(">=", "tests a chained non-increasing order over numbers", func(args []Value, env *Env) (Value, error) {
        return CompareChain(args, ">=", func(a, b decimal.Decimal) bool { return a.GreaterThanOrEqual(b) })
    })

    declare("not", "logical negation of truthiness", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("not", 1, 1, len(args))
        }
        return Bool(!args[0].Truthy()), nil
    })
}
