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

    "github.com/shopspring/decimal"
)

// workingPrecision is the number of digits after the decimal point
// carried by division and square roots that do not terminate exactly.
// init sets shopspring/decimal's DivisionPrecision to the same value so
// that `/`, `sqrt` and the library's own Div behave consistently.
const workingPrecision = 34

func init() {
    decimal.DivisionPrecision = workingPrecision
}

// Add implements polymorphic `+`: Num+Num, String+String (concat),
// List+List and Tuple+Tuple (same-variant concat only — see the Open
// Questions resolution in SPEC_FULL.md for why List+Tuple is rejected).
func Add(a, b Value) (Value, error) {
    if a.kind != b.kind {
        return Value{}, badTypes("+ requires matching types, got %s and %s", a.TypeName(), b.TypeName())
    }
    switch a.kind {
    case KindNum:
        return Num(a.num.Add(b.num)), nil
    case KindString:
        return Str(a.str + b.str), nil
    case KindList:
        return ListFromSlice(concatSlices(a.list, b.list)), nil
    case KindTuple:
        return TupleOf(concatSlices(a.list, b.list)), nil
    }
    return Value{}, badTypes("+ does not support %s", a.TypeName())
}

func concatSlices(a, b []Value) []Value {
    out := make([]Value, 0, len(a)+len(b))
    out = append(out, a...)
    out = append(out, b...)
    return out
}

func Sub(args []Value) (Value, error) {
    if len(args) == 0 {
        return Value{}, badTypes("- requires at least one argument")
    }
    for _, a := range args {
        if a.kind != KindNum {
            return Value{}, badTypes("- requires numbers, got %s", a.TypeName())
        }
    }
    if len(args) == 1 {
        return Num(args[0].num.Neg()), nil
    }
    acc := args[0].num
    for _, a := range args[1:] {
        acc = acc.Sub(a.num)
    }
    return Num(acc), nil
}

func Mul(a, b Value) (Value, error) {
    if a.kind == KindNum && b.kind == KindNum {
        return Num(a.num.Mul(b.num)), nil
    }
    if a.kind == KindString && b.kind == KindNum {
        return Str(strings.Repeat(a.str, int(b.num.IntPart()))), nil
    }
    return Value{}, badTypes("* does not support %s and %s", a.TypeName(), b.TypeName())
}

func Div(args []Value) (Value, error) {
    if len(args) < 2 {
        return Value{}, badTypes("/ requires at least two arguments")
    }
    for _, a := range args {
        if a.kind != KindNum {
            return Value{}, badTypes("/ requires numbers, got %s", a.TypeName())
        }
    }
    acc := args[0].num
    for _, a := range args[1:] {
        if a.num.IsZero() {
            return Value{}, divideByZero("/")
        }
        acc = acc.DivRound(a.num, workingPrecision)
    }
    return Num(acc), nil
}

func Mod(a, b Value) (Value, error) {
    if a.kind != KindNum || b.kind != KindNum {
        return Value{}, badTypes("%% requires numbers, got %s and %s", a.TypeName(), b.TypeName())
    }
    if b.num.IsZero() {
        return Value{}, divideByZero("%")
    }
    return Num(a.num.Mod(b.num)), nil
}

// Sqrt truncates rather than rounds at workingPrecision, per the Open
// Questions resolution: reproducible output across repeated calls.
func Sqrt(a Value) (Value, error) {
    if a.kind != KindNum {
        return Value{}, badTypes("sqrt requires a number, got %s", a.TypeName())
    }
    if a.num.IsNegative() {
        return Value{}, badTypes("sqrt requires a non-negative number")
    }
    result := a.num.Truncate(workingPrecision)
    return Num(sqrtDecimal(result)), nil
}

func sqrtDecimal(d decimal.Decimal) decimal.Decimal {
    f, _ := d.Float64()
    if f == 0 {
        return decimal.Zero
    }
    guess := decimal.NewFromFloat(sqrtSeed(f))
    two := decimal.NewFromInt(2)
    for i := 0; i < 60; i++ {
        next := guess.Add(d.DivRound(guess, workingPrecision+5)).DivRound(two, workingPrecision+5)
        if next.Equal(guess) {
            break
        }
        guess = next
    }
    return guess.Truncate(workingPrecision)
}

func sqrtSeed(f float64) float64 {
    if f <= 0 {
        return 0
    }
    x := f
    for i := 0; i < 20; i++ {
        x = 0.5 * (x + f/x)
    }
    return x
}

func Inc(a Value) (Value, error) {
    if a.kind != KindNum {
        return Value{}, badTypes("inc requires a number, got %s", a.TypeName())
    }
    return Num(a.num.Add(decimal.NewFromInt(1))), nil
}

func IntOf(a Value) (Value, error) {
    if a.kind != KindNum {
        return Value{}, badTypes("int requires a number, got %s", a.TypeName())
    }
    return Num(a.num.Truncate(0)), nil
}

// CompareChain implements the n-ary chained comparisons: true only if
// every consecutive pair satisfies pred.
func CompareChain(args []Value, name string, pred func(a, b decimal.Decimal) bool) (Value, error) {
    if len(args) < 2 {
        return Value{}, badTypes("%s requires at least two arguments", name)
    }
    for _, a := range args {
        if a.kind != KindNum {
            return Value{}, badTypes("%s requires numbers, got %s", name, a.TypeName())
        }
    }
    for i := 0; i+1 < len(args); i++ {
        if !pred(args[i].num, args[i+1].num) {
            return False, nil
        }
    }
    return True, nil
}
