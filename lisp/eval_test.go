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
    "log/slog"
    "testing"
)

func newTestInterp() *Interpreter {
    return New(slog.Default())
}

func evalString(t *testing.T, src string) Value {
    t.Helper()
    in := newTestInterp()
    v, err := in.EvalSource(src)
    if err != nil {
        t.Fatalf("eval %q: %v", src, err)
    }
    return v
}

func TestTruthiness(t *testing.T) {
    if v := evalString(t, `(if () "empty" "nope")`); v.AsString() != "empty" {
        t.Fatalf("empty list should be truthy, got %v", v)
    }
    if v := evalString(t, `(if nil "a" "b")`); v.AsString() != "b" {
        t.Fatalf("nil should be falsy, got %v", v)
    }
    if v := evalString(t, `(if false "a" "b")`); v.AsString() != "b" {
        t.Fatalf("false should be falsy, got %v", v)
    }
    if v := evalString(t, `(if 0 "a" "b")`); v.AsString() != "a" {
        t.Fatalf("0 should be truthy, got %v", v)
    }
}

func TestDefAndArithmetic(t *testing.T) {
    v := evalString(t, `(do (def x 5) (+ x 3))`)
    if v.Kind() != KindNum || v.AsNum().IntPart() != 8 {
        t.Fatalf("expected 8, got %v", Serialize(v))
    }
}

func TestFunctionsDoNotCloseOverCaller(t *testing.T) {
    // local var y in the caller's frame must not be visible inside f's body.
    v, err := newTestInterp().EvalSource(`(do (defn f () y) (bind (y 10) (f)))`)
    if err == nil {
        t.Fatalf("expected undefined symbol error, got %v", Serialize(v))
    }
    if e, ok := err.(*Error); !ok || e.Kind != UndefinedSymbol {
        t.Fatalf("expected UndefinedSymbol, got %v", err)
    }
}

func TestCondAndMatch(t *testing.T) {
    v := evalString(t, `(cond false 1 true 2)`)
    if v.AsNum().IntPart() != 2 {
        t.Fatalf("expected 2, got %v", Serialize(v))
    }
    v = evalString(t, `(match 2 1 "one" 2 "two" _ "other")`)
    if v.AsString() != "two" {
        t.Fatalf("expected two, got %v", Serialize(v))
    }
    v = evalString(t, `(match 9 1 "one" _ "other")`)
    if v.AsString() != "other" {
        t.Fatalf("expected other, got %v", Serialize(v))
    }
}

func TestBindSequentialScoping(t *testing.T) {
    v := evalString(t, `(bind (a 1 b (+ a 1)) (+ a b))`)
    if v.AsNum().IntPart() != 3 {
        t.Fatalf("expected 3, got %v", Serialize(v))
    }
}

func TestVariadicRest(t *testing.T) {
    v := evalString(t, `(do (defn f (a & rest) (len rest)) (f 1 2 3 4))`)
    if v.AsNum().IntPart() != 3 {
        t.Fatalf("expected 3, got %v", Serialize(v))
    }
}

func TestQuoteAndEval(t *testing.T) {
    v := evalString(t, `(eval '(+ 1 2))`)
    if v.AsNum().IntPart() != 3 {
        t.Fatalf("expected 3, got %v", Serialize(v))
    }
}

func TestMemberCallSugar(t *testing.T) {
    v := evalString(t, `(do (def r (fs::open "/dev/null" "r")) (.name r))`)
    if v.Kind() != KindString {
        t.Fatalf("expected string from .name, got %v", v)
    }
}
