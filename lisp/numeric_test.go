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

import "testing"

func TestArithmeticPolymorphism(t *testing.T) {
    if v := evalString(t, `(+ "foo" "bar")`); v.AsString() != "foobar" {
        t.Fatalf("expected foobar, got %v", Serialize(v))
    }
    if v := evalString(t, `(len (+ (list 1 2) (list 3)))`); v.AsNum().IntPart() != 3 {
        t.Fatalf("expected len 3, got %v", Serialize(v))
    }
    if v := evalString(t, `(* "ab" 3)`); v.AsString() != "ababab" {
        t.Fatalf("expected ababab, got %v", Serialize(v))
    }
}

func TestAddRejectsMixedListTupleTypes(t *testing.T) {
    _, err := newTestInterp().EvalSource(`(+ (list 1) (tuple 2))`)
    if err == nil {
        t.Fatalf("expected BadTypes for List+Tuple")
    }
    if e, ok := err.(*Error); !ok || e.Kind != BadTypes {
        t.Fatalf("expected BadTypes, got %v", err)
    }
}

func TestDivideByZero(t *testing.T) {
    _, err := newTestInterp().EvalSource(`(/ 1 0)`)
    if err == nil {
        t.Fatalf("expected divide by zero error")
    }
    if e, ok := err.(*Error); !ok || e.Kind != DivideByZero {
        t.Fatalf("expected DivideByZero, got %v", err)
    }
}

func TestChainedComparisons(t *testing.T) {
    if v := evalString(t, `(< 1 2 3)`); !v.AsBool() {
        t.Fatalf("expected true")
    }
    if v := evalString(t, `(< 1 3 2)`); v.AsBool() {
        t.Fatalf("expected false")
    }
}

func TestSqrtTruncates(t *testing.T) {
    v := evalString(t, `(sqrt 2)`)
    s := v.AsNum().String()
    if len(s) < 10 {
        t.Fatalf("expected a long decimal expansion, got %v", s)
    }
    // The 35th decimal of sqrt(2) is 7: rounding would end in ...6981.
    if v := evalString(t, `(= (sqrt 2) 1.4142135623730950488016887242096980)`); !v.AsBool() {
        t.Fatalf("expected sqrt 2 truncated to 34 decimal places, got %v", s)
    }
}

func TestEmptyVariants(t *testing.T) {
    if v := evalString(t, `(empty? (tuple))`); !v.AsBool() {
        t.Fatalf("expected empty tuple to be empty")
    }
    if v := evalString(t, `(empty? (list 1))`); v.AsBool() {
        t.Fatalf("expected non-empty list to be non-empty")
    }
}
