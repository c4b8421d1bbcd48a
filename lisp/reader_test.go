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

func TestReadAtoms(t *testing.T) {
    forms, err := Read(`42 "hi" sym true false nil`)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if len(forms) != 6 {
        t.Fatalf("expected 6 forms, got %d", len(forms))
    }
    if forms[0].Kind() != KindNum || forms[0].AsNum().IntPart() != 42 {
        t.Fatalf("expected num 42, got %v", forms[0])
    }
    if forms[1].Kind() != KindString || forms[1].AsString() != "hi" {
        t.Fatalf("expected string hi, got %v", forms[1])
    }
    if forms[2].Kind() != KindSymbol || forms[2].AsSymbol() != "sym" {
        t.Fatalf("expected symbol sym, got %v", forms[2])
    }
    if !forms[3].AsBool() {
        t.Fatalf("expected true")
    }
    if forms[4].AsBool() {
        t.Fatalf("expected false")
    }
    if forms[5].Kind() != KindNil {
        t.Fatalf("expected nil")
    }
}

func TestReadList(t *testing.T) {
    forms, err := Read(`(+ 1 2)`)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if len(forms) != 1 || forms[0].Kind() != KindList || len(forms[0].Elements()) != 3 {
        t.Fatalf("unexpected parse: %v", forms)
    }
}

func TestReadQuoteList(t *testing.T) {
    forms, err := Read(`'(1 2 3)`)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if forms[0].Kind() != KindQuote || len(forms[0].Elements()) != 3 {
        t.Fatalf("expected quote of 3 elements, got %v", forms[0])
    }
}

func TestReadQuoteAtom(t *testing.T) {
    forms, err := Read(`'x`)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if forms[0].Kind() != KindQuote || len(forms[0].Elements()) != 1 {
        t.Fatalf("expected quote wrapping single atom, got %v", forms[0])
    }
}

func TestReadTuple(t *testing.T) {
    forms, err := Read(`^(1 2)`)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if forms[0].Kind() != KindTuple || len(forms[0].Elements()) != 2 {
        t.Fatalf("expected tuple of 2, got %v", forms[0])
    }
}

func TestReadUnbalancedParens(t *testing.T) {
    _, err := Read(`(+ 1 2`)
    if err == nil {
        t.Fatalf("expected reader error for unbalanced parens")
    }
    if err.Kind != ReaderError {
        t.Fatalf("expected ReaderError, got %v", err.Kind)
    }
}

func TestReadComment(t *testing.T) {
    forms, err := Read("; a comment\n42")
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if len(forms) != 1 || forms[0].AsNum().IntPart() != 42 {
        t.Fatalf("comment not skipped correctly: %v", forms)
    }
}
