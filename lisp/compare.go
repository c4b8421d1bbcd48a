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
    "golang.org/x/text/collate"
    "golang.org/x/text/language"
)

// collator provides Unicode-aware ordering for String/Symbol keys so
// that Dict iteration and printing are stable and locale-sane rather
// than depending on raw byte order.
var collator = collate.New(language.Und)

// Equal implements structural `=`. Nil and an empty List compare equal;
// otherwise variants must match before payloads are compared.
func Equal(a, b Value) bool {
    if a.kind == KindNil && isEmptyListLike(b) {
        return true
    }
    if b.kind == KindNil && isEmptyListLike(a) {
        return true
    }
    if a.kind != b.kind {
        return false
    }
    switch a.kind {
    case KindNil:
        return true
    case KindBool:
        return a.b == b.b
    case KindNum:
        return a.num.Equal(b.num)
    case KindString, KindSymbol:
        return a.str == b.str
    case KindList, KindQuote, KindTuple:
        if len(a.list) != len(b.list) {
            return false
        }
        for i := range a.list {
            if !Equal(a.list[i], b.list[i]) {
                return false
            }
        }
        return true
    case KindFunction:
        return a.fn == b.fn
    case KindLazySeq:
        return a.seq == b.seq
    case KindDict:
        return a.dict.Equal(b.dict)
    case KindRecord:
        return a.rec == b.rec
    }
    return false
}

func isEmptyListLike(v Value) bool {
    return v.kind == KindList && len(v.list) == 0
}

// Less defines the total order used internally by Dict for deterministic
// iteration, and surfaced to user code by `sort`/`quicksort`-style
// comparisons. Numbers order by magnitude, strings/symbols order by
// Unicode collation (golang.org/x/text/collate) rather than raw byte
// comparison, lists/tuples order lexicographically by element.
func Less(a, b Value) bool {
    if a.kind != b.kind {
        return a.kind < b.kind
    }
    switch a.kind {
    case KindNum:
        return a.num.LessThan(b.num)
    case KindBool:
        return !a.b && b.b
    case KindString, KindSymbol:
        return collator.CompareString(a.str, b.str) < 0
    case KindList, KindQuote, KindTuple:
        for i := 0; i < len(a.list) && i < len(b.list); i++ {
            if Equal(a.list[i], b.list[i]) {
                continue
            }
            return Less(a.list[i], b.list[i])
        }
        return len(a.list) < len(b.list)
    default:
        return false
    }
}
