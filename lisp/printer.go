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
    "strconv"
    "strings"
)

// Serialize renders a Value the way stacktraces, the REPL and `-l`
// output do: a read-back-able form for every variant except
// Function/LazySeq/Dict/Record, which print an opaque descriptive tag.
func Serialize(v Value) string {
    switch v.kind {
    case KindNil:
        return "nil"
    case KindBool:
        if v.b {
            return "true"
        }
        return "false"
    case KindNum:
        return v.num.String()
    case KindString:
        return strconv.Quote(v.str)
    case KindSymbol:
        return v.str
    case KindList:
        return "(" + joinValues(v.list) + ")"
    case KindQuote:
        return "'(" + joinValues(v.list) + ")"
    case KindTuple:
        return "^(" + joinValues(v.list) + ")"
    case KindFunction:
        if v.fn.Name != "" {
            return "<function " + v.fn.Name + ">"
        }
        return "<function anonymous " + v.fn.id.String() + ">"
    case KindLazySeq:
        return "<iter " + v.seq.origin + ">"
    case KindDict:
        return "<dict " + strconv.Itoa(v.dict.Len()) + " entries>"
    case KindRecord:
        return "<record " + v.rec.Name + ">"
    }
    return "<unknown>"
}

// Display renders a Value the way println shows it to a human: strings
// are shown without surrounding quotes, everything else matches Serialize.
func Display(v Value) string {
    if v.kind == KindString {
        return v.str
    }
    return Serialize(v)
}

func joinValues(items []Value) string {
    parts := make([]string, len(items))
    for i, it := range items {
        parts[i] = Serialize(it)
    }
    return strings.Join(parts, " ")
}
