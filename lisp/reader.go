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

// token is a single lexical unit tagged with its source position so
// that reader errors and (eventually) stacktraces can cite file:line:col.
type token struct {
    text   string
    line   int
    col    int
    kind   tokenKind
}

type tokenKind uint8

const (
    tokAtom tokenKind = iota
    tokString
    tokOpenList
    tokOpenTuple
    tokClose
    tokQuote
)

// tokenize runs the single-pass character state machine over src,
// producing the flat token stream the recursive-descent reader below
// consumes. States mirror a classic s-expression lexer: idle, atom,
// string, string-escape.
func tokenize(src string) ([]token, *Error) {
    var toks []token
    runes := []rune(src)
    line, col := 1, 1
    i := 0
    advance := func(n int) {
        for k := 0; k < n; k++ {
            if i+k < len(runes) && runes[i+k] == '\n' {
                line++
                col = 1
            } else {
                col++
            }
        }
        i += n
    }
    for i < len(runes) {
        c := runes[i]
        switch {
        case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
            advance(1)
        case c == ';':
            for i < len(runes) && runes[i] != '\n' {
                advance(1)
            }
        case c == '(':
            toks = append(toks, token{text: "(", line: line, col: col, kind: tokOpenList})
            advance(1)
        case c == ')':
            toks = append(toks, token{text: ")", line: line, col: col, kind: tokClose})
            advance(1)
        case c == '\'':
            toks = append(toks, token{text: "'", line: line, col: col, kind: tokQuote})
            advance(1)
        case c == '^' && i+1 < len(runes) && runes[i+1] == '(':
            toks = append(toks, token{text: "^(", line: line, col: col, kind: tokOpenTuple})
            advance(2)
        case c == '"':
            startLine, startCol := line, col
            advance(1)
            var b strings.Builder
            closed := false
            for i < len(runes) {
                if runes[i] == '"' {
                    advance(1)
                    closed = true
                    break
                }
                if runes[i] == '\\' && i+1 < len(runes) {
                    advance(1)
                    b.WriteRune(unescape(runes[i]))
                    advance(1)
                    continue
                }
                b.WriteRune(runes[i])
                advance(1)
            }
            if !closed {
                return nil, readerError(startLine, startCol, "unterminated string")
            }
            toks = append(toks, token{text: b.String(), line: startLine, col: startCol, kind: tokString})
        default:
            startLine, startCol := line, col
            var b strings.Builder
            for i < len(runes) && !isDelimiter(runes[i]) {
                b.WriteRune(runes[i])
                advance(1)
            }
            toks = append(toks, token{text: b.String(), line: startLine, col: startCol, kind: tokAtom})
        }
    }
    return toks, nil
}

func unescape(r rune) rune {
    switch r {
    case 'n':
        return '\n'
    case 't':
        return '\t'
    case 'r':
        return '\r'
    case '\\':
        return '\\'
    case '"':
        return '"'
    default:
        return r
    }
}

func isDelimiter(r rune) bool {
    switch r {
    case ' ', '\t', '\n', '\r', ',', '(', ')', '\'', ';':
        return true
    }
    return false
}

// Reader turns a token stream into a sequence of top-level Values.
type Reader struct {
    toks []token
    pos  int
}

// Read parses every top-level form in src and returns them in order.
func Read(src string) ([]Value, *Error) {
    toks, err := tokenize(src)
    if err != nil {
        return nil, err
    }
    r := &Reader{toks: toks}
    var forms []Value
    for !r.atEnd() {
        v, err := r.readForm()
        if err != nil {
            return nil, err
        }
        forms = append(forms, v)
    }
    return forms, nil
}

// ReadOne parses exactly one top-level form, used by the REPL to submit
// forms one at a time. It reports whether more tokens remain.
func ReadOne(src string) (Value, bool, *Error) {
    toks, err := tokenize(src)
    if err != nil {
        return Value{}, false, err
    }
    r := &Reader{toks: toks}
    if r.atEnd() {
        return Value{}, false, readerError(1, 1, "empty input")
    }
    v, err := r.readForm()
    if err != nil {
        return Value{}, false, err
    }
    return v, !r.atEnd(), nil
}

func (r *Reader) atEnd() bool { return r.pos >= len(r.toks) }

func (r *Reader) peek() token { return r.toks[r.pos] }

func (r *Reader) readForm() (Value, *Error) {
    if r.atEnd() {
        return Value{}, readerError(0, 0, "unexpected end of input")
    }
    t := r.peek()
    switch t.kind {
    case tokOpenList:
        r.pos++
        return r.readList(tokClose, false, t.line, t.col)
    case tokOpenTuple:
        r.pos++
        return r.readList(tokClose, true, t.line, t.col)
    case tokClose:
        return Value{}, readerError(t.line, t.col, "unexpected )")
    case tokQuote:
        r.pos++
        if r.atEnd() {
            return Value{}, readerError(t.line, t.col, "unexpected end of input after quote")
        }
        inner, err := r.readForm()
        if err != nil {
            return Value{}, err
        }
        if inner.kind == KindList {
            return QuoteOf(inner.list), nil
        }
        return QuoteOf([]Value{inner}), nil
    case tokString:
        r.pos++
        return Str(t.text), nil
    default:
        r.pos++
        return parseAtom(t)
    }
}

func (r *Reader) readList(closeKind tokenKind, asTuple bool, line, col int) (Value, *Error) {
    var items []Value
    for {
        if r.atEnd() {
            return Value{}, readerError(line, col, "unbalanced parens")
        }
        if r.peek().kind == closeKind {
            r.pos++
            break
        }
        v, err := r.readForm()
        if err != nil {
            return Value{}, err
        }
        items = append(items, v)
    }
    if asTuple {
        return TupleOf(items), nil
    }
    return ListFromSlice(items), nil
}

func parseAtom(t token) (Value, *Error) {
    switch t.text {
    case "true":
        return True, nil
    case "false":
        return False, nil
    case "nil":
        return Nil, nil
    }
    if d, err := decimal.NewFromString(t.text); err == nil {
        return Num(d), nil
    }
    return Sym(t.text), nil
}
