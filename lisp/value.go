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
    "github.com/google/uuid"
    "github.com/shopspring/decimal"
)

// Kind tags the variant carried by a Value. x7 is homoiconic: the same
// Value type represents both runtime data and unevaluated AST nodes.
type Kind uint8

const (
    KindNum Kind = iota
    KindBool
    KindNil
    KindString
    KindSymbol
    KindList
    KindQuote
    KindTuple
    KindFunction
    KindLazySeq
    KindDict
    KindRecord
)

// Value is the universal tagged value of the language. The zero Value
// has kind KindNum; the nil value is the Nil variable.
type Value struct {
    kind Kind
    num  decimal.Decimal
    b    bool
    str  string  // String payload or Symbol name
    list []Value // List, Quote, Tuple payload
    fn   *Function
    seq  *LazySeq
    dict *Dict
    rec  *Record
}

var Nil = Value{kind: KindNil}
var True = Value{kind: KindBool, b: true}
var False = Value{kind: KindBool, b: false}

func Bool(b bool) Value {
    if b {
        return True
    }
    return False
}

func Num(d decimal.Decimal) Value  { return Value{kind: KindNum, num: d} }
func NumFromInt(i int64) Value     { return Value{kind: KindNum, num: decimal.NewFromInt(i)} }
func Str(s string) Value           { return Value{kind: KindString, str: s} }
func Sym(s string) Value           { return Value{kind: KindSymbol, str: s} }
func List(items ...Value) Value    { return Value{kind: KindList, list: append([]Value{}, items...)} }
func ListFromSlice(items []Value) Value {
    return Value{kind: KindList, list: items}
}
func QuoteOf(items []Value) Value { return Value{kind: KindQuote, list: items} }
func TupleOf(items []Value) Value { return Value{kind: KindTuple, list: items} }
func FuncVal(f *Function) Value   { return Value{kind: KindFunction, fn: f} }
func SeqVal(s *LazySeq) Value     { return Value{kind: KindLazySeq, seq: s} }
func DictVal(d *Dict) Value       { return Value{kind: KindDict, dict: d} }
func RecordVal(r *Record) Value   { return Value{kind: KindRecord, rec: r} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool  { return v.kind == KindNil }
func (v Value) IsList() bool { return v.kind == KindList || v.kind == KindQuote || v.kind == KindTuple }

func (v Value) AsBool() bool           { return v.kind == KindBool && v.b }
func (v Value) AsNum() decimal.Decimal { return v.num }
func (v Value) AsString() string       { return v.str }
func (v Value) AsSymbol() string       { return v.str }
func (v Value) Elements() []Value      { return v.list }
func (v Value) AsFunction() *Function  { return v.fn }
func (v Value) AsSeq() *LazySeq        { return v.seq }
func (v Value) AsDict() *Dict          { return v.dict }
func (v Value) AsRecord() *Record      { return v.rec }

// Truthy implements the language's truthiness rule: only false and nil
// are falsy. Zero, empty string, empty list are truthy.
func (v Value) Truthy() bool {
    switch v.kind {
    case KindNil:
        return false
    case KindBool:
        return v.b
    default:
        return true
    }
}

// TypeName returns the string produced by the `type` builtin.
func (v Value) TypeName() string {
    switch v.kind {
    case KindNum:
        return "num"
    case KindBool:
        return "bool"
    case KindNil:
        return "nil"
    case KindString:
        return "str"
    case KindSymbol:
        return "symbol"
    case KindList:
        return "list"
    case KindQuote:
        return "quote"
    case KindTuple:
        return "tuple"
    case KindFunction:
        return "function"
    case KindLazySeq:
        return "iter"
    case KindDict:
        return "dict"
    case KindRecord:
        return "record"
    }
    return "unknown"
}

// Function is a callable: either a user-defined lambda with a body Value,
// or a builtin backed by a Go closure. Functions never close over the
// caller's lexical frame; invocation always reparents to the root frame.
type Function struct {
    Name     string
    Params   []string
    HasRest  bool
    Rest     string
    Body     Value
    Doc      string
    Builtin  BuiltinFunc
    id       uuid.UUID
}

// BuiltinFunc is the Go implementation backing a builtin Declaration.
type BuiltinFunc func(args []Value, env *Env) (Value, error)

func NewFunction(name string, params []string, hasRest bool, rest string, body Value, doc string) *Function {
    return &Function{Name: name, Params: params, HasRest: hasRest, Rest: rest, Body: body, Doc: doc, id: uuid.New()}
}

func NewBuiltin(name string, doc string, impl BuiltinFunc) *Function {
    return &Function{Name: name, Doc: doc, Builtin: impl, id: uuid.New()}
}

// ID is a stable synthetic identity used only for diagnostics (log
// correlation, disambiguating two otherwise-identical anonymous
// functions in error output). It plays no role in language semantics.
func (f *Function) ID() uuid.UUID { return f.id }

func (f *Function) IsVariadic() bool { return f.HasRest }

func (f *Function) Arity() (min int, max int) {
    min = len(f.Params)
    if f.HasRest {
        max = -1
    } else {
        max = len(f.Params)
    }
    return
}
