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

// LazySeq hides a demand-driven sequence's private state behind a
// synchronous pull call. The state (a counter, an index, a remaining
// count) lives in local variables captured by the pull closure, not in
// fields of the struct. Composing map/filter/take is stacking these
// structs. clone builds a fresh pull closure over a cloned source, so
// two consumers of the same LazySeq value do not share cursor state;
// the one exception is a file record's lines, whose clones all read
// from the same open file.
type LazySeq struct {
    origin string
    clone  func() *LazySeq
    pull   func() (Value, bool)
}

func newLazySeq(origin string, makeState func() func() (Value, bool)) *LazySeq {
    var s *LazySeq
    s = &LazySeq{
        origin: origin,
        pull:   makeState(),
        clone: func() *LazySeq {
            return newLazySeq(origin, makeState)
        },
    }
    return s
}

// Clone returns an independent cursor over the same logical sequence.
func (s *LazySeq) Clone() *LazySeq { return s.clone() }

// RangeSeq, RangeSeqTo and RangeSeqFromTo construct the `range`
// builtin's three arities.
func RangeSeq() *LazySeq {
    return newLazySeq("range", func() func() (Value, bool) {
        n := decimal.Zero
        one := decimal.NewFromInt(1)
        return func() (Value, bool) {
            v := Num(n)
            n = n.Add(one)
            return v, true
        }
    })
}

func RangeSeqTo(end decimal.Decimal) *LazySeq {
    return newLazySeq("range", func() func() (Value, bool) {
        n := decimal.Zero
        one := decimal.NewFromInt(1)
        return func() (Value, bool) {
            if !n.LessThan(end) {
                return Value{}, false
            }
            v := Num(n)
            n = n.Add(one)
            return v, true
        }
    })
}

func RangeSeqFromTo(start, end decimal.Decimal) *LazySeq {
    return newLazySeq("range", func() func() (Value, bool) {
        n := start
        one := decimal.NewFromInt(1)
        return func() (Value, bool) {
            if !n.LessThan(end) {
                return Value{}, false
            }
            v := Num(n)
            n = n.Add(one)
            return v, true
        }
    })
}

// SeqFromList lets a concrete List/Tuple/Quote be consumed through the
// same lazy interface as range, so `map`/`filter`/`take` work uniformly
// over both without a dedicated materialized-sequence code path.
func SeqFromList(items []Value) *LazySeq {
    return newLazySeq("list", func() func() (Value, bool) {
        i := 0
        return func() (Value, bool) {
            if i >= len(items) {
                return Value{}, false
            }
            v := items[i]
            i++
            return v, true
        }
    })
}

// MapSeq applies f lazily to each pulled element.
func MapSeq(f func(Value) (Value, error), src *LazySeq) *LazySeq {
    return &LazySeq{
        origin: "map",
        pull: func() (Value, bool) {
            v, ok := src.pull()
            if !ok {
                return Value{}, false
            }
            r, err := f(v)
            if err != nil {
                panic(err)
            }
            return r, true
        },
        clone: func() *LazySeq { return MapSeq(f, src.Clone()) },
    }
}

// FilterSeq yields only elements for which pred is truthy.
func FilterSeq(pred func(Value) (bool, error), src *LazySeq) *LazySeq {
    return &LazySeq{
        origin: "filter",
        pull: func() (Value, bool) {
            for {
                v, ok := src.pull()
                if !ok {
                    return Value{}, false
                }
                keep, err := pred(v)
                if err != nil {
                    panic(err)
                }
                if keep {
                    return v, true
                }
            }
        },
        clone: func() *LazySeq { return FilterSeq(pred, src.Clone()) },
    }
}

// TakeSeq yields at most n elements from src, always finite.
func TakeSeq(n int, src *LazySeq) *LazySeq {
    return newLazySeq("take", func() func() (Value, bool) {
        remaining := n
        c := src.Clone()
        return func() (Value, bool) {
            if remaining <= 0 {
                return Value{}, false
            }
            v, ok := c.pull()
            if !ok {
                remaining = 0
                return Value{}, false
            }
            remaining--
            return v, true
        }
    })
}

// DoAll materializes a LazySeq to a Value slice.
func DoAll(s *LazySeq) []Value {
    c := s.Clone()
    var out []Value
    for {
        v, ok := c.pull()
        if !ok {
            break
        }
        out = append(out, v)
    }
    return out
}

// ReduceSeq folds left-to-right. ok=false when src is empty and no
// init was supplied.
func ReduceSeq(f func(acc, x Value) (Value, error), init Value, hasInit bool, src *LazySeq) (Value, bool, error) {
    c := src.Clone()
    acc := init
    if !hasInit {
        v, ok := c.pull()
        if !ok {
            return Value{}, false, nil
        }
        acc = v
    }
    for {
        v, ok := c.pull()
        if !ok {
            break
        }
        r, err := f(acc, v)
        if err != nil {
            return Value{}, false, err
        }
        acc = r
    }
    return acc, true, nil
}

// ForeachSeq drives src purely for side effects.
func ForeachSeq(f func(Value) error, src *LazySeq) error {
    c := src.Clone()
    for {
        v, ok := c.pull()
        if !ok {
            return nil
        }
        if err := f(v); err != nil {
            return err
        }
    }
}
