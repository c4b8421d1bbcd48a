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

func TestLazyTakeFromInfiniteRange(t *testing.T) {
    v := evalString(t, `(doall (take 5 (map (fn (x) (* x x)) (range))))`)
    items := v.Elements()
    if len(items) != 5 {
        t.Fatalf("expected 5 elements, got %d", len(items))
    }
    want := []int64{0, 1, 4, 9, 16}
    for i, w := range want {
        if items[i].AsNum().IntPart() != w {
            t.Fatalf("element %d: expected %d, got %v", i, w, Serialize(items[i]))
        }
    }
}

func TestTakeNeverExhaustsInfiniteRange(t *testing.T) {
    v := evalString(t, `(doall (take 3 (range)))`)
    items := v.Elements()
    if len(items) != 3 {
        t.Fatalf("expected 3 elements, got %d", len(items))
    }
}

func TestFilterAndTakeComposition(t *testing.T) {
    v := evalString(t, `(doall (take 3 (filter (fn (x) (= (% x 2) 0)) (range))))`)
    items := v.Elements()
    want := []int64{0, 2, 4}
    if len(items) != 3 {
        t.Fatalf("expected 3 elements, got %d", len(items))
    }
    for i, w := range want {
        if items[i].AsNum().IntPart() != w {
            t.Fatalf("element %d: expected %d, got %v", i, w, Serialize(items[i]))
        }
    }
}

func TestMapPullCountIsBounded(t *testing.T) {
    calls := 0
    src := RangeSeq()
    mapped := MapSeq(func(v Value) (Value, error) {
        calls++
        return v, nil
    }, src)
    taken := TakeSeq(3, mapped)
    DoAll(taken)
    if calls != 3 {
        t.Fatalf("expected exactly 3 underlying pulls, got %d", calls)
    }
}

func TestReduceOverConcreteList(t *testing.T) {
    v := evalString(t, `(reduce (fn (acc x) (+ acc x)) 0 (list 1 2 3 4))`)
    if v.AsNum().IntPart() != 10 {
        t.Fatalf("expected 10, got %v", Serialize(v))
    }
}

// foreach visits elements strictly in order; observed here through a
// host-side builtin rather than a `def` inside the callback, since each
// call gets its own throwaway frame (see TestForeachDefDoesNotLeakToCaller).
func TestForeachSideEffectOrder(t *testing.T) {
    in := newTestInterp()
    var seen []int64
    in.Root.DefineRoot("record!", FuncVal(NewBuiltin("record!", "records an observed value for the test", func(args []Value, env *Env) (Value, error) {
        seen = append(seen, args[0].AsNum().IntPart())
        return Nil, nil
    })))
    if _, err := in.EvalSource(`(foreach (fn (x) (record! x)) (list 1 2 3))`); err != nil {
        t.Fatalf("foreach: %v", err)
    }
    if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
        t.Fatalf("expected side effects recorded in order [1 2 3], got %v", seen)
    }
}

// Functions never close over the caller's lexical environment: the call
// frame foreach's callback runs in is parented to root, not to the
// caller's frame, and is discarded when the call returns. A `def` inside
// the callback therefore cannot mutate the caller's `acc` binding.
func TestForeachDefDoesNotLeakToCaller(t *testing.T) {
    v := evalString(t, `(do (def acc (list)) (foreach (fn (x) (def acc (+ acc (list x)))) (list 1 2 3)) acc)`)
    if len(v.Elements()) != 0 {
        t.Fatalf("expected outer acc to remain empty, got %v", Serialize(v))
    }
}
