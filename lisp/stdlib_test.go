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

const fibSrc = `
(defn fib (n)
  (if (< n 2)
      n
      (+ (fib (- n 1)) (fib (- n 2)))))
`

func TestFibonacci(t *testing.T) {
    in := newTestInterp()
    if _, err := in.EvalSource(fibSrc); err != nil {
        t.Fatalf("defn fib: %v", err)
    }
    cases := map[string]int64{
        "(fib 0)":  0,
        "(fib 1)":  1,
        "(fib 10)": 55,
    }
    for src, want := range cases {
        v, err := in.EvalSource(src)
        if err != nil {
            t.Fatalf("eval %s: %v", src, err)
        }
        if v.AsNum().IntPart() != want {
            t.Fatalf("%s: expected %d, got %v", src, want, Serialize(v))
        }
    }
}

// Functions do not close over their caller's locals, so the partition
// helpers take the pivot as an argument instead of capturing it.
const quicksortSrc = `
(defn qs-lower (p l)
  (if (empty? l)
      (list)
      (if (< (head l) p)
          (cons (head l) (qs-lower p (tail l)))
          (qs-lower p (tail l)))))
(defn qs-upper (p l)
  (if (empty? l)
      (list)
      (if (< (head l) p)
          (qs-upper p (tail l))
          (cons (head l) (qs-upper p (tail l))))))
(defn quicksort (l)
  (if (empty? l)
      l
      (do
        (def pivot (head l))
        (def rest (tail l))
        (+ (+ (quicksort (qs-lower pivot rest)) (list pivot)) (quicksort (qs-upper pivot rest))))))
`

func TestQuicksort(t *testing.T) {
    in := newTestInterp()
    if _, err := in.EvalSource(quicksortSrc); err != nil {
        t.Fatalf("defn quicksort: %v", err)
    }
    v, err := in.EvalSource(`(quicksort '(3 1 2))`)
    if err != nil {
        t.Fatalf("eval quicksort: %v", err)
    }
    items := v.Elements()
    want := []int64{1, 2, 3}
    if len(items) != 3 {
        t.Fatalf("expected 3 elements, got %v", Serialize(v))
    }
    for i, w := range want {
        if items[i].AsNum().IntPart() != w {
            t.Fatalf("element %d: expected %d, got %v", i, w, Serialize(items[i]))
        }
    }
    v, err = in.EvalSource(`(quicksort '())`)
    if err != nil {
        t.Fatalf("eval quicksort empty: %v", err)
    }
    if len(v.Elements()) != 0 {
        t.Fatalf("expected empty result, got %v", Serialize(v))
    }
}

const dotProductSrc = `
(defn dot-product (a b)
  (reduce (fn (acc p) (+ acc (* (nth p 0) (nth p 1)))) 0 (zip a b)))
`

func TestDotProduct(t *testing.T) {
    in := newTestInterp()
    if _, err := in.EvalSource(dotProductSrc); err != nil {
        t.Fatalf("defn dot-product: %v", err)
    }
    v, err := in.EvalSource(`(dot-product '(1 2 3) '(4 5 6))`)
    if err != nil {
        t.Fatalf("eval dot-product: %v", err)
    }
    if v.AsNum().IntPart() != 32 {
        t.Fatalf("expected 32, got %v", Serialize(v))
    }
}

func TestSortIdempotence(t *testing.T) {
    in := newTestInterp()
    once, err := in.EvalSource(`(sort '(3 1 2))`)
    if err != nil {
        t.Fatalf("sort: %v", err)
    }
    twice, err := in.EvalSource(`(sort (sort '(3 1 2)))`)
    if err != nil {
        t.Fatalf("sort sort: %v", err)
    }
    if !Equal(ListFromSlice(once.Elements()), ListFromSlice(twice.Elements())) {
        t.Fatalf("sort should be idempotent: %v vs %v", Serialize(once), Serialize(twice))
    }
}
