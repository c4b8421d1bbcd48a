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

func TestDictAssocGetRemove(t *testing.T) {
    v := evalString(t, `(get (assoc (dict) "a" 1) "a")`)
    if v.AsNum().IntPart() != 1 {
        t.Fatalf("expected 1, got %v", Serialize(v))
    }
    v = evalString(t, `(get (dict "a" 1) "missing" "default")`)
    if v.AsString() != "default" {
        t.Fatalf("expected default, got %v", Serialize(v))
    }
    v = evalString(t, `(get (remove (dict "a" 1) "a") "a" "gone")`)
    if v.AsString() != "gone" {
        t.Fatalf("expected gone, got %v", Serialize(v))
    }
}

func TestDictAssocIsPersistent(t *testing.T) {
    d1 := NewDict()
    d2 := d1.Assoc(Str("k"), NumFromInt(1))
    if d1.Len() != 0 {
        t.Fatalf("original dict should be unaffected by Assoc, got len %d", d1.Len())
    }
    if d2.Len() != 1 {
        t.Fatalf("new dict should have one entry, got %d", d2.Len())
    }
}

func TestDictIterationIsOrdered(t *testing.T) {
    d, err := DictFromPairs([]Value{Str("b"), NumFromInt(2), Str("a"), NumFromInt(1), Str("c"), NumFromInt(3)})
    if err != nil {
        t.Fatalf("DictFromPairs: %v", err)
    }
    var keys []string
    d.Each(func(k, v Value) bool {
        keys = append(keys, k.AsString())
        return true
    })
    if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
        t.Fatalf("expected sorted a,b,c, got %v", keys)
    }
}
