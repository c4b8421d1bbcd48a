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

import "github.com/google/btree"

// dictEntry is the element stored in the backing B-tree, ordered by
// Less so iteration and printing are deterministic. The language-level
// contract still treats Dict as an unordered mapping for equality.
type dictEntry struct {
    key Value
    val Value
}

func (e dictEntry) Less(than btree.Item) bool {
    return Less(e.key, than.(dictEntry).key)
}

// Dict is x7's associative Value variant. It wraps a persistent
// google/btree.BTree: assoc/remove clone the tree (an O(1) structural
// share of the unaffected nodes) rather than copying every pair, which
// keeps mutation-as-new-value cheap while preserving the Value
// immutability invariant — the same role FastDict's flat pairs array
// plays in the teacher, generalized here for ordered iteration.
type Dict struct {
    tree *btree.BTree
}

const dictDegree = 32

func NewDict() *Dict {
    return &Dict{tree: btree.New(dictDegree)}
}

func (d *Dict) Len() int { return d.tree.Len() }

func (d *Dict) Get(key Value) (Value, bool) {
    item := d.tree.Get(dictEntry{key: key})
    if item == nil {
        return Value{}, false
    }
    return item.(dictEntry).val, true
}

// Assoc returns a new Dict with key bound to val, leaving d unchanged.
func (d *Dict) Assoc(key, val Value) *Dict {
    clone := &Dict{tree: d.tree.Clone()}
    clone.tree.ReplaceOrInsert(dictEntry{key: key, val: val})
    return clone
}

// Remove returns a new Dict without key, leaving d unchanged.
func (d *Dict) Remove(key Value) *Dict {
    clone := &Dict{tree: d.tree.Clone()}
    clone.tree.Delete(dictEntry{key: key})
    return clone
}

// Each walks entries in ascending key order.
func (d *Dict) Each(fn func(k, v Value) bool) {
    d.tree.Ascend(func(item btree.Item) bool {
        e := item.(dictEntry)
        return fn(e.key, e.val)
    })
}

func (d *Dict) Equal(other *Dict) bool {
    if d.Len() != other.Len() {
        return false
    }
    eq := true
    d.Each(func(k, v Value) bool {
        ov, ok := other.Get(k)
        if !ok || !Equal(v, ov) {
            eq = false
            return false
        }
        return true
    })
    return eq
}

func DictFromPairs(pairs []Value) (*Dict, error) {
    if len(pairs)%2 != 0 {
        return nil, badTypes("dict requires an even number of arguments")
    }
    d := NewDict()
    for i := 0; i < len(pairs); i += 2 {
        d = d.Assoc(pairs[i], pairs[i+1])
    }
    return d, nil
}
