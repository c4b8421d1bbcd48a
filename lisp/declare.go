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
    "sort"
    "strings"
)

// Declaration binds one builtin name to its documentation and Go
// implementation. This registry is the single source of truth for both
// binding the root Environment and answering `doc`/`all-symbols`
// queries, instead of keeping arity tables and doc strings separately.
type Declaration struct {
    Name    string
    Chapter string
    Doc     string
    Fn      *Function
}

var registry []Declaration
var chapter string

// declareTitle groups subsequent declare calls under a chapter name,
// purely to organize `doc`'s listing output.
func declareTitle(name string) { chapter = name }

func declare(name, doc string, impl BuiltinFunc) {
    fn := NewBuiltin(name, doc, impl)
    registry = append(registry, Declaration{Name: name, Chapter: chapter, Doc: doc, Fn: fn})
}

// Bind installs every registered Declaration into env (the root frame).
func Bind(env *Env) {
    for _, d := range registry {
        env.DefineRoot(d.Name, FuncVal(d.Fn))
    }
}

// Doc renders the documentation for a single builtin, or a full
// chapter-grouped listing when name is empty — mirroring the teacher's
// Help/WriteDocumentation chapter grouping, without its separate
// org-mode documentation-generation script (out of scope).
func Doc(name string) string {
    if name == "" {
        return docListing()
    }
    for _, d := range registry {
        if d.Name == name {
            if d.Doc == "" {
                return d.Name + ": (no documentation)"
            }
            return d.Name + ": " + d.Doc
        }
    }
    return "no such builtin: " + name
}

func docListing() string {
    byChapter := make(map[string][]string)
    var chapters []string
    for _, d := range registry {
        if _, ok := byChapter[d.Chapter]; !ok {
            chapters = append(chapters, d.Chapter)
        }
        byChapter[d.Chapter] = append(byChapter[d.Chapter], d.Name)
    }
    sort.Strings(chapters)
    var b strings.Builder
    for _, c := range chapters {
        names := byChapter[c]
        sort.Strings(names)
        b.WriteString(c)
        b.WriteString(":\n")
        for _, n := range names {
            b.WriteString("  ")
            b.WriteString(n)
            b.WriteString("\n")
        }
    }
    return b.String()
}
