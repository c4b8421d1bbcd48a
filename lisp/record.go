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
    "bufio"
    "io"
    "os"

    "github.com/docker/go-units"
)

// RecordMethod is one callable exposed by a Record, carrying its own
// doc string the way a builtin Declaration does.
type RecordMethod struct {
    Doc  string
    Call func(args []Value) (Value, error)
}

// Record is the opaque host-object bridge: the interpreter core never
// knows anything about files, sockets, or any other external resource
// beyond this interface (name, named methods, invoker).
type Record struct {
    Name    string
    methods map[string]RecordMethod
}

func NewRecord(name string) *Record {
    return &Record{Name: name, methods: make(map[string]RecordMethod)}
}

func (r *Record) Define(name, doc string, call func(args []Value) (Value, error)) {
    r.methods[name] = RecordMethod{Doc: doc, Call: call}
}

func (r *Record) Methods() []string {
    names := make([]string, 0, len(r.methods))
    for n := range r.methods {
        names = append(names, n)
    }
    return names
}

func (r *Record) CallMethod(name string, args []Value) (Value, error) {
    m, ok := r.methods[name]
    if !ok {
        return Value{}, badTypes("record %s has no method %q", r.Name, name)
    }
    return m.Call(args)
}

// NewFileRecord wraps an *os.File as a Record, exposing read/write/
// close/lines/name/size — the one concrete Record shipped with the
// interpreter, grounding `fs::open`. `lines` composes with the Lazy
// Sequence Engine by exposing a LazySeq pulling one line at a time
// instead of reading the whole file up front.
func NewFileRecord(path, mode string) (*Record, error) {
    var flag int
    switch mode {
    case "r":
        flag = os.O_RDONLY
    case "w":
        flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
    case "a":
        flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
    default:
        return nil, badTypes("fs::open mode must be \"r\", \"w\", or \"a\", got %q", mode)
    }
    f, err := os.OpenFile(path, flag, 0644)
    if err != nil {
        return nil, badTypes("fs::open: %s", err.Error())
    }
    rec := NewRecord("file:" + path)
    rec.Define("name", "returns the path this record was opened with", func(args []Value) (Value, error) {
        return Str(path), nil
    })
    rec.Define("close", "closes the underlying file handle", func(args []Value) (Value, error) {
        return Nil, f.Close()
    })
    rec.Define("read", "reads the entire remaining file contents as a string", func(args []Value) (Value, error) {
        data, err := io.ReadAll(f)
        if err != nil {
            return Value{}, badTypes("read: %s", err.Error())
        }
        return Str(string(data)), nil
    })
    rec.Define("write", "writes a string to the file", func(args []Value) (Value, error) {
        if len(args) != 1 || args[0].Kind() != KindString {
            return Value{}, badTypes("write expects a single string argument")
        }
        n, err := f.WriteString(args[0].AsString())
        if err != nil {
            return Value{}, badTypes("write: %s", err.Error())
        }
        return NumFromInt(int64(n)), nil
    })
    rec.Define("size", "returns the file size, human-readable, as a string", func(args []Value) (Value, error) {
        info, err := f.Stat()
        if err != nil {
            return Value{}, badTypes("size: %s", err.Error())
        }
        return Str(units.HumanSize(float64(info.Size()))), nil
    })
    rec.Define("lines", "returns a lazy sequence of the file's lines", func(args []Value) (Value, error) {
        scanner := bufio.NewScanner(f)
        seq := newLazySeq("file-lines", func() func() (Value, bool) {
            return func() (Value, bool) {
                if scanner.Scan() {
                    return Str(scanner.Text()), true
                }
                return Value{}, false
            }
        })
        return SeqVal(seq), nil
    })
    return rec, nil
}
