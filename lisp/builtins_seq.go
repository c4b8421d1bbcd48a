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

func init() {
    declareTitle("sequences")

    declare("range", "returns a lazy sequence of numbers: 0.., 0..n, or a..b", func(args []Value, env *Env) (Value, error) {
        switch len(args) {
        case 0:
            return SeqVal(RangeSeq()), nil
        case 1:
            if args[0].Kind() != KindNum {
                return Value{}, badTypes("range expects numbers")
            }
            return SeqVal(RangeSeqTo(args[0].AsNum())), nil
        case 2:
            if args[0].Kind() != KindNum || args[1].Kind() != KindNum {
                return Value{}, badTypes("range expects numbers")
            }
            return SeqVal(RangeSeqFromTo(args[0].AsNum(), args[1].AsNum())), nil
        }
        return Value{}, arityMismatch("range", 0, 2, len(args))
    })

    declare("map", "lazily applies a function to each element of a sequence", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindFunction {
            return Value{}, badTypes("map expects (map fn seq)")
        }
        src, err := toSeq(args[1])
        if err != nil {
            return Value{}, err
        }
        fn := args[0].AsFunction()
        root := env.Root()
        return SeqVal(MapSeq(func(x Value) (Value, error) {
            return Apply(fn, []Value{x}, root)
        }, src)), nil
    })

    declare("filter", "lazily keeps elements of a sequence matching a predicate", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindFunction {
            return Value{}, badTypes("filter expects (filter pred seq)")
        }
        src, err := toSeq(args[1])
        if err != nil {
            return Value{}, err
        }
        fn := args[0].AsFunction()
        root := env.Root()
        return SeqVal(FilterSeq(func(x Value) (bool, error) {
            r, err := Apply(fn, []Value{x}, root)
            if err != nil {
                return false, err
            }
            return r.Truthy(), nil
        }, src)), nil
    })

    declare("take", "lazily yields at most n elements of a sequence", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindNum {
            return Value{}, badTypes("take expects (take n seq)")
        }
        src, err := toSeq(args[1])
        if err != nil {
            return Value{}, err
        }
        n := int(args[0].AsNum().IntPart())
        return SeqVal(TakeSeq(n, src)), nil
    })

    declare("doall", "eagerly materializes a sequence into a list", func(args []Value, env *Env) (Value, error) {
        if len(args) != 1 {
            return Value{}, arityMismatch("doall", 1, 1, len(args))
        }
        src, err := toSeq(args[0])
        if err != nil {
            return Value{}, err
        }
        return ListFromSlice(DoAll(src)), nil
    })

    declare("reduce", "folds a function left-to-right over a sequence", func(args []Value, env *Env) (Value, error) {
        var fn Value
        var seqArg Value
        var init Value
        hasInit := false
        switch len(args) {
        case 2:
            fn, seqArg = args[0], args[1]
        case 3:
            fn, init, seqArg = args[0], args[1], args[2]
            hasInit = true
        default:
            return Value{}, arityMismatch("reduce", 2, 3, len(args))
        }
        if fn.Kind() != KindFunction {
            return Value{}, badTypes("reduce expects a function")
        }
        src, err := toSeq(seqArg)
        if err != nil {
            return Value{}, err
        }
        root := env.Root()
        f := fn.AsFunction()
        result, ok, rerr := ReduceSeq(func(acc, x Value) (Value, error) {
            return Apply(f, []Value{acc, x}, root)
        }, init, hasInit, src)
        if rerr != nil {
            return Value{}, rerr
        }
        if !ok {
            return Value{}, badTypes("reduce of empty sequence with no initial value")
        }
        return result, nil
    })

    declare("foreach", "evaluates a function once per element for side effects", func(args []Value, env *Env) (Value, error) {
        if len(args) != 2 || args[0].Kind() != KindFunction {
            return Value{}, badTypes("foreach expects (foreach fn seq)")
        }
        src, err := toSeq(args[1])
        if err != nil {
            return Value{}, err
        }
        root := env.Root()
        fn := args[0].AsFunction()
        ferr := ForeachSeq(func(x Value) error {
            _, err := Apply(fn, []Value{x}, root)
            return err
        }, src)
        if ferr != nil {
            return Value{}, ferr
        }
        return Nil, nil
    })
}

// toSeq lets map/filter/take/reduce/foreach/doall accept a concrete
// List/Tuple/Quote as well as a LazySeq, consuming both through the
// same pull-based interface.
func toSeq(v Value) (*LazySeq, error) {
    switch v.Kind() {
    case KindLazySeq:
        return v.AsSeq(), nil
    case KindList, KindQuote, KindTuple:
        return SeqFromList(v.Elements()), nil
    case KindNil:
        return SeqFromList(nil), nil
    }
    return nil, badTypes("expected a sequence, got %s", v.TypeName())
}
