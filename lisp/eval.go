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

// Eval reduces a Value to a Value under env. Self-evaluating variants
// return immediately; List dispatches either to a special form or to
// function application; Quote yields a List of its unevaluated
// elements. The `restart` label lets tail positions of
// if/do/cond/match/bind loop back in rather than recursing on the Go
// stack — a Go-level stack-depth mitigation, not tail-call optimization
// of user-level recursion (and/or and function application still
// recurse).
func Eval(v Value, env *Env) (result Value, err error) {
restart:
    switch v.kind {
    case KindSymbol:
        val, ok := env.Lookup(v.str)
        if !ok {
            return Value{}, undefinedSymbol(v.str)
        }
        return val, nil
    case KindList:
        if len(v.list) == 0 {
            return v, nil
        }
        head := v.list[0]
        if head.kind == KindSymbol && len(head.str) > 1 && head.str[0] == '.' {
            return evalMemberCall(head.str[1:], v.list[1:], env)
        }
        if head.kind == KindSymbol {
            switch head.str {
            case "def":
                return evalDef(v.list[1:], env)
            case "defn":
                return evalDefn(v.list[1:], env)
            case "fn":
                return evalFn(v.list[1:], env)
            case "if":
                nv, nenv, tail, rv, rerr := evalIf(v.list[1:], env)
                if tail {
                    v, env = nv, nenv
                    goto restart
                }
                return rv, rerr
            case "cond":
                nv, nenv, tail, rv, rerr := evalCond(v.list[1:], env)
                if tail {
                    v, env = nv, nenv
                    goto restart
                }
                return rv, rerr
            case "match":
                nv, nenv, tail, rv, rerr := evalMatch(v.list[1:], env)
                if tail {
                    v, env = nv, nenv
                    goto restart
                }
                return rv, rerr
            case "do":
                if len(v.list) == 1 {
                    return Nil, nil
                }
                for _, e := range v.list[1 : len(v.list)-1] {
                    if _, err := Eval(e, env); err != nil {
                        return Value{}, err
                    }
                }
                v = v.list[len(v.list)-1]
                goto restart
            case "bind":
                nv, nenv, err := evalBind(v.list[1:], env)
                if err != nil {
                    return Value{}, err
                }
                v, env = nv, nenv
                goto restart
            case "quote":
                if len(v.list) != 2 {
                    return Value{}, badTypes("quote expects exactly one argument")
                }
                return quoteForm(v.list[1]), nil
            case "and":
                return evalAnd(v.list[1:], env)
            case "or":
                return evalOr(v.list[1:], env)
            }
        }
        callee, err := Eval(head, env)
        if err != nil {
            return Value{}, err
        }
        if callee.kind != KindFunction {
            return Value{}, badTypes("cannot call a value of type %s", callee.TypeName())
        }
        args := make([]Value, len(v.list)-1)
        for i, a := range v.list[1:] {
            av, err := Eval(a, env)
            if err != nil {
                return Value{}, err
            }
            args[i] = av
        }
        return Apply(callee.fn, args, env.Root())
    case KindQuote:
        return ListFromSlice(v.list), nil
    default:
        return v, nil
    }
}

// evalMemberCall implements the `.method` sugar: (.name record args...)
// desugars to (call_method record "name" args...).
func evalMemberCall(method string, rest []Value, env *Env) (Value, error) {
    if len(rest) == 0 {
        return Value{}, badTypes(".%s requires a record argument", method)
    }
    recv, err := Eval(rest[0], env)
    if err != nil {
        return Value{}, err
    }
    if recv.kind != KindRecord {
        return Value{}, badTypes(".%s requires a record, got %s", method, recv.TypeName())
    }
    args := make([]Value, len(rest)-1)
    for i, a := range rest[1:] {
        av, err := Eval(a, env)
        if err != nil {
            return Value{}, err
        }
        args[i] = av
    }
    return recv.rec.CallMethod(method, args)
}

func quoteForm(v Value) Value {
    if v.kind == KindList {
        return QuoteOf(v.list)
    }
    return v
}

func evalDef(args []Value, env *Env) (Value, error) {
    if len(args) != 2 || args[0].kind != KindSymbol {
        return Value{}, badTypes("def expects (def symbol expr)")
    }
    val, err := Eval(args[1], env)
    if err != nil {
        return Value{}, err
    }
    env.Define(args[0].str, val)
    return val, nil
}

func parseParams(list []Value) (params []string, hasRest bool, rest string, err *Error) {
    for i := 0; i < len(list); i++ {
        if list[i].kind != KindSymbol {
            return nil, false, "", badTypes("parameter list must contain symbols")
        }
        if list[i].str == "&" {
            if i+2 != len(list) {
                return nil, false, "", badTypes("& must be followed by exactly one rest symbol")
            }
            return params, true, list[i+1].str, nil
        }
        params = append(params, list[i].str)
    }
    return params, false, "", nil
}

func evalDefn(args []Value, env *Env) (Value, error) {
    if len(args) < 3 || args[0].kind != KindSymbol || !args[1].IsList() {
        return Value{}, badTypes("defn expects (defn name (params...) body...)")
    }
    name := args[0].str
    params, hasRest, rest, perr := parseParams(args[1].list)
    if perr != nil {
        return Value{}, perr
    }
    body := args[2:]
    doc := ""
    if len(body) > 1 && body[0].kind == KindString {
        doc = body[0].str
        body = body[1:]
    }
    fn := NewFunction(name, params, hasRest, rest, wrapBody(body), doc)
    env.DefineRoot(name, FuncVal(fn))
    return FuncVal(fn), nil
}

func evalFn(args []Value, env *Env) (Value, error) {
    if len(args) < 1 || !args[0].IsList() {
        return Value{}, badTypes("fn expects (fn (params...) body...)")
    }
    params, hasRest, rest, perr := parseParams(args[0].list)
    if perr != nil {
        return Value{}, perr
    }
    body := args[1:]
    fn := NewFunction("", params, hasRest, rest, wrapBody(body), "")
    return FuncVal(fn), nil
}

func wrapBody(forms []Value) Value {
    if len(forms) == 1 {
        return forms[0]
    }
    items := append([]Value{Sym("do")}, forms...)
    return ListFromSlice(items)
}

func evalIf(args []Value, env *Env) (Value, *Env, bool, Value, error) {
    if len(args) < 2 || len(args) > 3 {
        return Value{}, nil, false, Value{}, badTypes("if expects (if pred then [else])")
    }
    pred, err := Eval(args[0], env)
    if err != nil {
        return Value{}, nil, false, Value{}, err
    }
    if pred.Truthy() {
        return args[1], env, true, Value{}, nil
    }
    if len(args) == 3 {
        return args[2], env, true, Value{}, nil
    }
    return Value{}, nil, false, Nil, nil
}

func evalCond(args []Value, env *Env) (Value, *Env, bool, Value, error) {
    if len(args)%2 != 0 {
        return Value{}, nil, false, Value{}, badTypes("cond expects an even number of arguments")
    }
    for i := 0; i+1 < len(args); i += 2 {
        p, err := Eval(args[i], env)
        if err != nil {
            return Value{}, nil, false, Value{}, err
        }
        if p.Truthy() {
            return args[i+1], env, true, Value{}, nil
        }
    }
    return Value{}, nil, false, Nil, nil
}

func evalMatch(args []Value, env *Env) (Value, *Env, bool, Value, error) {
    if len(args) < 1 || (len(args)-1)%2 != 0 {
        return Value{}, nil, false, Value{}, badTypes("match expects (match x v1 e1 v2 e2 ...)")
    }
    x, err := Eval(args[0], env)
    if err != nil {
        return Value{}, nil, false, Value{}, err
    }
    rest := args[1:]
    for i := 0; i+1 < len(rest); i += 2 {
        if rest[i].kind == KindSymbol && rest[i].str == "_" {
            return rest[i+1], env, true, Value{}, nil
        }
        candidate, err := Eval(rest[i], env)
        if err != nil {
            return Value{}, nil, false, Value{}, err
        }
        if Equal(x, candidate) {
            return rest[i+1], env, true, Value{}, nil
        }
    }
    return Value{}, nil, false, Nil, nil
}

func evalBind(args []Value, env *Env) (Value, *Env, error) {
    if len(args) < 2 || !args[0].IsList() || len(args[0].list)%2 != 0 {
        return Value{}, nil, badTypes("bind expects (bind (s1 e1 ...) body...)")
    }
    child := NewChildEnv(env)
    binders := args[0].list
    for i := 0; i+1 < len(binders); i += 2 {
        if binders[i].kind != KindSymbol {
            return Value{}, nil, badTypes("bind binder names must be symbols")
        }
        v, err := Eval(binders[i+1], child)
        if err != nil {
            return Value{}, nil, err
        }
        child.Define(binders[i].str, v)
    }
    return wrapBody(args[1:]), child, nil
}

func evalAnd(args []Value, env *Env) (Value, error) {
    result := True
    for _, a := range args {
        v, err := Eval(a, env)
        if err != nil {
            return Value{}, err
        }
        if !v.Truthy() {
            return v, nil
        }
        result = v
    }
    return result, nil
}

func evalOr(args []Value, env *Env) (Value, error) {
    var result Value = False
    for _, a := range args {
        v, err := Eval(a, env)
        if err != nil {
            return Value{}, err
        }
        if v.Truthy() {
            return v, nil
        }
        result = v
    }
    return result, nil
}

// Apply invokes fn with args. Per the language's scoping rule the new
// call frame parents to root, never to the caller's env — functions do
// not close over lexical scope. An error from the builtin or the body
// is raised with panic and recovered by Apply's deferred handler, which
// annotates it with this call's Frame and returns it as err.
func Apply(fn *Function, args []Value, root *Env) (result Value, err error) {
    defer func() {
        if r := recover(); r != nil {
            err = recoverToError(r, displayName(fn), args)
        }
    }()
    if fn.Builtin == nil {
        min, max := fn.Arity()
        if len(args) < min || (max >= 0 && len(args) > max) {
            panic(arityMismatch(displayName(fn), min, max, len(args)))
        }
    }
    if fn.Builtin != nil {
        v, berr := fn.Builtin(args, root)
        if berr != nil {
            if e, ok := berr.(*Error); ok {
                panic(e)
            }
            panic(badTypes("%s", berr.Error()))
        }
        return v, nil
    }
    frame := NewCallFrame(root)
    for i, p := range fn.Params {
        frame.Define(p, args[i])
    }
    if fn.HasRest {
        frame.Define(fn.Rest, ListFromSlice(append([]Value{}, args[len(fn.Params):]...)))
    }
    v, everr := Eval(fn.Body, frame)
    if everr != nil {
        if e, ok := everr.(*Error); ok {
            panic(e)
        }
        panic(badTypes("%s", everr.Error()))
    }
    return v, nil
}

func displayName(fn *Function) string {
    if fn.Name != "" {
        return fn.Name
    }
    return "<anonymous>"
}
