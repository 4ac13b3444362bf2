/*
File    : bhasha/eval/expressions.go
*/
package eval

import (
	"math"

	"github.com/ishanroy/bhasha/function"
	"github.com/ishanroy/bhasha/lexer"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/parser"
	"github.com/ishanroy/bhasha/scope"
)

func (i *Interpreter) evalExpr(expr parser.Expr, env *scope.Environment) (objects.Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return i.evalLiteral(e), nil

	case *parser.GroupingExpr:
		return i.evalExpr(e.Inner, env)

	case *parser.VariableExpr:
		return i.evalVariable(e, env)

	case *parser.UnaryExpr:
		return i.evalUnary(e, env)

	case *parser.BinaryExpr:
		return i.evalBinary(e, env)

	case *parser.LogicalExpr:
		return i.evalLogical(e, env)

	case *parser.AssignExpr:
		return i.evalAssign(e, env)

	case *parser.CallExpr:
		return i.evalCall(e, env)

	case *parser.ArrayExpr:
		return i.evalArrayLiteral(e, env)

	case *parser.MapExpr:
		return i.evalMapLiteral(e, env)

	case *parser.SubscriptExpr:
		return i.evalSubscript(e, env)

	case *parser.ModGetExpr:
		return i.evalModGet(e, env)
	}
	return objects.Nil(), runtimeErrorAt(expr.Tok(), "unhandled expression kind %T", expr)
}

func (i *Interpreter) evalLiteral(e *parser.LiteralExpr) objects.Value {
	switch e.Kind {
	case parser.LitNumber:
		return objects.Number(e.Number)
	case parser.LitBool:
		return objects.Bool(e.Bool)
	case parser.LitString:
		return objects.FromObject(i.alloc(objects.NewString(e.Str)).(*objects.String))
	case parser.LitNil:
		return objects.Nil()
	}
	return objects.Nil()
}

func (i *Interpreter) evalVariable(e *parser.VariableExpr, env *scope.Environment) (objects.Value, error) {
	v, ok := env.Get(e.Token.Hash)
	if !ok {
		return objects.Nil(), runtimeErrorAt(e.Token, "undefined variable: %s", e.Name)
	}
	return v, nil
}

func (i *Interpreter) evalUnary(e *parser.UnaryExpr, env *scope.Environment) (objects.Value, error) {
	right, err := i.evalExpr(e.Right, env)
	if err != nil {
		return objects.Nil(), err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		if !right.IsNumber() {
			return objects.Nil(), runtimeErrorAt(e.Operator, "unary - requires a Number, got %s", objects.TypeName(right))
		}
		return objects.Number(-right.Num), nil
	case lexer.BANG:
		return objects.Bool(!objects.IsTruthy(right)), nil
	}
	return objects.Nil(), runtimeErrorAt(e.Operator, "unknown unary operator %s", e.Operator.Lexeme)
}

func (i *Interpreter) evalBinary(e *parser.BinaryExpr, env *scope.Environment) (objects.Value, error) {
	left, err := i.evalExpr(e.Left, env)
	if err != nil {
		return objects.Nil(), err
	}
	right, err := i.evalExpr(e.Right, env)
	if err != nil {
		return objects.Nil(), err
	}

	switch e.Operator.Type {
	case lexer.EQ:
		return objects.Bool(objects.Equal(left, right)), nil
	case lexer.NEQ:
		return objects.Bool(!objects.Equal(left, right)), nil
	}

	// `+` additionally accepts two Strings for concatenation (§4.4).
	if e.Operator.Type == lexer.PLUS {
		if ls, lok := asString(left); lok {
			if rs, rok := asString(right); rok {
				return objects.FromObject(i.alloc(objects.NewString(ls + rs)).(*objects.String)), nil
			}
		}
	}

	switch e.Operator.Type {
	case lexer.LT, lexer.LTE, lexer.GT, lexer.GTE:
		if !left.IsNumber() || !right.IsNumber() {
			return objects.Nil(), runtimeErrorAt(e.Operator, "comparison %s requires two Numbers, got %s and %s",
				e.Operator.Lexeme, objects.TypeName(left), objects.TypeName(right))
		}
		switch e.Operator.Type {
		case lexer.LT:
			return objects.Bool(left.Num < right.Num), nil
		case lexer.LTE:
			return objects.Bool(left.Num <= right.Num), nil
		case lexer.GT:
			return objects.Bool(left.Num > right.Num), nil
		case lexer.GTE:
			return objects.Bool(left.Num >= right.Num), nil
		}
	}

	if !left.IsNumber() || !right.IsNumber() {
		return objects.Nil(), runtimeErrorAt(e.Operator, "operator %s requires two Numbers, got %s and %s",
			e.Operator.Lexeme, objects.TypeName(left), objects.TypeName(right))
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		return objects.Number(left.Num + right.Num), nil
	case lexer.MINUS:
		return objects.Number(left.Num - right.Num), nil
	case lexer.STAR:
		return objects.Number(left.Num * right.Num), nil
	case lexer.SLASH:
		if right.Num == 0 {
			return objects.Nil(), runtimeErrorAt(e.Operator, "division by zero")
		}
		return objects.Number(left.Num / right.Num), nil
	case lexer.PERCENT:
		if right.Num == 0 {
			return objects.Nil(), runtimeErrorAt(e.Operator, "division by zero")
		}
		return objects.Number(math.Mod(left.Num, right.Num)), nil
	case lexer.POWER:
		return objects.Number(math.Pow(left.Num, right.Num)), nil
	}
	return objects.Nil(), runtimeErrorAt(e.Operator, "unknown binary operator %s", e.Operator.Lexeme)
}

func asString(v objects.Value) (string, bool) {
	if v.Kind != objects.ObjKind {
		return "", false
	}
	s, ok := v.Obj.(*objects.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// evalLogical short-circuits and always yields a Bool, not either operand
// (§4.4 — unusual and deliberate).
func (i *Interpreter) evalLogical(e *parser.LogicalExpr, env *scope.Environment) (objects.Value, error) {
	left, err := i.evalExpr(e.Left, env)
	if err != nil {
		return objects.Nil(), err
	}
	if e.Operator.Type == lexer.OR {
		if objects.IsTruthy(left) {
			return objects.Bool(true), nil
		}
		right, err := i.evalExpr(e.Right, env)
		if err != nil {
			return objects.Nil(), err
		}
		return objects.Bool(objects.IsTruthy(right)), nil
	}
	// AND
	if !objects.IsTruthy(left) {
		return objects.Bool(false), nil
	}
	right, err := i.evalExpr(e.Right, env)
	if err != nil {
		return objects.Nil(), err
	}
	return objects.Bool(objects.IsTruthy(right)), nil
}

func (i *Interpreter) evalAssign(e *parser.AssignExpr, env *scope.Environment) (objects.Value, error) {
	value, err := i.evalExpr(e.Value, env)
	if err != nil {
		return objects.Nil(), err
	}
	switch target := e.Target.(type) {
	case *parser.VariableExpr:
		if !env.Set(target.Name, target.Token.Hash, value) {
			return objects.Nil(), runtimeErrorAt(target.Token, "undefined assignment target: %s", target.Name)
		}
		return value, nil
	case *parser.SubscriptExpr:
		return i.evalSubscriptAssign(target, value, env)
	}
	return objects.Nil(), runtimeErrorAt(e.Tok(), "invalid assignment target")
}

func (i *Interpreter) evalSubscriptAssign(target *parser.SubscriptExpr, value objects.Value, env *scope.Environment) (objects.Value, error) {
	coll, err := i.evalExpr(target.Collection, env)
	if err != nil {
		return objects.Nil(), err
	}
	idx, err := i.evalExpr(target.Index, env)
	if err != nil {
		return objects.Nil(), err
	}
	if coll.Kind != objects.ObjKind {
		return objects.Nil(), runtimeErrorAt(target.Tok(), "cannot index into %s", objects.TypeName(coll))
	}
	switch c := coll.Obj.(type) {
	case *objects.Array:
		n, ok := arrayIndex(idx, len(c.Elements))
		if !ok {
			return objects.Nil(), runtimeErrorAt(target.Tok(), "array index out of range")
		}
		c.Elements[n] = value
		return value, nil
	case *objects.Map:
		if err := c.Set(idx, value); err != nil {
			return objects.Nil(), runtimeErrorAt(target.Tok(), "%s", err.Error())
		}
		return value, nil
	}
	return objects.Nil(), runtimeErrorAt(target.Tok(), "cannot index into %s", objects.TypeName(coll))
}

// arrayIndex validates idx is a Number whose floor equals its ceil (an
// integer value) within [0, length) and returns it as an int (§4.4).
func arrayIndex(idx objects.Value, length int) (int, bool) {
	if !idx.IsNumber() {
		return 0, false
	}
	if math.Floor(idx.Num) != math.Ceil(idx.Num) {
		return 0, false
	}
	n := int(idx.Num)
	if n < 0 || n >= length {
		return 0, false
	}
	return n, true
}

func (i *Interpreter) evalCall(e *parser.CallExpr, env *scope.Environment) (objects.Value, error) {
	callee, err := i.evalExpr(e.Callee, env)
	if err != nil {
		return objects.Nil(), err
	}
	args := make([]objects.Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evalExpr(a, env)
		if err != nil {
			return objects.Nil(), err
		}
		args[idx] = v
	}

	if callee.Kind != objects.ObjKind {
		return objects.Nil(), runtimeErrorAt(e.Paren, "non-callable callee: %s", objects.TypeName(callee))
	}

	switch fn := callee.Obj.(type) {
	case *function.Function:
		return i.callFunction(fn, args, e.Paren)
	case *function.NativeFunction:
		if !fn.CheckArity(len(args)) {
			return objects.Nil(), runtimeErrorAt(e.Paren, "%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
		}
		result := fn.Impl(i.GC, args)
		if result.Kind == objects.ObjKind {
			if nativeErr, ok := result.Obj.(*objects.Error); ok {
				return objects.Nil(), runtimeErrorAt(e.Paren, "%s", nativeErr.Message)
			}
		}
		return result, nil
	}
	return objects.Nil(), runtimeErrorAt(e.Paren, "non-callable callee: %s", objects.TypeName(callee))
}

func (i *Interpreter) callFunction(fn *function.Function, args []objects.Value, paren lexer.Token) (objects.Value, error) {
	if fn.Arity() != len(args) {
		return objects.Nil(), runtimeErrorAt(paren, "%s expects %d argument(s), got %d", fn.Name, fn.Arity(), len(args))
	}
	if i.callDepth >= i.maxCallDepth {
		return objects.Nil(), runtimeErrorAt(paren, "call depth exceeded (max %d)", i.maxCallDepth)
	}
	i.callDepth++

	callEnv := scope.New(fn.Env)
	for idx, p := range fn.Params {
		callEnv.Put(p.Lexeme, p.Hash, args[idx])
	}

	saved := i.current
	i.current = callEnv
	res, err := i.evalStmt(fn.Body, callEnv)
	i.current = saved
	i.callDepth--

	if err != nil {
		return objects.Nil(), err
	}
	if res.kind == resReturn {
		return res.value, nil
	}
	return objects.Nil(), nil
}

func (i *Interpreter) evalArrayLiteral(e *parser.ArrayExpr, env *scope.Environment) (objects.Value, error) {
	items := make([]objects.Value, len(e.Items))
	for idx, it := range e.Items {
		v, err := i.evalExpr(it, env)
		if err != nil {
			return objects.Nil(), err
		}
		items[idx] = v
	}
	arr := objects.NewArray(items)
	i.alloc(arr)
	return objects.FromObject(arr), nil
}

func (i *Interpreter) evalMapLiteral(e *parser.MapExpr, env *scope.Environment) (objects.Value, error) {
	m := objects.NewMap()
	i.alloc(m)
	for idx := range e.Keys {
		k, err := i.evalExpr(e.Keys[idx], env)
		if err != nil {
			return objects.Nil(), err
		}
		v, err := i.evalExpr(e.Values[idx], env)
		if err != nil {
			return objects.Nil(), err
		}
		if err := m.Set(k, v); err != nil {
			return objects.Nil(), runtimeErrorAt(e.Tok(), "%s", err.Error())
		}
	}
	return objects.FromObject(m), nil
}

func (i *Interpreter) evalSubscript(e *parser.SubscriptExpr, env *scope.Environment) (objects.Value, error) {
	coll, err := i.evalExpr(e.Collection, env)
	if err != nil {
		return objects.Nil(), err
	}
	idx, err := i.evalExpr(e.Index, env)
	if err != nil {
		return objects.Nil(), err
	}
	if coll.Kind != objects.ObjKind {
		return objects.Nil(), runtimeErrorAt(e.Tok(), "cannot index into %s", objects.TypeName(coll))
	}
	switch c := coll.Obj.(type) {
	case *objects.Array:
		n, ok := arrayIndex(idx, len(c.Elements))
		if !ok {
			return objects.Nil(), runtimeErrorAt(e.Tok(), "array index out of range")
		}
		return c.Elements[n], nil
	case *objects.Map:
		key, err := objects.HashKey(idx)
		if err != nil {
			return objects.Nil(), runtimeErrorAt(e.Tok(), "%s", err.Error())
		}
		v, ok := c.Pairs[key]
		if !ok {
			return objects.Nil(), runtimeErrorAt(e.Tok(), "map key not found")
		}
		return v, nil
	}
	return objects.Nil(), runtimeErrorAt(e.Tok(), "cannot index into %s", objects.TypeName(coll))
}

func (i *Interpreter) evalModGet(e *parser.ModGetExpr, env *scope.Environment) (objects.Value, error) {
	modVar, ok := e.Module.(*parser.VariableExpr)
	if !ok {
		return objects.Nil(), runtimeErrorAt(e.Tok(), "module access requires a module name")
	}
	mod, found := i.proxy[modVar.Token.Hash]
	if !found {
		return objects.Nil(), runtimeErrorAt(modVar.Token, "module not found: %s", modVar.Name)
	}
	v, found := mod.Env.Get(e.Child.Hash)
	if !found {
		return objects.Nil(), runtimeErrorAt(e.Child, "module child not found: %s.%s", modVar.Name, e.Child.Lexeme)
	}
	return v, nil
}
