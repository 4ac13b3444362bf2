/*
File    : bhasha/eval/statements.go
*/
package eval

import (
	"fmt"

	"github.com/ishanroy/bhasha/function"
	"github.com/ishanroy/bhasha/objects"
	"github.com/ishanroy/bhasha/parser"
	"github.com/ishanroy/bhasha/scope"
	"github.com/ishanroy/bhasha/std"
)

func (i *Interpreter) evalStmt(stmt parser.Stmt, env *scope.Environment) (result, error) {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		v, err := i.evalExpr(s.Expression, env)
		if err != nil {
			return result{}, err
		}
		return simple(v), nil

	case *parser.PrintStmt:
		v, err := i.evalExpr(s.Expression, env)
		if err != nil {
			return result{}, err
		}
		fmt.Println(objects.Render(v))
		return simple(objects.Nil()), nil

	case *parser.LetStmt:
		value := objects.Nil()
		if s.Initializer != nil {
			v, err := i.evalExpr(s.Initializer, env)
			if err != nil {
				return result{}, err
			}
			value = v
		}
		env.Put(s.Name.Lexeme, s.Name.Hash, value)
		return simple(objects.Nil()), nil

	case *parser.BlockStmt:
		return i.evalBlock(s, env)

	case *parser.IfStmt:
		return i.evalIf(s, env)

	case *parser.WhileStmt:
		return i.evalWhile(s, env)

	case *parser.ReturnStmt:
		value := objects.Nil()
		if s.Value != nil {
			v, err := i.evalExpr(s.Value, env)
			if err != nil {
				return result{}, err
			}
			value = v
		}
		return returnResult(value), nil

	case *parser.BreakStmt:
		return breakResult, nil

	case *parser.FuncStmt:
		return i.evalFuncStmt(s, env)

	case *parser.ImportStmt:
		return i.evalImportStmt(s, env)
	}
	return result{}, runtimeErrorAt(stmt.Tok(), "unhandled statement kind %T", stmt)
}

// evalBlock evaluates a statement list in a fresh child environment
// (§4.3: "Block: evaluate statements in a fresh child environment; on
// Break or Return, stop and forward the result to the enclosing
// construct"), tracking the active frame for GC rooting.
func (i *Interpreter) evalBlock(block *parser.BlockStmt, parent *scope.Environment) (result, error) {
	child := scope.New(parent)
	saved := i.current
	i.current = child
	defer func() { i.current = saved }()

	res := simple(objects.Nil())
	for _, stmt := range block.Statements {
		r, err := i.evalStmt(stmt, child)
		if err != nil {
			return result{}, err
		}
		res = r
		if r.kind != resSimple {
			return res, nil
		}
	}
	return res, nil
}

func (i *Interpreter) evalIf(s *parser.IfStmt, env *scope.Environment) (result, error) {
	cond, err := i.evalExpr(s.Condition, env)
	if err != nil {
		return result{}, err
	}
	if objects.IsTruthy(cond) {
		return i.evalStmt(s.Then, env)
	}
	if s.Else != nil {
		return i.evalStmt(s.Else, env)
	}
	return simple(objects.Nil()), nil
}

func (i *Interpreter) evalWhile(s *parser.WhileStmt, env *scope.Environment) (result, error) {
	for {
		cond, err := i.evalExpr(s.Condition, env)
		if err != nil {
			return result{}, err
		}
		if !objects.IsTruthy(cond) {
			return simple(objects.Nil()), nil
		}
		res, err := i.evalStmt(s.Body, env)
		if err != nil {
			return result{}, err
		}
		switch res.kind {
		case resBreak:
			return simple(objects.Nil()), nil
		case resReturn:
			return res, nil
		}
	}
}

func (i *Interpreter) evalFuncStmt(s *parser.FuncStmt, env *scope.Environment) (result, error) {
	// Declaring a closure promotes every binding currently in this frame to
	// an Upvalue indirection, so later writes from either the enclosing
	// scope or the closure converge on the same slot (§4.5, §9).
	env.PromoteFrameToUpvalues(i.GC)
	fn := function.NewFunction(s.Name.Lexeme, s.Params, s.Body, env)
	i.alloc(fn)
	env.Put(s.Name.Lexeme, s.Name.Hash, objects.FromObject(fn))
	return simple(objects.Nil()), nil
}

func (i *Interpreter) evalImportStmt(s *parser.ImportStmt, env *scope.Environment) (result, error) {
	pathVal, err := i.evalExpr(s.Path, env)
	if err != nil {
		return result{}, err
	}
	str, ok := pathVal.Obj.(*objects.String)
	if pathVal.Kind != objects.ObjKind || !ok {
		return result{}, runtimeErrorAt(s.Path.Tok(), "import path must be a String")
	}
	modEnv, found := std.Load(i.GC, str.Value)
	if !found {
		return result{}, runtimeErrorAt(s.Path.Tok(), "module not found: %s", str.Value)
	}
	mod := &Module{Name: str.Value, Env: modEnv, Kind: ModuleKindStdlib}
	i.modules = append(i.modules, mod)
	i.proxy[s.LocalName.Hash] = mod
	return simple(objects.Nil()), nil
}
