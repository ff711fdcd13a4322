// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"

	"github.com/k14s/starlark-go/syntax"
)

// ProgramIdents walks a parsed program collecting identifiers used in
// expression positions. The evaluator binds any collected name that is not
// otherwise defined to None, so that a template referencing an absent
// context key appends nothing instead of failing.
type ProgramIdents struct {
	f     *syntax.File
	names map[string]struct{}
	order []string
}

func NewProgramIdents(f *syntax.File) *ProgramIdents {
	return &ProgramIdents{f: f, names: map[string]struct{}{}}
}

func (r *ProgramIdents) Names() []string {
	r.order = nil
	r.names = map[string]struct{}{}
	r.stmts(r.f.Stmts)
	return r.order
}

func (r *ProgramIdents) collect(name string) {
	if _, found := r.names[name]; found {
		return
	}
	r.names[name] = struct{}{}
	r.order = append(r.order, name)
}

func (r *ProgramIdents) stmts(stmts []syntax.Stmt) {
	for _, stmt := range stmts {
		r.stmt(stmt)
	}
}

func (r *ProgramIdents) stmt(stmt syntax.Stmt) {
	switch stmt := stmt.(type) {
	case *syntax.ExprStmt:
		r.expr(stmt.X)

	case *syntax.BranchStmt:
		// do nothing

	case *syntax.IfStmt:
		r.expr(stmt.Cond)
		r.stmts(stmt.True)
		r.stmts(stmt.False)

	case *syntax.AssignStmt:
		// assigned names become program globals; only the RHS can refer
		// to context values
		r.expr(stmt.RHS)

	case *syntax.DefStmt:
		for _, param := range stmt.Params {
			if binary, ok := param.(*syntax.BinaryExpr); ok {
				r.expr(binary.Y)
			}
		}
		r.stmts(stmt.Body)

	case *syntax.ForStmt:
		r.expr(stmt.X)
		r.stmts(stmt.Body)

	case *syntax.WhileStmt:
		r.expr(stmt.Cond)
		r.stmts(stmt.Body)

	case *syntax.ReturnStmt:
		if stmt.Result != nil {
			r.expr(stmt.Result)
		}

	case *syntax.LoadStmt:
		// do nothing

	default:
		panic(fmt.Sprintf("unexpected stmt %T", stmt))
	}
}

func (r *ProgramIdents) expr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.Ident:
		r.collect(e.Name)

	case *syntax.Literal:
		// do nothing

	case *syntax.ListExpr:
		for _, x := range e.List {
			r.expr(x)
		}

	case *syntax.CondExpr:
		r.expr(e.Cond)
		r.expr(e.True)
		r.expr(e.False)

	case *syntax.IndexExpr:
		r.expr(e.X)
		r.expr(e.Y)

	case *syntax.DictEntry:
		r.expr(e.Key)
		r.expr(e.Value)

	case *syntax.SliceExpr:
		r.expr(e.X)
		if e.Lo != nil {
			r.expr(e.Lo)
		}
		if e.Hi != nil {
			r.expr(e.Hi)
		}
		if e.Step != nil {
			r.expr(e.Step)
		}

	case *syntax.Comprehension:
		// The 'in' operand of the first clause (always a ForClause)
		// is resolved in the outer block; consider: [x for x in x].
		clause := e.Clauses[0].(*syntax.ForClause)
		r.expr(clause.X)

		for _, clause := range e.Clauses[1:] {
			switch clause := clause.(type) {
			case *syntax.IfClause:
				r.expr(clause.Cond)
			case *syntax.ForClause:
				r.expr(clause.X)
			}
		}
		r.expr(e.Body)

	case *syntax.TupleExpr:
		for _, x := range e.List {
			r.expr(x)
		}

	case *syntax.DictExpr:
		for _, entry := range e.List {
			entry := entry.(*syntax.DictEntry)
			r.expr(entry.Key)
			r.expr(entry.Value)
		}

	case *syntax.UnaryExpr:
		r.expr(e.X)

	case *syntax.BinaryExpr:
		r.expr(e.X)
		r.expr(e.Y)

	case *syntax.DotExpr:
		r.expr(e.X)

	case *syntax.CallExpr:
		r.expr(e.Fn)
		for _, arg := range e.Args {
			if binop, ok := arg.(*syntax.BinaryExpr); ok && binop.Op == syntax.EQ {
				// keyword argument: name is not a reference
				r.expr(binop.Y)
			} else {
				r.expr(arg)
			}
		}

	case *syntax.LambdaExpr:
		r.expr(e.Body)

	case *syntax.ParenExpr:
		r.expr(e.X)

	default:
		panic(fmt.Sprintf("unexpected expr %T", e))
	}
}
