// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ppexpr implements the boolean expression sublanguage used by `#if`
// and `#elif` directives: identifiers combined with `!`, `&&`, `||` and
// parentheses, parsed into Reverse Polish Notation and evaluated against a
// symbol set.
package ppexpr

import (
	"fmt"
	"strings"

	"github.com/lassade/preproc/internal/symset"
)

// OpKind identifies the kind of a single RPN token.
type OpKind int

const (
	OpVar OpKind = iota
	OpAnd
	OpOr
	OpNot
)

// Op is a single token of an expression in Reverse Polish Notation. Name is
// only meaningful when Kind is OpVar.
type Op struct {
	Kind OpKind
	Name string
}

// Expr is a parsed boolean expression, stored as an ordered RPN token
// sequence. The zero value is the empty expression.
type Expr struct {
	Ops []Op
}

// IsValid reports whether evaluating Ops left-to-right with a fresh stack
// leaves exactly one value on the stack: one push per OpVar, one pop-two-
// push-one per binary operator, one pop-one-push-one for OpNot. A parser may
// accept syntactically malformed expressions (trailing or stranded unary
// operators); IsValid is the authoritative check of whether the result can
// actually be evaluated.
func (e Expr) IsValid() bool {
	depth := 0
	for _, op := range e.Ops {
		switch op.Kind {
		case OpVar:
			depth++
		case OpAnd, OpOr:
			if depth < 2 {
				return false
			}
			depth--
		case OpNot:
			if depth < 1 {
				return false
			}
			// depth unchanged: pops one, pushes one
		}
	}
	return depth == 1
}

// Eval walks Ops with a scratch boolean stack. It panics if Ops is malformed
// (stack underflow, or more than one value remaining). Callers accepting
// untrusted expressions should check IsValid first.
func (e Expr) Eval(vars symset.Set) bool {
	stack := make([]bool, 0, 8)
	pop := func() bool {
		if len(stack) == 0 {
			panic("ppexpr: malformed expression: stack underflow")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, op := range e.Ops {
		switch op.Kind {
		case OpVar:
			stack = append(stack, vars.Contains(op.Name))
		case OpAnd:
			b := pop()
			a := pop()
			stack = append(stack, a && b)
		case OpOr:
			b := pop()
			a := pop()
			stack = append(stack, a || b)
		case OpNot:
			stack = append(stack, !pop())
		}
	}

	if len(stack) != 1 {
		panic(fmt.Sprintf("ppexpr: malformed expression: %d values left on stack, want 1", len(stack)))
	}
	return stack[0]
}

// Format renders Ops as fully-parenthesized infix notation, e.g.
// "(!(a) && (b || !(c)))". It is the inverse of Parse for any valid
// expression, used to test the parser/evaluator round-trip.
func (e Expr) Format() string {
	stack := make([]string, 0, 8)
	pop := func() string {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, op := range e.Ops {
		switch op.Kind {
		case OpVar:
			stack = append(stack, op.Name)
		case OpAnd:
			b, a := pop(), pop()
			stack = append(stack, "("+a+" && "+b+")")
		case OpOr:
			b, a := pop(), pop()
			stack = append(stack, "("+a+" || "+b+")")
		case OpNot:
			stack = append(stack, "!("+pop()+")")
		}
	}
	return strings.Join(stack, " ")
}
