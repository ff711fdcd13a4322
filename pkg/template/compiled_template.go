// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/k14s/starlark-go/resolve"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"
	"github.com/strata-dev/strata/pkg/filepos"
	tplcore "github.com/strata-dev/strata/pkg/template/core"
)

// CompiledTemplate holds the ordered instruction lines produced at compile
// time. Eval executes them once per render call: the instruction builtins
// drive an output accumulator, raw statements provide control flow around
// them.
type CompiledTemplate struct {
	name         string
	code         []Line
	instructions *InstructionSet

	// accumulator stack; nested evaluation (template inclusion) pushes
	// its own frame
	docs       []*strings.Builder
	lastResult string
}

var misspelledConstants = map[string]struct{}{
	"true": {}, "false": {}, "null": {}, "nil": {}, "none": {},
}

func NewCompiledTemplate(name string, code []Line, instructions *InstructionSet) *CompiledTemplate {
	// TODO package globals
	resolve.AllowFloat = true
	resolve.AllowSet = true
	resolve.AllowLambda = true
	resolve.AllowNestedDef = true
	resolve.AllowBitwise = true
	resolve.AllowRecursion = true
	resolve.AllowGlobalReassign = true

	return &CompiledTemplate{
		name:         name,
		code:         code,
		instructions: instructions,
	}
}

func (e *CompiledTemplate) Name() string { return e.name }
func (e *CompiledTemplate) Code() []Line { return e.code }

func (e *CompiledTemplate) CodeAtLine(pos *filepos.Position) *Line {
	for i, line := range e.code {
		if i+1 == pos.LineNum() {
			return &line
		}
	}
	return nil
}

func (e *CompiledTemplate) CodeAsString() string {
	result := []string{}
	cont := false
	for _, line := range e.code {
		src := line.Instruction.AsString()
		if !cont {
			src = strings.TrimLeftFunc(src, unicode.IsSpace)
		}
		cont = strings.HasSuffix(src, "\\")
		result = append(result, src)
	}
	// Do not add any unnecessary newlines to match code lines
	return strings.Join(result, "\n")
}

func (e *CompiledTemplate) DebugCodeAsString() string {
	result := []string{"src:  tmpl: code: | srccode"}

	for i, line := range e.code {
		src := ""
		pos := filepos.NewUnknownPosition()

		if line.SourceLine != nil {
			src = line.SourceLine.Content
			pos = line.SourceLine.Position
		}

		result = append(result, fmt.Sprintf("%s: %4d: %s | %s",
			pos.As4DigitString(), i+1, line.Instruction.AsString(), src))
	}

	return strings.Join(result, "\n")
}

// Eval runs the compiled program against the given globals and returns the
// accumulated output. Per-call globals win over names the program would
// otherwise see as undefined; any remaining free identifier is bound to
// None so that absent context keys contribute nothing.
func (e *CompiledTemplate) Eval(thread *starlark.Thread, globals starlark.StringDict) (string, error) {
	allGlobals := starlark.StringDict{}
	for name, val := range globals {
		allGlobals[name] = val
	}

	instructionBindings := map[string]tplcore.StarlarkFunc{
		e.instructions.StartDoc.Name:    e.tplStartDoc,
		e.instructions.EndDoc.Name:      e.tplEndDoc,
		e.instructions.AppendText.Name:  e.tplAppendText,
		e.instructions.AppendValue.Name: e.tplAppendValue,
	}

	for name, f := range instructionBindings {
		allGlobals[name] = starlark.NewBuiltin(name, tplcore.ErrWrapper(f))
	}

	result, err := e.eval(thread, allGlobals)
	if err != nil {
		return "", NewCompiledTemplateError(e, err)
	}

	return result, nil
}

func (e *CompiledTemplate) eval(thread *starlark.Thread, globals starlark.StringDict) (result string, resultErr error) {
	// Catch any panics to give a better contextual information
	defer func() {
		if err := recover(); err != nil {
			if typedErr, ok := err.(error); ok {
				resultErr = typedErr
			} else {
				resultErr = fmt.Errorf("(p) %s", err)
			}
		}
	}()

	f, err := syntax.Parse(e.name, e.CodeAsString(), syntax.BlockScanner)
	if err != nil {
		return "", err
	}

	for _, name := range NewProgramIdents(f).Names() {
		if _, found := starlark.Universe[name]; found {
			continue
		}
		if _, found := globals[name]; found {
			continue
		}
		// left unbound so that the resolver reports them with a hint
		if _, found := misspelledConstants[name]; found {
			continue
		}
		globals[name] = starlark.None
	}

	prog, err := starlark.FileProgram(f, globals.Has)
	if err != nil {
		return "", err
	}

	startDepth := len(e.docs)

	_, err = prog.Init(thread, globals)
	if err != nil {
		return "", err
	}

	if len(e.docs) != startDepth {
		panic("expected all docs to end")
	}

	return e.lastResult, nil
}

func (e *CompiledTemplate) tplStartDoc(
	thread *starlark.Thread, _ *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	e.docs = append(e.docs, &strings.Builder{})
	return starlark.None, nil
}

func (e *CompiledTemplate) tplEndDoc(
	thread *starlark.Thread, _ *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	if len(e.docs) == 0 {
		panic("unexpected doc end")
	}

	e.lastResult = e.docs[len(e.docs)-1].String()
	e.docs = e.docs[:len(e.docs)-1]
	return starlark.None, nil
}

func (e *CompiledTemplate) tplAppendText(
	thread *starlark.Thread, _ *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	if args.Len() != 1 {
		return starlark.None, fmt.Errorf("expected exactly one argument")
	}

	str, err := tplcore.NewStarlarkValue(args.Index(0)).AsString()
	if err != nil {
		return starlark.None, err
	}

	e.currDoc().WriteString(str)
	return starlark.None, nil
}

func (e *CompiledTemplate) tplAppendValue(
	thread *starlark.Thread, _ *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	if args.Len() != 1 {
		return starlark.None, fmt.Errorf("expected exactly one argument")
	}

	switch typedVal := args.Index(0).(type) {
	case starlark.NoneType:
		// None contributes nothing

	case starlark.String:
		e.currDoc().WriteString(string(typedVal))

	default:
		e.currDoc().WriteString(typedVal.String())
	}

	return starlark.None, nil
}

func (e *CompiledTemplate) currDoc() *strings.Builder {
	if len(e.docs) == 0 {
		panic("expected doc to be started")
	}
	return e.docs[len(e.docs)-1]
}
