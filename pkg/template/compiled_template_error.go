// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"

	"github.com/k14s/starlark-go/resolve"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"
	"github.com/strata-dev/strata/pkg/filepos"
)

// CompiledTemplateError translates failures within the generated program
// (syntax, resolve and evaluation errors) back into positions within the
// template source.
type CompiledTemplateError struct {
	template *CompiledTemplate
	errs     []compiledTemplateErrPiece
}

var _ error = CompiledTemplateError{}

type compiledTemplateErrPiece struct {
	Msg       string
	Positions []errPosition
}

type errPosition struct {
	Filename     string
	ContextName  string
	TemplateLine *Line
}

func NewCompiledTemplateError(template *CompiledTemplate, err error) error {
	e := CompiledTemplateError{template: template}

	switch typedErr := err.(type) {
	case syntax.Error:
		e.errs = append(e.errs, compiledTemplateErrPiece{
			Positions: []errPosition{e.buildPos(typedErr.Pos)},
			Msg:       typedErr.Msg,
		})

	case resolve.ErrorList:
		for _, resolveErr := range typedErr {
			e.errs = append(e.errs, compiledTemplateErrPiece{
				Positions: []errPosition{e.buildPos(resolveErr.Pos)},
				Msg:       resolveErr.Msg,
			})
		}

	case *starlark.EvalError:
		piece := compiledTemplateErrPiece{Msg: typedErr.Msg}
		for i := len(typedErr.CallStack) - 1; i >= 0; i-- {
			pos := e.buildPos(typedErr.CallStack[i].Pos)
			pos.ContextName = typedErr.CallStack[i].Name
			piece.Positions = append(piece.Positions, pos)
		}
		e.errs = append(e.errs, piece)

	default:
		e.errs = append(e.errs, compiledTemplateErrPiece{Msg: err.Error()})
	}

	return e
}

func (e CompiledTemplateError) Error() string {
	result := []string{""}

	for _, err := range e.errs {
		var topicLine string
		var otherLines []string

		for i, line := range strings.Split(err.Msg, "\n") {
			if i == 0 {
				topicLine = line
			} else {
				otherLines = append(otherLines, line)
			}
		}

		result = append(result, fmt.Sprintf("- %s%s", topicLine, e.hintMsg(err.Msg)))

		for _, pos := range err.Positions {
			if pos.TemplateLine == nil {
				continue
			}

			linePad := "    "

			if len(pos.ContextName) > 0 && pos.ContextName != "<toplevel>" {
				result = append(result, linePad+"in "+pos.ContextName)
				linePad += "  "
			}

			if pos.TemplateLine.SourceLine != nil {
				srcLine := pos.TemplateLine.SourceLine
				result = append(result, fmt.Sprintf("%s%s:%d | %s",
					linePad, srcLine.Position.GetFile(), srcLine.Position.LineNum(), srcLine.Content))
			} else {
				result = append(result, fmt.Sprintf("%s%s:? | %s (generated)",
					linePad, pos.Filename, pos.TemplateLine.Instruction.AsString()))
			}
		}

		if len(otherLines) > 0 {
			result = append(result, []string{"", "    reason:"}...)
			for _, line := range otherLines {
				result = append(result, fmt.Sprintf("     %s", line))
			}
		}
	}

	return strings.Join(result, "\n")
}

func (e CompiledTemplateError) buildPos(pos syntax.Position) errPosition {
	// some starlark errors carry a zero line even though lines are 1 based
	if pos.Line == 0 {
		return errPosition{}
	}

	if pos.Filename() != e.template.name {
		// position within another template (e.g. an included one); its
		// own evaluation already reported the detailed location
		return errPosition{Filename: pos.Filename()}
	}

	p := filepos.NewPositionInFile(int(pos.Line), pos.Filename())

	line := e.template.CodeAtLine(p)
	if line == nil {
		return errPosition{Filename: pos.Filename()}
	}

	return errPosition{
		Filename:     pos.Filename(),
		TemplateLine: line,
	}
}

func (CompiledTemplateError) hintMsg(msg string) string {
	hintMsg := ""
	switch {
	case msg == "undefined: true":
		hintMsg = "use 'True' instead of 'true' for boolean values"
	case msg == "undefined: false":
		hintMsg = "use 'False' instead of 'false' for boolean values"
	case msg == "got newline, want ':'":
		hintMsg = "missing colon at the end of 'if/for/def' statement?"
	case msg == "undefined: null", msg == "undefined: nil", msg == "undefined: none":
		hintMsg = "use 'None' to indicate no value"
	}
	if len(hintMsg) > 0 {
		hintMsg = " (hint: " + hintMsg + ")"
	}
	return hintMsg
}
