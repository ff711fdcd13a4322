// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/strata-dev/strata/pkg/template"
)

type Template struct {
	name string
}

func NewTemplate(name string) *Template {
	return &Template{name: name}
}

// NewCompiledTextTemplate parses and compiles a template source in one step.
func NewCompiledTextTemplate(name string, source []byte) (*template.CompiledTemplate, error) {
	rootNode, err := NewParser().Parse(source, name)
	if err != nil {
		return nil, err
	}
	return NewTemplate(name).Compile(rootNode)
}

// Compile emits the instruction sequence for the parsed template, in source
// order: literal-append for text, expression-append for values, verbatim
// code lines for statements (an empty statement closes the current block).
func (e *Template) Compile(rootNode *NodeRoot) (*template.CompiledTemplate, error) {
	instructions := template.NewInstructionSet()

	code := []template.Line{
		{Instruction: instructions.NewStartDoc()},
	}

	for _, node := range rootNode.Items {
		switch typedNode := node.(type) {
		case *NodeText:
			if len(typedNode.Content) == 0 {
				continue
			}

			code = append(code, template.Line{
				// strconv.Quote escapes backslash, quote, newlines and
				// unicode line separators into a form the generated
				// program accepts as a string literal
				Instruction: instructions.NewAppendText(strconv.Quote(typedNode.Content)),
				SourceLine:  template.NewSourceLine(typedNode.Position, typedNode.Content),
			})

		case *NodeValue:
			code = append(code, template.Line{
				Instruction: instructions.NewAppendValue(RewriteSigils(typedNode.Content)),
				SourceLine:  template.NewSourceLine(typedNode.Position, typedNode.Content),
			})

		case *NodeStmt:
			if len(strings.TrimSpace(typedNode.Content)) == 0 {
				code = append(code, template.Line{
					Instruction: instructions.NewCode("end"),
					SourceLine:  template.NewSourceLine(typedNode.Position, typedNode.Content),
				})
			} else {
				code = append(code, template.NewCodeFromBytesAtPosition(
					[]byte(RewriteSigils(typedNode.Content)), typedNode.Position, instructions)...)
			}

		default:
			panic(fmt.Sprintf("unknown text template node %T", typedNode))
		}
	}

	code = append(code, template.Line{
		Instruction: instructions.NewEndDoc(),
	})

	return template.NewCompiledTemplate(e.name, code, instructions), nil
}
