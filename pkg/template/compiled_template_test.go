// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/k14s/starlark-go/starlark"
	"github.com/strata-dev/strata/pkg/filepos"
	"github.com/strata-dev/strata/pkg/template"
)

func TestCompiledTemplateAppends(t *testing.T) {
	instructions := template.NewInstructionSet()
	code := []template.Line{
		{Instruction: instructions.NewStartDoc()},
		{Instruction: instructions.NewAppendText(strconv.Quote("Hi "))},
		{Instruction: instructions.NewAppendValue("name")},
		{Instruction: instructions.NewAppendText(strconv.Quote("!"))},
		{Instruction: instructions.NewEndDoc()},
	}

	compiledTemplate := template.NewCompiledTemplate("stdin", code, instructions)

	result, err := compiledTemplate.Eval(&starlark.Thread{Name: "test"},
		starlark.StringDict{"name": starlark.String("Ada")})
	if err != nil {
		t.Fatalf("Evaluating template: %s", err)
	}
	if result != "Hi Ada!" {
		t.Fatalf("Expected greeting, but was %q", result)
	}
}

func TestCompiledTemplateUnboundNamesAppendNothing(t *testing.T) {
	instructions := template.NewInstructionSet()
	code := []template.Line{
		{Instruction: instructions.NewStartDoc()},
		{Instruction: instructions.NewAppendText(strconv.Quote("Hi "))},
		{Instruction: instructions.NewAppendValue("name")},
		{Instruction: instructions.NewAppendText(strconv.Quote("!"))},
		{Instruction: instructions.NewEndDoc()},
	}

	compiledTemplate := template.NewCompiledTemplate("stdin", code, instructions)

	result, err := compiledTemplate.Eval(&starlark.Thread{Name: "test"}, starlark.StringDict{})
	if err != nil {
		t.Fatalf("Evaluating template: %s", err)
	}
	if result != "Hi !" {
		t.Fatalf("Expected unbound name to be skipped, but was %q", result)
	}
}

func TestCompiledTemplateControlFlow(t *testing.T) {
	instructions := template.NewInstructionSet()

	code := []template.Line{{Instruction: instructions.NewStartDoc()}}
	code = append(code, template.NewCodeFromBytesAtPosition(
		[]byte("for i in range(3):"), testPos(1), instructions)...)
	code = append(code, template.Line{Instruction: instructions.NewAppendValue("i")})
	code = append(code, template.NewCodeFromBytesAtPosition(
		[]byte("end"), testPos(1), instructions)...)
	code = append(code, template.Line{Instruction: instructions.NewEndDoc()})

	compiledTemplate := template.NewCompiledTemplate("stdin", code, instructions)

	result, err := compiledTemplate.Eval(&starlark.Thread{Name: "test"}, starlark.StringDict{})
	if err != nil {
		t.Fatalf("Evaluating template: %s", err)
	}
	if result != "012" {
		t.Fatalf("Expected each iteration to append, but was %q", result)
	}
}

func TestCompiledTemplateErrorHints(t *testing.T) {
	instructions := template.NewInstructionSet()
	code := []template.Line{{Instruction: instructions.NewStartDoc()}}
	code = append(code, template.NewCodeFromBytesAtPosition(
		[]byte("v = true"), testPos(1), instructions)...)
	code = append(code, template.Line{Instruction: instructions.NewEndDoc()})

	compiledTemplate := template.NewCompiledTemplate("stdin", code, instructions)

	_, err := compiledTemplate.Eval(&starlark.Thread{Name: "test"}, starlark.StringDict{})
	if err == nil {
		t.Fatal("Expected eval error")
	}
	if !strings.Contains(err.Error(), "undefined: true") {
		t.Fatalf("Expected resolve error, but was: %s", err)
	}
	if !strings.Contains(err.Error(), "use 'True' instead of 'true'") {
		t.Fatalf("Expected hint, but was: %s", err)
	}
}

func testPos(line int) *filepos.Position {
	return filepos.NewPositionInFile(line, "stdin")
}
