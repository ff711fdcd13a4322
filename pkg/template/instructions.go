// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"
)

// InstructionSet names the three instruction kinds a compiled template is
// made of (literal append, expression append, raw statement) plus the pair
// of instructions framing the output accumulator.
type InstructionSet struct {
	StartDoc    InstructionOp
	EndDoc      InstructionOp
	AppendText  InstructionOp
	AppendValue InstructionOp
}

var (
	globalInsSetID = 1
)

// NewInstructionSet builds uniquely named instructions so that templates
// nested via inclusion never collide in one Starlark thread.
func NewInstructionSet() *InstructionSet {
	globalInsSetID++
	uniqueID := globalInsSetID
	return &InstructionSet{
		StartDoc:    InstructionOp{fmt.Sprintf("__strata_tpl%d_start_doc", uniqueID)},
		EndDoc:      InstructionOp{fmt.Sprintf("__strata_tpl%d_end_doc", uniqueID)},
		AppendText:  InstructionOp{fmt.Sprintf("__strata_tpl%d_append_text", uniqueID)},
		AppendValue: InstructionOp{fmt.Sprintf("__strata_tpl%d_append_value", uniqueID)},
	}
}

func (is *InstructionSet) NewStartDoc() Instruction {
	return is.StartDoc.WithArgs()
}

func (is *InstructionSet) NewEndDoc() Instruction {
	return is.EndDoc.WithArgs()
}

func (is *InstructionSet) NewAppendText(escapedLiteral string) Instruction {
	return is.AppendText.WithArgs(escapedLiteral)
}

func (is *InstructionSet) NewAppendValue(code string) Instruction {
	return is.AppendValue.WithArgs("(" + code + ")")
}

func (is *InstructionSet) NewCode(code string) Instruction {
	return Instruction{code: code}
}

type InstructionOp struct {
	Name string
}

func (op InstructionOp) WithArgs(args ...string) Instruction {
	return Instruction{op: op, code: fmt.Sprintf("%s(%s)", op.Name, strings.Join(args, ", "))}
}

type Instruction struct {
	op   InstructionOp
	code string
}

func (i Instruction) Op() InstructionOp { return i.op }
func (i Instruction) AsString() string  { return i.code }
