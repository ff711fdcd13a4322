// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
	"strings"
)

// CtxIdent is the reserved binding under which the evaluator exposes the
// live render context to the generated program.
const CtxIdent = "__strata_ctx"

// RewriteSigils translates '$'-prefixed references, which are not legal
// Starlark identifiers, into lookups on the reserved context binding:
// '$name' becomes __strata_ctx["$name"], a bare '$' becomes __strata_ctx.
// Content of string literals is left untouched.
func RewriteSigils(code string) string {
	var result strings.Builder

	var quote byte
	escaped := false

	for i := 0; i < len(code); {
		c := code[i]

		switch {
		case quote != 0:
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
			result.WriteByte(c)
			i++

		case c == '"' || c == '\'':
			quote = c
			result.WriteByte(c)
			i++

		case c == '$':
			j := i + 1
			for j < len(code) && isIdentChar(code[j], j > i+1) {
				j++
			}
			if j > i+1 {
				result.WriteString(fmt.Sprintf("%s[%q]", CtxIdent, code[i:j]))
			} else {
				result.WriteString(CtxIdent)
			}
			i = j

		default:
			result.WriteByte(c)
			i++
		}
	}

	return result.String()
}

func isIdentChar(c byte, notFirst bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return notFirst
	default:
		return false
	}
}
