// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strata-dev/strata/pkg/texttemplate"
)

func TestRewriteSigils(t *testing.T) {
	examples := []struct {
		description string
		in          string
		out         string
	}{
		{
			description: "plain code is untouched",
			in:          `len(name) + 1`,
			out:         `len(name) + 1`,
		},
		{
			description: "named sigil becomes context lookup",
			in:          `$title`,
			out:         `__strata_ctx["$title"]`,
		},
		{
			description: "bare sigil becomes the context itself",
			in:          `$["name"]`,
			out:         `__strata_ctx["name"]`,
		},
		{
			description: "multiple sigils in one expression",
			in:          `$a + $b`,
			out:         `__strata_ctx["$a"] + __strata_ctx["$b"]`,
		},
		{
			description: "sigil names may include digits and underscores",
			in:          `$nav_2`,
			out:         `__strata_ctx["$nav_2"]`,
		},
		{
			description: "double-quoted strings are left alone",
			in:          `"$title" + $title`,
			out:         `"$title" + __strata_ctx["$title"]`,
		},
		{
			description: "single-quoted strings are left alone",
			in:          `'$x' + $x`,
			out:         `'$x' + __strata_ctx["$x"]`,
		},
		{
			description: "escaped quotes do not end the string",
			in:          `"a\"$b" + $c`,
			out:         `"a\"$b" + __strata_ctx["$c"]`,
		},
		{
			description: "assignment target",
			in:          `$title = "Docs"`,
			out:         `__strata_ctx["$title"] = "Docs"`,
		},
		{
			description: "call through sigil",
			in:          `$include("nav", $)`,
			out:         `__strata_ctx["$include"]("nav", __strata_ctx)`,
		},
	}

	for _, ex := range examples {
		t.Run(ex.description, func(t *testing.T) {
			require.Equal(t, ex.out, texttemplate.RewriteSigils(ex.in))
		})
	}
}
