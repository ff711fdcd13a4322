// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package template provides the core templating engine for strata.

A template compiles into an ordered sequence of instruction lines forming a
Starlark program whose objective is to accumulate an output string: literal
segments and evaluated expressions append to the accumulator, raw statement
lines provide control flow around the appends.
*/
package template
