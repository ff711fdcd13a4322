// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package render implements the primary CLI command: load input files into a
template library, render every template, and deliver the resulting
documents to stdout or an output directory.
*/
package render
