// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
strata.

From top-down, strata code is layered in this way:

# Entry Point

	./cmd/strata   // the command-line tool

# Commands

	pkg/cmd          // command tree assembly, version command
	pkg/cmd/render   // the render command: inputs, data values, outputs
	pkg/cmd/ui       // plain terminal UI used for progress and debug output

# The Workspace

Rendering is executed over a collection of files we call a workspace.Library:
template files compiled into the template registry, and per-directory meta
files parsed into the meta registry. The workspace owns legend resolution,
echo expansion, the hierarchical (transcluding) renderer and the render
orchestrator, as well as the helper functions exposed to template bodies.

	pkg/workspace
	pkg/files

# Templating

Each source template is "compiled" into a Starlark program whose job is to
build up the output text. Text between delimiters becomes append
instructions; embedded statements are carried over verbatim as control flow.

	pkg/texttemplate   // delimiter parsing and compilation
	pkg/template       // compiled program representation and evaluation
	pkg/template/core  // Starlark<->Go value bridging

# Utilities

	pkg/filepos
	pkg/orderedmap
	pkg/version
*/
package pkg
