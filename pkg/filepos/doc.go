// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
file) and line number within that source.

File positions are crucial when reporting errors to the user: template
compilation errors and render failures both point back at the template
source rather than at the generated program.

Not all Positions point within a file (e.g. code that is generated). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos
