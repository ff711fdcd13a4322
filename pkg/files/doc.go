// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from
file or file-like Source's and for writing rendered output to filesystem
files and directories.

This lets the rest of strata process logically chunked streams of data
without becoming entangled in the details of how to read or write them.
*/
package files
