// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package workspace owns one rendering pass over a collection of registered
sources: the template registry (path -> compiled template), the meta
registry (directory -> parsed metadata), legend resolution, echo expansion,
the hierarchical renderer that transcludes each rendered leaf into its
ancestor chain, and the helper functions exposed to template bodies.

Registries are filled once via registration and treated as read-only while
rendering. Each top-level template render owns its render context
exclusively; within one ancestor chain that context is deliberately mutated
in place so that legend fields, $title and $content carry through to
ancestor templates.
*/
package workspace
