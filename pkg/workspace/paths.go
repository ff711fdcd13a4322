// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	gopath "path"
	"strings"
)

// rootTemplateName is the logical path of the outermost template; every
// ancestor chain ends with it.
const rootTemplateName = "index"

// NormalizePath makes a registration path working-directory-relative:
// slash-separated, cleaned, without leading "./" or "/".
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	path = gopath.Clean(path)
	path = strings.TrimPrefix(path, "/")
	if path == "." {
		return ""
	}
	return path
}

// StripExt drops the file-type suffix ("a/b.html" -> "a/b").
func StripExt(path string) string {
	return strings.TrimSuffix(path, extOf(path))
}

func extOf(path string) string {
	return gopath.Ext(path)
}

func dirOf(path string) string {
	return gopath.Dir(path)
}

func baseOf(path string) string {
	return gopath.Base(path)
}

func joinPath(dir, name string) string {
	return gopath.Join(dir, name)
}

// ancestorChain returns the chain for a leaf path, from the leaf itself up
// through each parent directory's template to the root template:
// "a/b/c" -> ["a/b/c", "a/b", "a", "index"].
func ancestorChain(path string) []string {
	chain := []string{path}
	for dir := dirOf(path); dir != "."; dir = dirOf(dir) {
		chain = append(chain, dir)
	}
	if path != rootTemplateName {
		chain = append(chain, rootTemplateName)
	}
	return chain
}

// pathIsWithin reports whether target equals prefix or is nested under it,
// per relative-path semantics (the relative path from prefix to target does
// not begin with a parent-directory marker).
func pathIsWithin(prefix, target string) bool {
	prefixSegs := pathSegments(prefix)
	targetSegs := pathSegments(target)

	if len(prefixSegs) > len(targetSegs) {
		return false
	}
	for i, seg := range prefixSegs {
		if targetSegs[i] != seg {
			return false
		}
	}
	return true
}

func pathSegments(path string) []string {
	path = strings.Trim(gopath.Clean("/"+path), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
