// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"
	gopath "path"

	"github.com/k14s/starlark-go/starlark"
	"github.com/strata-dev/strata/pkg/orderedmap"
	"github.com/strata-dev/strata/pkg/template"
	tplcore "github.com/strata-dev/strata/pkg/template/core"
	"github.com/strata-dev/strata/pkg/texttemplate"
)

// RenderOne evaluates a single template against a context, mutating the
// context in place. A path with no registered template passes $content
// through unchanged so that sparse directory trees still render.
func (l *Library) RenderOne(path string, ctx *orderedmap.Map) (string, error) {
	p := StripExt(NormalizePath(path))

	ensureString(ctx, "$content")
	ensureString(ctx, "$title")

	if meta := l.MetaAtPath(p); meta != nil {
		ctx.SetIfAbsent("$meta", meta.Raw())
	}

	if legend := l.FileLegend(p); legend != nil {
		fillFromLegend(ctx, legend)
	}

	val, found := l.templates.Get(p)
	if !found {
		return stringAt(ctx, "$content"), nil
	}

	compiled := val.(*template.CompiledTemplate)

	result, err := compiled.Eval(&starlark.Thread{Name: p}, l.evalGlobals(ctx))
	if err != nil {
		l.ui.Warnf("rendering of '%s' failed\n", p)
		return "", fmt.Errorf("Rendering template '%s': %s", p, err)
	}

	return result, nil
}

// RenderThrough runs a leaf template and then each ancestor template up to
// the root, feeding every stage's output to the next via $content. The
// context object is shared across the whole chain.
func (l *Library) RenderThrough(path string, ctx *orderedmap.Map) (string, error) {
	var result string

	for _, step := range ancestorChain(StripExt(NormalizePath(path))) {
		out, err := l.RenderOne(step, ctx)
		if err != nil {
			return "", err
		}
		result = out
		ctx.Set("$content", out)
	}

	return result, nil
}

// RenderTemplate renders one registered template into its final document(s),
// keyed by virtual output path. A legend with an echo group fans the
// template out once per group member; otherwise exactly one document is
// produced.
func (l *Library) RenderTemplate(path string, data *orderedmap.Map) (*orderedmap.Map, error) {
	p := StripExt(NormalizePath(path))
	result := orderedmap.NewMap()

	base := newRenderContext(data)
	base.Set("name", baseOf(p))

	legend := l.FileLegend(p)
	if legend != nil {
		fillFromLegend(base, legend)
	}

	contexts := []*orderedmap.Map{base}

	if legend != nil && len(legend.Echo) > 0 {
		var err error
		contexts, err = ExpandEcho(l.MetaAtPath(p), legend, base)
		if err != nil {
			return nil, fmt.Errorf("Expanding echo for '%s': %s", p, err)
		}
	}

	for _, ctx := range contexts {
		virtualPath := p
		if name := stringAt(ctx, "name"); len(name) > 0 {
			virtualPath = joinPath(dirOf(p), name)
		}

		ctx.Set("$path", virtualPath)

		out, err := l.RenderThrough(p, ctx)
		if err != nil {
			return nil, err
		}

		if l.rename != nil {
			if renamed := l.rename(virtualPath); len(renamed) > 0 {
				virtualPath = renamed
			}
		}

		result.Set(virtualPath, out)
	}

	return result, nil
}

// RenderAll renders every registered, non-ignored template in registration
// order. It stops at the first failure. Virtual-path collisions resolve
// last-write-wins.
func (l *Library) RenderAll(data *orderedmap.Map) (*orderedmap.Map, error) {
	result := orderedmap.NewMap()

	err := l.templates.IterateErr(func(k, _ interface{}) error {
		path := k.(string)

		if l.isIgnored(path) {
			l.ui.Debugf("skipping ignored template '%s'\n", path)
			return nil
		}

		docs, err := l.RenderTemplate(path, data)
		if err != nil {
			return err
		}

		docs.Iterate(func(dk, dv interface{}) {
			result.Set(dk, dv)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (l *Library) isIgnored(path string) bool {
	meta := l.MetaAtPath(path)
	if meta == nil || len(meta.Ignore) == 0 {
		return false
	}

	matched, err := gopath.Match(meta.Ignore, baseOf(path))
	if err != nil {
		return false
	}
	return matched
}

// evalGlobals binds plain context keys directly as program globals and the
// whole context as the sigil binding.
func (l *Library) evalGlobals(ctx *orderedmap.Map) starlark.StringDict {
	globals := starlark.StringDict{}

	ctx.Iterate(func(k, v interface{}) {
		if name, ok := k.(string); ok && isContextGlobal(name) {
			globals[name] = tplcore.NewGoValue(v).AsStarlarkValue()
		}
	})

	globals[texttemplate.CtxIdent] = &ctxValue{ctx: ctx, library: l}
	return globals
}
