// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"

	"github.com/k14s/starlark-go/starlark"
	"github.com/strata-dev/strata/pkg/orderedmap"
	tplcore "github.com/strata-dev/strata/pkg/template/core"
)

// Helper functions available inside every template body. They live in the
// library's fixed base context; a per-call context key of the same name
// wins.

func (l *Library) newHelpers() map[string]starlark.Value {
	helpers := map[string]tplcore.StarlarkFunc{
		"$include": l.tplInclude,
		"$entitle": l.tplEntitle,
		"$active":  l.tplActive,
		"$act":     l.tplAct,
	}

	result := map[string]starlark.Value{}
	for name, f := range helpers {
		result[name] = starlark.NewBuiltin(name, tplcore.ErrWrapper(f))
	}
	return result
}

// tplInclude renders the template at the given path against a fresh clone
// of the given context, isolating its mutations from the caller.
func (l *Library) tplInclude(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	if args.Len() != 2 {
		return starlark.None, fmt.Errorf("expected exactly two arguments")
	}

	path, err := tplcore.NewStarlarkValue(args.Index(0)).AsString()
	if err != nil {
		return starlark.None, err
	}

	ctx, err := contextArg(args.Index(1))
	if err != nil {
		return starlark.None, err
	}

	result, err := l.RenderOne(path, deepCopyContext(ctx))
	if err != nil {
		return starlark.None, err
	}

	return starlark.String(result), nil
}

// tplEntitle prepends a segment to $title: the most recent call ends up
// first, matching leaf-to-root render order.
func (l *Library) tplEntitle(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	if args.Len() != 2 {
		return starlark.None, fmt.Errorf("expected exactly two arguments")
	}

	title, ok := args.Index(0).(starlark.String)
	if !ok || len(string(title)) == 0 {
		return starlark.None, nil
	}

	ctx, err := contextArg(args.Index(1))
	if err != nil {
		// not a valid target; no-op
		return starlark.None, nil
	}

	current := stringAt(ctx, "$title")
	if len(current) == 0 {
		ctx.Set("$title", string(title))
	} else {
		ctx.Set("$title", string(title)+" | "+current)
	}

	return starlark.None, nil
}

// tplActive returns "active" iff the context's $path is equal to or nested
// under the given prefix.
func (l *Library) tplActive(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	return starlark.String(l.activeClass(args)), nil
}

// tplAct returns the HTML attribute string for an active link.
func (l *Library) tplAct(thread *starlark.Thread, f *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	if len(l.activeClass(args)) == 0 {
		return starlark.String(""), nil
	}
	return starlark.String(`class="active"`), nil
}

func (l *Library) activeClass(args starlark.Tuple) string {
	if args.Len() != 2 {
		return ""
	}

	prefix, ok := args.Index(0).(starlark.String)
	if !ok || len(string(prefix)) == 0 {
		return ""
	}

	ctx, err := contextArg(args.Index(1))
	if err != nil {
		return ""
	}

	path := stringAt(ctx, "$path")
	if len(path) == 0 {
		return ""
	}

	if pathIsWithin(string(prefix), path) {
		return "active"
	}
	return ""
}

func contextArg(val starlark.Value) (*orderedmap.Map, error) {
	switch typedVal := val.(type) {
	case *ctxValue:
		return typedVal.ctx, nil
	case *starlark.Dict:
		return tplcore.NewStarlarkValue(typedVal).AsGoValue().(*orderedmap.Map), nil
	default:
		return nil, fmt.Errorf("expected a render context, but was %s", val.Type())
	}
}
