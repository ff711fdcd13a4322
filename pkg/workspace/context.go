// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"

	"github.com/k14s/starlark-go/starlark"
	"github.com/strata-dev/strata/pkg/orderedmap"
	tplcore "github.com/strata-dev/strata/pkg/template/core"
)

// Render contexts are plain ordered maps. Reserved keys ($content, $title,
// $path, $meta, name) are managed by the pipeline; everything else is
// caller- or legend-supplied.

func newRenderContext(data *orderedmap.Map) *orderedmap.Map {
	if data == nil {
		return orderedmap.NewMap()
	}
	return deepCopyContext(data)
}

func deepCopyContext(ctx *orderedmap.Map) *orderedmap.Map {
	return orderedmap.Conversion{Object: ctx}.DeepCopy().(*orderedmap.Map)
}

func ensureString(ctx *orderedmap.Map, key string) {
	if val, found := ctx.Get(key); found {
		if _, ok := val.(string); ok {
			return
		}
	}
	ctx.Set(key, "")
}

func stringAt(ctx *orderedmap.Map, key string) string {
	if val, found := ctx.Get(key); found {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

// fillFromLegend copies legend fields into the context without displacing
// keys the context already carries (an echoed context keeps its own name).
func fillFromLegend(ctx *orderedmap.Map, legend *Legend) {
	legend.Fields.Iterate(func(k, v interface{}) {
		ctx.SetIfAbsent(k, orderedmap.Conversion{Object: v}.DeepCopy())
	})
}

// isContextGlobal reports whether a context key can be bound directly as a
// program global. '$'-prefixed keys travel through the context binding
// instead, and double-underscore names are reserved for the evaluator.
func isContextGlobal(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isIdentByte(c, i > 0) {
			return false
		}
	}
	return len(name) < 2 || name[:2] != "__"
}

func isIdentByte(c byte, notFirst bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return notFirst
	default:
		return false
	}
}

// ctxValue exposes the live render context to the generated program.
// Lookups of absent keys produce None so that a template referencing a key
// no caller supplied appends nothing. Mutations through SetKey are visible
// to the rest of the chain; that bleed-through is intentional.
type ctxValue struct {
	ctx     *orderedmap.Map
	library *Library
}

var _ starlark.Value = (*ctxValue)(nil)
var _ starlark.Mapping = (*ctxValue)(nil)
var _ starlark.HasSetKey = (*ctxValue)(nil)

func (v *ctxValue) String() string        { return "render_context" }
func (v *ctxValue) Type() string          { return "context" }
func (v *ctxValue) Freeze()               {}
func (v *ctxValue) Truth() starlark.Bool  { return starlark.True }
func (v *ctxValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: context") }

func (v *ctxValue) Get(key starlark.Value) (starlark.Value, bool, error) {
	keyStr, err := tplcore.NewStarlarkValue(key).AsString()
	if err != nil {
		return starlark.None, false, err
	}

	if keyStr == "$" {
		return v, true, nil
	}

	if val, found := v.ctx.Get(keyStr); found {
		return tplcore.NewGoValue(val).AsStarlarkValue(), true, nil
	}

	if helper, found := v.library.helpers[keyStr]; found {
		return helper, true, nil
	}

	return starlark.None, true, nil
}

func (v *ctxValue) SetKey(key, val starlark.Value) error {
	keyStr, err := tplcore.NewStarlarkValue(key).AsString()
	if err != nil {
		return err
	}

	v.ctx.Set(keyStr, tplcore.NewStarlarkValue(val).AsGoValue())
	return nil
}
