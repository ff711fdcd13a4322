// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strata-dev/strata/pkg/orderedmap"
)

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	m.Set("z", 4) // update keeps original position

	require.Equal(t, []interface{}{"z", "a", "m"}, m.Keys())

	val, found := m.Get("z")
	require.True(t, found)
	require.Equal(t, 4, val)
}

func TestMapSetIfAbsent(t *testing.T) {
	m := orderedmap.NewMap()

	require.True(t, m.SetIfAbsent("k", 1))
	require.False(t, m.SetIfAbsent("k", 2))

	val, _ := m.Get("k")
	require.Equal(t, 1, val)
}

func TestMapDelete(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("a", 1)
	m.Set("b", 2)

	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	require.Equal(t, []interface{}{"b"}, m.Keys())
}

func TestConversionFromUnorderedMapsSortsKeys(t *testing.T) {
	converted := orderedmap.Conversion{Object: map[string]interface{}{
		"b": 1,
		"a": map[string]interface{}{"y": 2, "x": 3},
		"c": []interface{}{map[string]interface{}{"k": 4}},
	}}.FromUnorderedMaps()

	m := converted.(*orderedmap.Map)
	require.Equal(t, []interface{}{"a", "b", "c"}, m.Keys())

	nested, _ := m.Get("a")
	require.Equal(t, []interface{}{"x", "y"}, nested.(*orderedmap.Map).Keys())

	seq, _ := m.Get("c")
	_, isMap := seq.([]interface{})[0].(*orderedmap.Map)
	require.True(t, isMap)
}

func TestConversionDeepCopyIsolatesMutations(t *testing.T) {
	orig := orderedmap.NewMap()
	nested := orderedmap.NewMap()
	nested.Set("k", "v")
	orig.Set("nested", nested)
	orig.Set("seq", []interface{}{"a"})

	copied := orderedmap.Conversion{Object: orig}.DeepCopy().(*orderedmap.Map)

	copiedNested, _ := copied.Get("nested")
	copiedNested.(*orderedmap.Map).Set("k", "changed")

	copiedSeq, _ := copied.Get("seq")
	copiedSeq.([]interface{})[0] = "changed"

	val, _ := nested.Get("k")
	require.Equal(t, "v", val)

	origSeq, _ := orig.Get("seq")
	require.Equal(t, "a", origSeq.([]interface{})[0])
}
