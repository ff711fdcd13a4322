// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"fmt"
	"sort"
)

type Conversion struct {
	Object interface{}
}

// FromUnorderedMaps converts any native Go maps within the held object into
// *Map. Since native maps carry no order, keys are sorted to keep the result
// deterministic.
func (c Conversion) FromUnorderedMaps() interface{} {
	return c.fromUnorderedMaps(c.Object)
}

func (c Conversion) fromUnorderedMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[interface{}]interface{}:
		result := NewMap()
		for _, key := range c.sortedMapKeys(c.mapKeysFromInterfaceMap(typedObj)) {
			result.Set(key, c.fromUnorderedMaps(typedObj[key]))
		}
		return result

	case map[string]interface{}:
		result := NewMap()
		for _, key := range c.sortedMapKeys(c.mapKeysFromStringMap(typedObj)) {
			result.Set(key, c.fromUnorderedMaps(typedObj[key.(string)]))
		}
		return result

	case *Map:
		panic("Expected native Go map instead of *orderedmap.Map in fromUnorderedMaps")

	case []interface{}:
		for i, item := range typedObj {
			typedObj[i] = c.fromUnorderedMaps(item)
		}
		return typedObj

	default:
		return typedObj
	}
}

// DeepCopy copies the held object, descending into *Map and []interface{}
// values. Scalars and values of other types are copied by reference.
func (c Conversion) DeepCopy() interface{} {
	return c.deepCopy(c.Object)
}

func (c Conversion) deepCopy(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case *Map:
		result := NewMap()
		typedObj.Iterate(func(k, v interface{}) {
			result.Set(k, c.deepCopy(v))
		})
		return result

	case []interface{}:
		result := make([]interface{}, len(typedObj))
		for i, item := range typedObj {
			result[i] = c.deepCopy(item)
		}
		return result

	default:
		return typedObj
	}
}

func (Conversion) mapKeysFromInterfaceMap(m map[interface{}]interface{}) []interface{} {
	var keys []interface{}
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (Conversion) mapKeysFromStringMap(m map[string]interface{}) []interface{} {
	var keys []interface{}
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (Conversion) sortedMapKeys(keys []interface{}) []interface{} {
	sort.Slice(keys, func(i, j int) bool {
		iStr := fmt.Sprintf("%s", keys[i])
		jStr := fmt.Sprintf("%s", keys[j])
		return iStr < jStr
	})
	return keys
}
