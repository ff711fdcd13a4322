// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"

	"github.com/strata-dev/strata/pkg/orderedmap"
)

// ExpandEcho fans a base context out into one context per member of the
// legend's echo group. Member fields overwrite base fields, so each echoed
// context carries its own name and overrides.
func ExpandEcho(meta *Meta, legend *Legend, base *orderedmap.Map) ([]*orderedmap.Map, error) {
	if meta == nil {
		return nil, fmt.Errorf("Echo group '%s' requires directory metadata", legend.Echo)
	}

	group, err := meta.Group(legend.Echo)
	if err != nil {
		return nil, err
	}

	var result []*orderedmap.Map

	for _, member := range group {
		ctx := deepCopyContext(base)
		member.Fields.Iterate(func(k, v interface{}) {
			ctx.Set(k, orderedmap.Conversion{Object: v}.DeepCopy())
		})
		ctx.Set("name", member.Name)
		result = append(result, ctx)
	}

	return result, nil
}
