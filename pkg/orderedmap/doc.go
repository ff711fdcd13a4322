// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map is crucial in keeping the output of strata deterministic
and stable: template registries iterate in registration order, and render
contexts enumerate their keys in insertion order.
*/
package orderedmap
