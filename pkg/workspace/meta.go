// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"

	"github.com/BurntSushi/toml"
	govers "github.com/hashicorp/go-version"
	"github.com/strata-dev/strata/pkg/orderedmap"
	"github.com/strata-dev/strata/pkg/version"
	"gopkg.in/yaml.v3"
)

// Meta is the parsed metadata descriptor attached to one directory.
// Recognized fields are extracted; the full parsed document is kept so that
// echo groups and author-defined fields remain reachable (also exposed to
// templates as $meta).
type Meta struct {
	Ignore string
	Files  []*Legend

	raw *orderedmap.Map
}

// Legend is the per-file metadata entry: a required name (matched against a
// file's basename) plus arbitrary additional fields merged into a render
// context.
type Legend struct {
	Name string
	Echo string

	Fields *orderedmap.Map
}

// NewMetaFromYAML parses YAML (and, being a superset, JSON) metadata.
func NewMetaFromYAML(data []byte) (*Meta, error) {
	var parsed map[string]interface{}

	err := yaml.Unmarshal(data, &parsed)
	if err != nil {
		return nil, err
	}

	return newMeta(orderedmap.Conversion{Object: parsed}.FromUnorderedMaps().(*orderedmap.Map))
}

// NewMetaFromTOML parses TOML metadata.
func NewMetaFromTOML(data []byte) (*Meta, error) {
	var parsed map[string]interface{}

	err := toml.Unmarshal(data, &parsed)
	if err != nil {
		return nil, err
	}

	return newMeta(orderedmap.Conversion{Object: tomlValAsGeneric(parsed)}.FromUnorderedMaps().(*orderedmap.Map))
}

func newMeta(raw *orderedmap.Map) (*Meta, error) {
	meta := &Meta{raw: raw}

	if val, found := raw.Get("ignore"); found {
		str, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("Expected 'ignore' to be a string, but was %T", val)
		}
		meta.Ignore = str
	}

	if val, found := raw.Get("files"); found {
		seq, ok := val.([]interface{})
		if !ok {
			return nil, fmt.Errorf("Expected 'files' to be an array, but was %T", val)
		}
		for i, item := range seq {
			legend, err := NewLegendFromVal(item)
			if err != nil {
				return nil, fmt.Errorf("Legend %d within 'files': %s", i, err)
			}
			meta.Files = append(meta.Files, legend)
		}
	}

	if val, found := raw.Get("engine"); found {
		err := checkEngineConstraint(val)
		if err != nil {
			return nil, err
		}
	}

	return meta, nil
}

// NewLegendFromVal validates the Legend shape: a map with a non-empty
// string 'name'.
func NewLegendFromVal(val interface{}) (*Legend, error) {
	fields, ok := val.(*orderedmap.Map)
	if !ok {
		return nil, fmt.Errorf("Expected a map, but was %T", val)
	}

	nameVal, found := fields.Get("name")
	if !found {
		return nil, fmt.Errorf("Expected 'name' to be present")
	}

	name, ok := nameVal.(string)
	if !ok || len(name) == 0 {
		return nil, fmt.Errorf("Expected 'name' to be a non-empty string")
	}

	legend := &Legend{Name: name, Fields: fields}

	if echoVal, found := fields.Get("echo"); found {
		echo, ok := echoVal.(string)
		if !ok || len(echo) == 0 {
			return nil, fmt.Errorf("Expected 'echo' to be a non-empty string")
		}
		legend.Echo = echo
	}

	return legend, nil
}

// LegendForName locates the legend within 'files' whose name matches the
// given basename.
func (m *Meta) LegendForName(name string) *Legend {
	for _, legend := range m.Files {
		if legend.Name == name {
			return legend
		}
	}
	return nil
}

// Group resolves a named echo group: it must exist, be a non-empty
// sequence, and every element must satisfy the Legend shape.
func (m *Meta) Group(name string) ([]*Legend, error) {
	val, found := m.raw.Get(name)
	if !found {
		return nil, fmt.Errorf("Expected echo group '%s' to be defined in directory metadata", name)
	}

	seq, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("Expected echo group '%s' to be an array, but was %T", name, val)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("Expected echo group '%s' to not be empty", name)
	}

	var result []*Legend
	for i, item := range seq {
		legend, err := NewLegendFromVal(item)
		if err != nil {
			return nil, fmt.Errorf("Legend %d within echo group '%s': %s", i, name, err)
		}
		result = append(result, legend)
	}

	return result, nil
}

// Raw returns the full parsed metadata document.
func (m *Meta) Raw() *orderedmap.Map { return m.raw }

func checkEngineConstraint(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("Expected 'engine' to be a version constraint string, but was %T", val)
	}

	constraint, err := govers.NewConstraint(str)
	if err != nil {
		return fmt.Errorf("Parsing 'engine' constraint: %s", err)
	}

	current, err := govers.NewVersion(version.Version)
	if err != nil {
		return fmt.Errorf("Parsing engine version: %s", err)
	}

	if !constraint.Check(current) {
		return fmt.Errorf("Metadata requires engine version '%s', but running %s", str, version.Version)
	}

	return nil
}

// tomlValAsGeneric aligns the toml decoder's typed output
// (map[string]interface{}, []map[string]interface{}) with the generic
// shapes the rest of the metadata layer expects.
func tomlValAsGeneric(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case map[string]interface{}:
		for k, v := range typedVal {
			typedVal[k] = tomlValAsGeneric(v)
		}
		return typedVal

	case []map[string]interface{}:
		result := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			result[i] = tomlValAsGeneric(item)
		}
		return result

	case []interface{}:
		for i, item := range typedVal {
			typedVal[i] = tomlValAsGeneric(item)
		}
		return typedVal

	default:
		return typedVal
	}
}
