// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strata-dev/strata/pkg/orderedmap"
	"gopkg.in/yaml.v3"
)

// DataValuesFlags collect the caller-supplied base render context. Context
// keys are flat, so every flag sets one key directly.
type DataValuesFlags struct {
	EnvFromStrings []string

	KVsFromStrings []string
	KVsFromYAML    []string
	KVsFromFiles   []string
}

func (s *DataValuesFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&s.EnvFromStrings, "data-values-env", nil, "Extract data values (as strings) from prefixed env vars (format: PREFIX for PREFIX_key1=str) (can be specified multiple times)")

	cmd.Flags().StringArrayVarP(&s.KVsFromStrings, "data-value", "v", nil, "Set specific data value to given value, as string (format: key1=123) (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&s.KVsFromYAML, "data-value-yaml", nil, "Set specific data value to given value, parsed as YAML (format: key1=true) (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&s.KVsFromFiles, "data-value-file", nil, "Set specific data value to given file contents, as string (format: key1=/file/path) (can be specified multiple times)")
}

type dataValuesFlagsSource struct {
	Values        []string
	TransformFunc func(string) (interface{}, error)
}

func (s *DataValuesFlags) Values() (*orderedmap.Map, error) {
	plainValFunc := func(rawVal string) (interface{}, error) { return rawVal, nil }

	yamlValFunc := func(rawVal string) (interface{}, error) {
		val, err := s.parseYAML(rawVal)
		if err != nil {
			return nil, fmt.Errorf("Deserializing YAML value: %s", err)
		}
		return val, nil
	}

	result := orderedmap.NewMap()

	for _, envPrefix := range s.EnvFromStrings {
		err := s.env(envPrefix, result)
		if err != nil {
			return nil, fmt.Errorf("Extracting data values from env under prefix '%s': %s", envPrefix, err)
		}
	}

	// KVs and files take precedence over environment variables
	for _, src := range []dataValuesFlagsSource{{s.KVsFromStrings, plainValFunc}, {s.KVsFromYAML, yamlValFunc}} {
		for _, kv := range src.Values {
			err := s.kv(kv, src.TransformFunc, result)
			if err != nil {
				return nil, fmt.Errorf("Extracting data value from KV: %s", err)
			}
		}
	}

	for _, file := range s.KVsFromFiles {
		err := s.file(file, result)
		if err != nil {
			return nil, fmt.Errorf("Extracting data value from file: %s", err)
		}
	}

	return result, nil
}

func (s *DataValuesFlags) env(prefix string, result *orderedmap.Map) error {
	for _, envVar := range os.Environ() {
		pieces := strings.SplitN(envVar, "=", 2)
		if len(pieces) != 2 {
			return fmt.Errorf("Expected env variable to be key-value pair (format: key=value)")
		}

		if !strings.HasPrefix(pieces[0], prefix+"_") {
			continue
		}

		result.Set(strings.TrimPrefix(pieces[0], prefix+"_"), pieces[1])
	}

	return nil
}

func (s *DataValuesFlags) kv(kv string, valueFunc func(string) (interface{}, error), result *orderedmap.Map) error {
	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 {
		return fmt.Errorf("Expected format key=value")
	}

	val, err := valueFunc(pieces[1])
	if err != nil {
		return fmt.Errorf("Deserializing value for key '%s': %s", pieces[0], err)
	}

	result.Set(pieces[0], val)
	return nil
}

func (s *DataValuesFlags) file(kv string, result *orderedmap.Map) error {
	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 {
		return fmt.Errorf("Expected format key=/file/path")
	}

	contents, err := os.ReadFile(pieces[1])
	if err != nil {
		return fmt.Errorf("Reading file '%s'", pieces[1])
	}

	result.Set(pieces[0], string(contents))
	return nil
}

func (s *DataValuesFlags) parseYAML(data string) (interface{}, error) {
	var parsed interface{}

	err := yaml.Unmarshal([]byte(data), &parsed)
	if err != nil {
		return nil, err
	}

	return orderedmap.Conversion{Object: parsed}.FromUnorderedMaps(), nil
}
