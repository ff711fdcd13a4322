// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace

import (
	"fmt"
	"io"
	"strings"

	"github.com/k14s/starlark-go/starlark"
	"github.com/strata-dev/strata/pkg/cmd/ui"
	"github.com/strata-dev/strata/pkg/files"
	"github.com/strata-dev/strata/pkg/orderedmap"
	"github.com/strata-dev/strata/pkg/template"
	"github.com/strata-dev/strata/pkg/texttemplate"
)

// RenameFunc optionally rewrites a virtual output path. An empty result
// keeps the original path.
type RenameFunc func(path string) string

// Library holds the template and meta registries for one rendering pass.
// Both iterate in registration order, which makes the output deterministic
// (including which entry wins a virtual-path collision).
type Library struct {
	templates *orderedmap.Map // template path -> *template.CompiledTemplate
	metas     *orderedmap.Map // directory path -> *Meta
	helpers   map[string]starlark.Value
	rename    RenameFunc
	ui        ui.UI
}

func NewLibrary(ui ui.UI) *Library {
	l := &Library{
		templates: orderedmap.NewMap(),
		metas:     orderedmap.NewMap(),
		ui:        ui,
	}
	l.helpers = l.newHelpers()
	return l
}

func (l *Library) SetRenameFunc(f RenameFunc) { l.rename = f }

var metaExts = []string{".yaml", ".yml", ".json", ".toml"}

// RegisterFiles registers every file's contents under its relative path.
func (l *Library) RegisterFiles(fs []*files.File) error {
	for _, file := range fs {
		data, err := file.Bytes()
		if err != nil {
			return fmt.Errorf("Reading %s: %s", file.Description(), err)
		}

		err = l.RegisterSource(data, file.RelativePath())
		if err != nil {
			return err
		}
	}
	return nil
}

// RegisterSource registers one source under its normalized path. A
// metadata extension routes it into the meta registry keyed by its owning
// directory (at most one per directory); anything else is compiled into the
// template registry keyed by the extension-stripped path.
func (l *Library) RegisterSource(data []byte, path string) error {
	p := NormalizePath(path)
	if len(p) == 0 {
		return fmt.Errorf("Expected non-empty path for registration")
	}

	ext := strings.ToLower(extOf(p))

	for _, metaExt := range metaExts {
		if ext == metaExt {
			return l.registerMeta(data, p, ext)
		}
	}

	return l.registerTemplate(data, p)
}

func (l *Library) registerMeta(data []byte, path, ext string) error {
	dir := dirOf(path)

	if _, found := l.metas.Get(dir); found {
		return fmt.Errorf("Metadata for directory '%s' already registered (second source: '%s')", dir, path)
	}

	var meta *Meta
	var err error

	switch ext {
	case ".toml":
		meta, err = NewMetaFromTOML(data)
	default:
		meta, err = NewMetaFromYAML(data)
	}
	if err != nil {
		return fmt.Errorf("Parsing metadata '%s': %s", path, err)
	}

	l.ui.Debugf("registered metadata for directory '%s'\n", dir)
	l.metas.Set(dir, meta)
	return nil
}

func (l *Library) registerTemplate(data []byte, path string) error {
	key := StripExt(path)

	compiled, err := texttemplate.NewCompiledTextTemplate(key, data)
	if err != nil {
		return fmt.Errorf("Compiling template '%s': %s", path, err)
	}

	l.ui.Debugf("registered template '%s'\n", key)
	l.templates.Set(key, compiled)
	return nil
}

// MetaAtPath finds the metadata owning a path: a path ending with a
// separator is taken as a directory itself, any other path contributes its
// parent directory.
func (l *Library) MetaAtPath(path string) *Meta {
	var dir string
	if strings.HasSuffix(path, "/") {
		dir = NormalizePath(path)
		if len(dir) == 0 {
			dir = "."
		}
	} else {
		dir = dirOf(NormalizePath(path))
	}

	if val, found := l.metas.Get(dir); found {
		return val.(*Meta)
	}
	return nil
}

// FileLegend finds the legend entry matching a path's basename within its
// owning directory's metadata.
func (l *Library) FileLegend(path string) *Legend {
	meta := l.MetaAtPath(path)
	if meta == nil {
		return nil
	}
	return meta.LegendForName(baseOf(NormalizePath(path)))
}

// TemplatePaths returns registered template paths in registration order.
func (l *Library) TemplatePaths() []string {
	var result []string
	l.templates.Iterate(func(k, _ interface{}) {
		result = append(result, k.(string))
	})
	return result
}

// Print dumps each compiled template's generated program (debug aid).
func (l *Library) Print(w io.Writer) {
	l.templates.Iterate(func(k, v interface{}) {
		fmt.Fprintf(w, "### template: %s\n%s\n", k, v.(*template.CompiledTemplate).DebugCodeAsString())
	})
}
