// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strata-dev/strata/pkg/cmd/ui"
	"github.com/strata-dev/strata/pkg/workspace"
)

func TestRegisterSourceRoutesByExtension(t *testing.T) {
	library := workspace.NewLibrary(ui.NewTTY(false))

	require.NoError(t, library.RegisterSource([]byte("<html>"), "index.tmpl"))
	require.NoError(t, library.RegisterSource([]byte("<p>"), "docs/intro.tmpl"))
	require.NoError(t, library.RegisterSource([]byte("files:\n- name: intro\n"), "docs/meta.yaml"))

	require.Equal(t, []string{"index", "docs/intro"}, library.TemplatePaths())

	meta := library.MetaAtPath("docs/intro")
	require.NotNil(t, meta)
	require.NotNil(t, meta.LegendForName("intro"))

	require.Nil(t, library.MetaAtPath("index"))
}

func TestRegisterSourceRejectsSecondMetaForDirectory(t *testing.T) {
	library := workspace.NewLibrary(ui.NewTTY(false))

	require.NoError(t, library.RegisterSource([]byte("ignore: draft\n"), "docs/meta.yaml"))

	err := library.RegisterSource([]byte("{}"), "docs/meta.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Metadata for directory 'docs' already registered")
}

func TestRegisterSourceReportsCompileErrors(t *testing.T) {
	library := workspace.NewLibrary(ui.NewTTY(false))

	err := library.RegisterSource([]byte("broken {{ x"), "docs/bad.tmpl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Compiling template 'docs/bad.tmpl'")
	require.Contains(t, err.Error(), "Missing closing '}}'")
}

func TestFileLegendMatchesBasename(t *testing.T) {
	library := workspace.NewLibrary(ui.NewTTY(false))

	require.NoError(t, library.RegisterSource(
		[]byte("files:\n- name: intro\n  author: ann\n"), "docs/meta.yaml"))

	legend := library.FileLegend("docs/intro")
	require.NotNil(t, legend)
	require.Equal(t, "intro", legend.Name)

	author, found := legend.Fields.Get("author")
	require.True(t, found)
	require.Equal(t, "ann", author)

	require.Nil(t, library.FileLegend("docs/other"))
	require.Nil(t, library.FileLegend("elsewhere/intro"))
}
