// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package workspace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strata-dev/strata/pkg/cmd/ui"
	"github.com/strata-dev/strata/pkg/orderedmap"
	"github.com/strata-dev/strata/pkg/workspace"
)

func newTestLibrary(t *testing.T, sources map[string]string) *workspace.Library {
	library := workspace.NewLibrary(ui.NewTTY(false))

	// register in a stable order so tests do not depend on map iteration
	var paths []string
	for path := range sources {
		paths = append(paths, path)
	}
	for _, path := range sortedStrings(paths) {
		require.NoError(t, library.RegisterSource([]byte(sources[path]), path))
	}

	return library
}

func sortedStrings(strs []string) []string {
	for i := 1; i < len(strs); i++ {
		for j := i; j > 0 && strs[j] < strs[j-1]; j-- {
			strs[j], strs[j-1] = strs[j-1], strs[j]
		}
	}
	return strs
}

func TestRenderThroughWrapsLeafInAncestors(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl":      `<title>{{ $title }}</title><body>{{ $content }}</body>`,
		"docs.tmpl":       `<< $entitle("Docs", $) >><section>{{ $content }}</section>`,
		"docs/intro.tmpl": `<< $entitle("Intro", $) >><p>intro</p>`,
	})

	docs, err := library.RenderTemplate("docs/intro", nil)
	require.NoError(t, err)

	out, found := docs.Get("docs/intro")
	require.True(t, found)
	require.Equal(t,
		`<title>Docs | Intro</title><body><section><p>intro</p></section></body>`, out)
}

func TestRenderOnePassesContentThroughMissingTemplates(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl": `[{{ $content }}]`,
	})

	ctx := orderedmap.NewMap()
	ctx.Set("$content", "inner")

	out, err := library.RenderOne("docs/none", ctx)
	require.NoError(t, err)
	require.Equal(t, "inner", out)

	out, err = library.RenderThrough("docs/none", ctx)
	require.NoError(t, err)
	require.Equal(t, "[inner]", out)
}

func TestRenderTemplateBindsDataValuesAndLegendFields(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl":      `{{ $content }}`,
		"docs/meta.yaml":  "files:\n- name: intro\n  author: ann\n",
		"docs/intro.tmpl": `{{ author }} for {{ site }} as {{ name }}`,
	})

	data := orderedmap.NewMap()
	data.Set("site", "strata.dev")

	docs, err := library.RenderTemplate("docs/intro", data)
	require.NoError(t, err)

	out, _ := docs.Get("docs/intro")
	require.Equal(t, "ann for strata.dev as intro", out)
}

func TestRenderTemplateEchoFansOut(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl":     `{{ $content }}`,
		"docs/meta.yaml": "files:\n- name: item\n  echo: posts\nposts:\n- name: first\n  label: One\n- name: second\n  label: Two\n",
		"docs/item.tmpl": `{{ name }}={{ label }}@{{ $path }}`,
	})

	docs, err := library.RenderTemplate("docs/item", nil)
	require.NoError(t, err)
	require.Equal(t, 2, docs.Len())

	first, found := docs.Get("docs/first")
	require.True(t, found)
	require.Equal(t, "first=One@docs/first", first)

	second, found := docs.Get("docs/second")
	require.True(t, found)
	require.Equal(t, "second=Two@docs/second", second)
}

func TestRenderTemplateEchoRequiresGroup(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"docs/meta.yaml": "files:\n- name: item\n  echo: posts\n",
		"docs/item.tmpl": `x`,
	})

	_, err := library.RenderTemplate("docs/item", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected echo group 'posts' to be defined")
}

func TestRenderAllSkipsIgnoredTemplates(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"docs/draft-a.tmpl": `draft`,
		"docs/intro.tmpl":   `<p>intro</p>`,
		"docs/meta.yaml":    "ignore: draft-*\n",
		"index.tmpl":        `[{{ $content }}]`,
	})

	docs, err := library.RenderAll(nil)
	require.NoError(t, err)

	_, found := docs.Get("docs/draft-a")
	require.False(t, found)

	intro, found := docs.Get("docs/intro")
	require.True(t, found)
	require.Equal(t, "[<p>intro</p>]", intro)

	index, found := docs.Get("index")
	require.True(t, found)
	require.Equal(t, "[]", index)
}

func TestRenderAllStopsAtFirstFailure(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"a.tmpl": `{{ undefined_fn() }}`,
		"b.tmpl": `fine`,
	})

	_, err := library.RenderAll(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Rendering template 'a'")
}

func TestRenderTemplateInclude(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl": `{{ $content }}`,
		"nav.tmpl":   `<nav>{{ site }}</nav>`,
		"page.tmpl":  `{{ $include("nav", $) }}<main></main>`,
	})

	data := orderedmap.NewMap()
	data.Set("site", "strata.dev")

	docs, err := library.RenderTemplate("page", data)
	require.NoError(t, err)

	out, _ := docs.Get("page")
	require.Equal(t, "<nav>strata.dev</nav><main></main>", out)
}

func TestRenderTemplateIncludeIsolatesContext(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl":   `{{ $content }}|{{ $title }}`,
		"sidebar.tmpl": `<< $title = "hijacked" >>side`,
		"page.tmpl":    `<< $title = "Page" >>{{ $include("sidebar", $) }}main`,
	})

	docs, err := library.RenderTemplate("page", nil)
	require.NoError(t, err)

	out, _ := docs.Get("page")
	require.Equal(t, "sidemain|Page", out)
}

func TestActiveHelpers(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl": `<a {{ $act("docs", $) }}>docs</a> <a {{ $act("about", $) }}>about</a> {{ $active("docs", $) }}`,
	})

	ctx := orderedmap.NewMap()
	ctx.Set("$path", "docs/intro")

	out, err := library.RenderOne("index", ctx)
	require.NoError(t, err)
	require.Equal(t, `<a class="active">docs</a> <a >about</a> active`, out)
}

func TestRenderTemplateRename(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl": `{{ $content }}`,
		"about.tmpl": `about us`,
	})

	library.SetRenameFunc(func(path string) string {
		if path == "about" {
			return "about/index"
		}
		return ""
	})

	docs, err := library.RenderAll(nil)
	require.NoError(t, err)

	_, found := docs.Get("about")
	require.False(t, found)

	out, found := docs.Get("about/index")
	require.True(t, found)
	require.Equal(t, "about us", out)
}

func TestRenderErrorsCarrySourceContext(t *testing.T) {
	library := newTestLibrary(t, map[string]string{
		"index.tmpl": "line one\n{{ undefined_fn() }}\n",
	})

	_, err := library.RenderTemplate("index", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Rendering template 'index'")
	require.True(t, strings.Contains(err.Error(), "index"))
}
