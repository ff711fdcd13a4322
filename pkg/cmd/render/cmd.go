// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	cmdui "github.com/strata-dev/strata/pkg/cmd/ui"
	"github.com/strata-dev/strata/pkg/files"
	"github.com/strata-dev/strata/pkg/orderedmap"
	"github.com/strata-dev/strata/pkg/workspace"
)

type RenderOptions struct {
	Debug     bool
	Recursive bool

	FilePaths       []string
	OutputDirectory string
	OutputExtension string

	DataValuesFlags DataValuesFlags
}

func NewOptions() *RenderOptions {
	return &RenderOptions{
		Recursive: true,
	}
}

func NewCmd(o *RenderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"r"},
		Short:   "Render registered templates into final documents",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVarP(&o.Recursive, "recursive", "R", true, "Render subdirectories (true by default)")
	cmd.Flags().StringSliceVarP(&o.FilePaths, "file", "f", nil, "File (ie local path, -) (can be specified multiple times)")
	cmd.Flags().StringVarP(&o.OutputDirectory, "output-directory", "o", "", "Output destination directory (recreated on each run)")
	cmd.Flags().StringVar(&o.OutputExtension, "output-extension", "", "Extension appended to every output file path (eg .html)")
	o.DataValuesFlags.Set(cmd)
	return cmd
}

func (o *RenderOptions) Run() error {
	ui := cmdui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	if len(o.FilePaths) == 0 {
		return fmt.Errorf("Expected at least one input file (use -f)")
	}

	inputFiles, err := files.NewFiles(o.FilePaths, o.Recursive)
	if err != nil {
		return err
	}

	library := workspace.NewLibrary(ui)

	err = library.RegisterFiles(inputFiles)
	if err != nil {
		return err
	}

	library.Print(ui.DebugWriter())

	data, err := o.DataValuesFlags.Values()
	if err != nil {
		return err
	}

	docs, err := library.RenderAll(data)
	if err != nil {
		return err
	}

	if len(o.OutputDirectory) > 0 {
		outputFiles := files.NewOutputFilesFromDocs(docs, o.OutputExtension)
		return files.NewOutputDirectory(o.OutputDirectory, outputFiles, ui).Write()
	}

	return o.printDocs(docs, ui)
}

func (o *RenderOptions) printDocs(docs *orderedmap.Map, ui cmdui.TTY) error {
	multiple := docs.Len() > 1

	docs.Iterate(func(k, v interface{}) {
		if multiple {
			ui.Printf("=== %s%s\n", k.(string), o.OutputExtension)
		}
		ui.Printf("%s", v.(string))
	})

	return nil
}
