// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	cmdrender "github.com/strata-dev/strata/pkg/cmd/render"
	"github.com/strata-dev/strata/pkg/version"
)

type StrataOptions struct{}

func NewDefaultStrataOptions() *StrataOptions {
	return &StrataOptions{}
}

func NewDefaultStrataCmd() *cobra.Command {
	return NewStrataCmd(NewDefaultStrataOptions())
}

func NewStrataCmd(o *StrataOptions) *cobra.Command {
	cmd := cmdrender.NewCmd(cmdrender.NewOptions())

	cmd.Use = "strata"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "strata renders hierarchical document templates"
	cmd.Long = `strata renders hierarchical document templates.

Each leaf template is rendered and then wrapped by the templates of its
parent directories, up to the root 'index' template.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdrender.NewCmd(cmdrender.NewOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
