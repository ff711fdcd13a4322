// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/strata-dev/strata/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultStrataCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "strata: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
