// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete gitzone CLI command tree.
package commands

import (
	"fmt"

	applycmd "github.com/gitzone-tools/gitzone/cmd/gitzone/apply"
	"github.com/gitzone-tools/gitzone/cmd/gitzone/cli"
	detectcmd "github.com/gitzone-tools/gitzone/cmd/gitzone/detect"
	validatecmd "github.com/gitzone-tools/gitzone/cmd/gitzone/validate"
	"github.com/gitzone-tools/gitzone/lib/version"
)

// Root builds and returns the complete gitzone CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "gitzone",
		Description: `gitzone: platform-aware Git configuration.

Detect which managed network zone this workstation runs on and install
or validate the recommended Git configuration for it.`,
		Subcommands: []*cli.Command{
			applycmd.Command(),
			validatecmd.Command(),
			detectcmd.Command(),
			versionCommand(),
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print the gitzone version",
		Usage:   "gitzone version",
		Run: func(args []string) error {
			fmt.Println(version.Version)
			return nil
		},
	}
}
