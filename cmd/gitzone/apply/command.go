// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package apply implements "gitzone apply": detect the platform, fetch
// the recommended Git configuration for it, back up and replace
// ~/.gitconfig, and restore the user's identity on top.
package apply

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/gitzone-tools/gitzone/cmd/gitzone/cli"
)

// Command returns the "gitzone apply" command.
func Command() *cli.Command {
	var options Options

	return &cli.Command{
		Name:    "apply",
		Summary: "Install the recommended Git configuration for this platform",
		Description: `Detect the platform this machine runs on and install the recommended
Git configuration for it.

An existing ~/.gitconfig is backed up first, and the user name and
email address found in it are carried over. Missing identity fields
are prompted for (or taken from --name/--email).

The reference configurations are fetched from the distribution
repository; --offline uses the copies embedded in this binary
instead.`,
		Usage: "gitzone apply [flags]",
		Examples: []cli.Example{
			{
				Description: "Apply the recommended configuration",
				Command:     "gitzone apply",
			},
			{
				Description: "Non-interactive use in provisioning scripts",
				Command:     `gitzone apply --name "Ada Lovelace" --email ada@example.com`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("apply", pflag.ContinueOnError)
			flagSet.StringVar(&options.RepoURL, "repo", DefaultRepoURL, "configuration distribution repository")
			flagSet.StringVar(&options.Branch, "branch", "", "branch or tag to fetch (default: remote default branch)")
			flagSet.StringVar(&options.Name, "name", "", "user name to configure (skips the prompt)")
			flagSet.StringVar(&options.Email, "email", "", "email address to configure (skips the prompt)")
			flagSet.BoolVar(&options.Offline, "offline", false, "use the reference configs embedded in this binary")
			flagSet.BoolVar(&options.Test, "test", false, "exercise the full flow with placeholder identity and the dapla config")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			logger := cli.NewCommandLogger().With("command", "apply")
			return Run(context.Background(), logger, options)
		},
	}
}
