// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate implements "gitzone validate": a checklist-style
// checkup of the local Git setup against the recommendation for the
// detected platform.
package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/gitzone-tools/gitzone/cmd/gitzone/cli"
	"github.com/gitzone-tools/gitzone/cmd/gitzone/cli/checklist"
	"github.com/gitzone-tools/gitzone/lib/gitconfig"
	"github.com/gitzone-tools/gitzone/lib/platform"
)

type options struct {
	jsonOut bool
	repoDir string
}

// Command returns the "gitzone validate" command.
func Command() *cli.Command {
	var opts options

	return &cli.Command{
		Name:    "validate",
		Summary: "Check the local Git configuration against the recommendation",
		Description: `Check whether this machine's Git configuration follows the
recommendation for its detected platform.

Every key the reference configuration declares must be present in
~/.gitconfig with the same value; the user name and email address are
only required to be set, their values are yours. Extra local settings
are fine.

With --repo-dir, also check that the repository's .gitignore and
.gitattributes contain the recommended entries.`,
		Usage: "gitzone validate [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the global configuration",
				Command:     "gitzone validate",
			},
			{
				Description: "Also check the repository in the current directory",
				Command:     "gitzone validate --repo-dir .",
			},
			{
				Description: "Machine-readable output",
				Command:     "gitzone validate --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			flagSet.BoolVar(&opts.jsonOut, "json", false, "output as JSON")
			flagSet.StringVar(&opts.repoDir, "repo-dir", "", "repository directory whose local git files to check")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return run(context.Background(), opts)
		},
	}
}

func run(ctx context.Context, opts options) error {
	logger := cli.NewCommandLogger().With("command", "validate")

	signals := platform.Detect(ctx, platform.PingProber{}, os.Getenv)
	label := platform.Classify(signals)
	logger.Info("detected platform", "platform", label, "signals", signals.String())

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}

	results := buildResults(label, filepath.Join(home, ".gitconfig"), opts.repoDir)

	if opts.jsonOut {
		report := checklist.BuildReport(results)
		if err := cli.WriteJSON(report); err != nil {
			return err
		}
		if !report.OK {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	return checklist.Print(os.Stdout, results)
}

// buildResults runs the individual checks. Separated from run so tests
// can drive it with a fixed label and paths instead of live detection.
func buildResults(label platform.Label, gitconfigPath, repoDir string) []checklist.Result {
	var results []checklist.Result

	if label == platform.Unknown {
		results = append(results,
			checklist.Fail("platform", "could not determine the platform this machine runs on"),
			checklist.Skip("gitconfig", "skipped: platform unknown"))
		return append(results, repoFileResults(repoDir)...)
	}
	results = append(results, checklist.Pass("platform", string(label)))

	if !platform.Supported(label) {
		results = append(results,
			checklist.Fail("reference config", fmt.Sprintf("no reference configuration is published for %s", label)),
			checklist.Skip("gitconfig", "skipped: platform unsupported"))
		return append(results, repoFileResults(repoDir)...)
	}
	results = append(results, checklist.Pass("reference config", "published for this platform"))

	result, err := gitconfig.Validate(gitconfigPath, label)
	switch {
	case errors.Is(err, gitconfig.ErrMissingConfig):
		results = append(results, checklist.Fail("gitconfig",
			fmt.Sprintf("%s does not exist; run \"gitzone apply\"", gitconfigPath)))
	case err != nil:
		results = append(results, checklist.Fail("gitconfig", err.Error()))
	case result.OK:
		results = append(results, checklist.Pass("gitconfig",
			fmt.Sprintf("matches the recommendation for %s", label)))
	default:
		results = append(results, checklist.Fail("gitconfig",
			"does not follow the recommendation; run \"gitzone apply\" to fix"))
	}

	return append(results, repoFileResults(repoDir)...)
}

// repoFileResults checks the repository-local git files when a
// directory was requested. No directory, no checks.
func repoFileResults(repoDir string) []checklist.Result {
	if repoDir == "" {
		return nil
	}

	ok, err := gitconfig.ValidateLocalFiles(repoDir)
	switch {
	case err != nil:
		return []checklist.Result{checklist.Fail("repo files", err.Error())}
	case ok:
		return []checklist.Result{checklist.Pass("repo files",
			".gitignore and .gitattributes contain the recommended entries")}
	default:
		return []checklist.Result{checklist.Fail("repo files",
			".gitignore or .gitattributes is missing recommended entries")}
	}
}
