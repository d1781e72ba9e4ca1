// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package detect implements "gitzone detect": print the classified
// platform and the raw signals behind the classification.
package detect

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gitzone-tools/gitzone/cmd/gitzone/cli"
	"github.com/gitzone-tools/gitzone/lib/platform"
)

// output is the JSON shape of a detection run.
type output struct {
	Platform  string           `json:"platform"`
	Supported bool             `json:"supported"`
	Signals   platform.Signals `json:"signals"`
}

// Command returns the "gitzone detect" command.
func Command() *cli.Command {
	var jsonOut bool

	return &cli.Command{
		Name:    "detect",
		Summary: "Print the detected platform",
		Description: `Classify the platform this machine runs on and print the result.

Exits non-zero when the platform cannot be determined, so scripts can
gate on detection:

	gitzone detect >/dev/null && gitzone apply`,
		Usage: "gitzone detect [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("detect", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonOut, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			ctx := context.Background()
			signals := platform.Detect(ctx, platform.PingProber{}, os.Getenv)
			label := platform.Classify(signals)

			if jsonOut {
				err := cli.WriteJSON(output{
					Platform:  string(label),
					Supported: platform.Supported(label),
					Signals:   signals,
				})
				if err != nil {
					return err
				}
			} else {
				fmt.Printf("%s (%s)\n", label, signals)
			}

			if label == platform.Unknown {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
