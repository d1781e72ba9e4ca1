// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package git provides typed access to the git CLI for the handful of
// operations gitzone needs: cloning the configuration distribution
// repository and reading/writing global identity settings. Stderr is
// captured and folded into error messages on failure.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CloneOptions controls a Clone call.
type CloneOptions struct {
	// Branch checks out a specific branch or tag instead of the
	// remote default.
	Branch string

	// InsecureTLS disables certificate verification for the clone.
	// Needed in network zones where an intercepting proxy re-signs
	// outbound TLS.
	InsecureTLS bool
}

// Clone clones url into dir.
func Clone(ctx context.Context, url, dir string, options CloneOptions) error {
	var args []string
	if options.InsecureTLS {
		args = append(args, "-c", "http.sslVerify=False")
	}
	args = append(args, "clone", "--depth", "1")
	if options.Branch != "" {
		args = append(args, "--branch", options.Branch)
	}
	args = append(args, url, dir)

	_, err := run(ctx, args...)
	return err
}

// ConfigGet reads a global configuration value (e.g. "user.name").
// An unset key is not an error: it returns ("", nil), matching the
// "no value" exit status git uses for single-value lookups.
func ConfigGet(ctx context.Context, key string) (string, error) {
	output, err := run(ctx, "config", "--global", "--get", key)
	if err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) && exitError.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// ConfigSetGlobal writes a global configuration value.
func ConfigSetGlobal(ctx context.Context, key, value string) error {
	_, err := run(ctx, "config", "--global", key, value)
	return err
}

// run executes a git command and returns stdout. Stderr is captured
// separately and included in error messages on failure.
func run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, "git", args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w (stderr: %s)",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
