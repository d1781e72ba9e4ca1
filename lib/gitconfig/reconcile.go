// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/gitzone-tools/gitzone/lib/platform"
)

// ErrMissingConfig marks an absent configuration file, local or
// reference. Callers distinguish it from a content mismatch with
// errors.Is; an absent file is never silently treated as an empty
// configuration.
var ErrMissingConfig = errors.New("configuration file not found")

// Reason explains a validation verdict beyond the pass/fail boolean.
// The public contract is the boolean; the reason exists so callers can
// tell "values differ" from "no reference is published" when reporting.
type Reason string

const (
	ReasonMatch       Reason = "match"
	ReasonMismatch    Reason = "mismatch"
	ReasonUnsupported Reason = "unsupported-platform"
)

// Result is the outcome of validating a local configuration against
// the reference for a platform.
type Result struct {
	OK     bool
	Reason Reason
}

// Reconcile reports whether local satisfies reference under the
// required-minimum policy. Neither input is mutated.
//
// Rules, in evaluation order:
//  1. If local declares a user section at all, it must carry non-empty
//     name and email. Their values are never compared against the
//     reference.
//  2. Every other (section, key) in reference must exist in local with
//     an identical value. The first miss ends the comparison.
//  3. Local sections and keys absent from reference are ignored.
func Reconcile(local, reference Config) bool {
	if user, ok := local["user"]; ok {
		if user["name"] == "" || user["email"] == "" {
			return false
		}
	}

	for section, keys := range reference {
		for key, want := range keys {
			if section == "user" && (key == "name" || key == "email") {
				if local["user"][key] == "" {
					return false
				}
				continue
			}
			got, ok := local[section][key]
			if !ok || got != want {
				return false
			}
		}
	}

	return true
}

// Validate checks the configuration file at localPath against the
// embedded reference for label.
//
// A missing local file or an absent reference asset surfaces as an
// error wrapping [ErrMissingConfig]. An unsupported label is not an
// error: it yields Result{OK: false, Reason: ReasonUnsupported}
// without reading anything, since no comparison is meaningful.
func Validate(localPath string, label platform.Label) (Result, error) {
	if !platform.Supported(label) {
		return Result{OK: false, Reason: ReasonUnsupported}, nil
	}

	reference, err := Lookup(label)
	if err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingConfig, localPath)
		}
		return Result{}, fmt.Errorf("read %s: %w", localPath, err)
	}

	if Reconcile(Parse(string(data)), reference) {
		return Result{OK: true, Reason: ReasonMatch}, nil
	}
	return Result{OK: false, Reason: ReasonMismatch}, nil
}
