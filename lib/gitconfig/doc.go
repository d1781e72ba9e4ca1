// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package gitconfig parses Git configuration text and reconciles a
// local configuration against the reference configuration published
// for a platform.
//
// Reconciliation treats the reference as a required minimum: every
// (section, key) the reference declares must be present locally with
// an identical value, while extra local sections and keys are always
// permitted. The one exception is the user section: name and email
// are expected to be locally customized, so they are checked for
// presence only, never for value.
//
// The reference configurations themselves are embedded in the binary;
// [Lookup] resolves a platform label to its parsed reference.
package gitconfig
