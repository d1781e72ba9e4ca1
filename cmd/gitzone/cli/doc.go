// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the gitzone command tree: dispatch, flag
// parsing via pflag, structured help output, typo suggestions for
// unknown commands and flags, and exit-code plumbing.
package cli
