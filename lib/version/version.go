// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries the build-stamped release version.
package version

// Version is the gitzone release version, overridden at build time:
//
//	go build -ldflags "-X github.com/gitzone-tools/gitzone/lib/version.Version=2.2.3"
var Version = "dev"
