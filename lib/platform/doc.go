// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform classifies the workstation a process is running on
// into one of the network zone/platform labels that govern which
// reference Git configuration applies.
//
// Classification is split into two phases. [Detect] gathers an
// immutable [Signals] snapshot from the operating system identity, the
// environment, and up to two network reachability probes. [Classify]
// is a pure function from that snapshot to a [Label]. The split keeps
// the decision table deterministic and unit-testable: tests construct
// Signals directly or inject a fake [Prober] instead of mocking the
// network.
//
// Probe targets, environment markers, and per-label supportedness live
// in an embedded manifest rather than in code, so adding or retiring a
// platform is a data change.
package platform
