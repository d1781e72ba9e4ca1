// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"context"
	"io"
	"os/exec"
	"runtime"
	"time"
)

// Prober answers reachability questions during signal gathering.
// Implementations must treat every failure mode (timeout, DNS error,
// missing tooling) as "unreachable" and never block past their own
// timeout; a probe is a heuristic, not a health check.
type Prober interface {
	Reachable(ctx context.Context, host string) bool
}

// probeTimeout bounds a single echo request. The zone hosts answer in
// single-digit milliseconds when on-net; anything slower is off-net.
const probeTimeout = time.Second

// PingProber probes with one echo request via the system ping binary.
// The binary is used instead of raw ICMP sockets because unprivileged
// processes cannot open those on the locked-down managed platforms
// this tool targets.
type PingProber struct{}

// Reachable sends a single ping to host and reports whether a reply
// arrived before the timeout. Any error, including a missing ping
// binary, degrades to false.
func (PingProber) Reachable(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout+2*time.Second)
	defer cancel()

	// Flag spelling differs per OS: count is -n and timeout is -w (in
	// milliseconds) on Windows, -c and -W (in seconds) elsewhere.
	countFlag, timeoutFlag, timeoutValue := "-c", "-W", "1"
	if runtime.GOOS == "windows" {
		countFlag, timeoutFlag, timeoutValue = "-n", "-w", "1000"
	}

	command := exec.CommandContext(ctx, "ping", countFlag, "1", timeoutFlag, timeoutValue, host)
	command.Stdout = io.Discard
	command.Stderr = io.Discard
	return command.Run() == nil
}
