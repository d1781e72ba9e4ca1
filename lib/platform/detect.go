// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"context"
	"runtime"
	"slices"
	"strings"
)

// Detect gathers a Signals snapshot using the default manifest, the
// process environment, and the system prober. getenv is injected (pass
// os.Getenv outside tests) so detection never mutates or depends on
// hidden process state.
//
// Probe ordering follows the manifest semantics: the Dapla marker
// suppresses both probes, the prod host is probed first, and the adm
// host is probed only when the prod probe failed. Worst case is two
// outbound echo requests.
func Detect(ctx context.Context, prober Prober, getenv func(string) string) Signals {
	return detect(ctx, Default(), prober, getenv, runtime.GOOS)
}

func detect(ctx context.Context, manifest *Manifest, prober Prober, getenv func(string) string, goos string) Signals {
	var signals Signals

	switch goos {
	case "linux":
		signals.Linux = true
	case "windows":
		signals.Windows = true
	case "darwin":
		signals.Mac = true
	}

	markers := manifest.Markers
	if slices.Contains(markers.DaplaValues, getenv(markers.DaplaVar)) {
		signals.Dapla = true
	}

	if !signals.Dapla {
		signals.ProdZone = prober.Reachable(ctx, manifest.Probes.ProdHost)
		if !signals.ProdZone {
			signals.AdmZone = prober.Reachable(ctx, manifest.Probes.AdmHost)
		}
		session := getenv(markers.SessionVar)
		signals.Citrix = strings.Contains(session, markers.CitrixSubstring)
	}

	return signals
}
