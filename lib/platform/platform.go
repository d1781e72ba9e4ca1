// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import "fmt"

// Label identifies the classified execution environment. The set is
// closed: every classification run yields exactly one of the constants
// below, with [Unknown] as the total-function fallback.
type Label string

const (
	Dapla             Label = "dapla"
	ProdLinux         Label = "prod-linux"
	ProdWindowsCitrix Label = "prod-windows-citrix"
	ProdWindowsVDI    Label = "prod-windows-vdi"
	AdmWindows        Label = "adm-windows"
	AdmMac            Label = "adm-mac"
	Unknown           Label = "unknown"
)

// Labels lists every label in classification priority order.
func Labels() []Label {
	return []Label{
		Dapla, ProdLinux, ProdWindowsCitrix, ProdWindowsVDI,
		AdmWindows, AdmMac, Unknown,
	}
}

// Signals is the immutable fact record a classification run is based
// on. It is computed once per run by [Detect] and discarded after
// producing a Label; [Classify] never consults anything outside it.
type Signals struct {
	// Exactly one of Linux, Windows, Mac is true on the platforms we
	// care about. All three false means an OS we don't recognize.
	Linux   bool `json:"linux"`
	Windows bool `json:"windows"`
	Mac     bool `json:"mac"`

	// Dapla is true when the managed-environment marker variable is
	// set. When it is, no network probes are issued.
	Dapla bool `json:"dapla"`

	// ProdZone is true when the production host answered a probe.
	ProdZone bool `json:"prod_zone"`

	// AdmZone is true when the administrative host answered a probe.
	// Only probed when neither ProdZone nor Dapla is set.
	AdmZone bool `json:"adm_zone"`

	// Citrix is true when the session-name variable carries the Citrix
	// marker substring. Only meaningful on Windows.
	Citrix bool `json:"citrix"`
}

func (s Signals) String() string {
	return fmt.Sprintf(
		"linux=%t windows=%t mac=%t dapla=%t prod_zone=%t adm_zone=%t citrix=%t",
		s.Linux, s.Windows, s.Mac, s.Dapla, s.ProdZone, s.AdmZone, s.Citrix)
}

// Classify maps a signal snapshot to a platform label. First match
// wins: prod zone outranks the Dapla marker, which outranks the adm
// zone. A prod-zone machine with an unrecognized OS deliberately falls
// through the table (a Mac answering the prod probe is not a platform
// we publish configuration for) and ends at Unknown.
func Classify(signals Signals) Label {
	if signals.ProdZone {
		if signals.Linux {
			return ProdLinux
		}
		if signals.Windows {
			if signals.Citrix {
				return ProdWindowsCitrix
			}
			return ProdWindowsVDI
		}
	}
	if signals.Dapla {
		return Dapla
	}
	if signals.AdmZone {
		if signals.Windows {
			return AdmWindows
		}
		if signals.Mac {
			return AdmMac
		}
	}
	return Unknown
}

// Supported reports whether a reference configuration is published for
// the label. This is a manifest lookup, not a property of the
// classifier: a label can be perfectly classifiable and still
// unsupported until someone publishes a config for it.
func Supported(label Label) bool {
	entry, ok := Default().Platforms[label]
	return ok && entry.Supported
}
