// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		signals Signals
		want    Label
	}{
		{
			name:    "prod zone linux",
			signals: Signals{Linux: true, ProdZone: true},
			want:    ProdLinux,
		},
		{
			name:    "prod zone windows citrix",
			signals: Signals{Windows: true, ProdZone: true, Citrix: true},
			want:    ProdWindowsCitrix,
		},
		{
			name:    "prod zone windows without citrix marker",
			signals: Signals{Windows: true, ProdZone: true},
			want:    ProdWindowsVDI,
		},
		{
			name:    "dapla marker",
			signals: Signals{Linux: true, Dapla: true},
			want:    Dapla,
		},
		{
			name:    "adm zone windows",
			signals: Signals{Windows: true, AdmZone: true},
			want:    AdmWindows,
		},
		{
			name:    "adm zone mac",
			signals: Signals{Mac: true, AdmZone: true},
			want:    AdmMac,
		},
		{
			name:    "no zone, no marker",
			signals: Signals{Linux: true},
			want:    Unknown,
		},
		{
			name:    "zero signals",
			signals: Signals{},
			want:    Unknown,
		},
		{
			// A Mac answering the prod probe has no published config;
			// it falls through the prod branch to the fallback.
			name:    "prod zone mac falls through",
			signals: Signals{Mac: true, ProdZone: true},
			want:    Unknown,
		},
		{
			name:    "adm zone linux falls through",
			signals: Signals{Linux: true, AdmZone: true},
			want:    Unknown,
		},
		{
			// Prod zone outranks the Dapla marker when both are set.
			name:    "prod zone beats dapla marker",
			signals: Signals{Linux: true, Dapla: true, ProdZone: true},
			want:    ProdLinux,
		},
		{
			// Citrix marker is meaningless outside Windows.
			name:    "citrix marker ignored on linux",
			signals: Signals{Linux: true, ProdZone: true, Citrix: true},
			want:    ProdLinux,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(test.signals); got != test.want {
				t.Errorf("Classify(%+v) = %q, want %q", test.signals, got, test.want)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	t.Parallel()

	signals := Signals{Windows: true, AdmZone: true}
	first := Classify(signals)
	second := Classify(signals)
	if first != second {
		t.Errorf("Classify not idempotent: %q then %q", first, second)
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	supported := map[Label]bool{
		Dapla:             true,
		ProdLinux:         true,
		ProdWindowsCitrix: true,
		ProdWindowsVDI:    false,
		AdmWindows:        false,
		AdmMac:            false,
		Unknown:           false,
	}

	for label, want := range supported {
		if got := Supported(label); got != want {
			t.Errorf("Supported(%q) = %t, want %t", label, got, want)
		}
	}
}

func TestSupported_UnlistedLabel(t *testing.T) {
	t.Parallel()

	if Supported(Label("made-up")) {
		t.Error("Supported() = true for a label absent from the manifest")
	}
}
