// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"strings"
	"testing"
)

func TestDefault_EmbeddedManifestParses(t *testing.T) {
	t.Parallel()

	manifest := Default()

	if manifest.Probes.ProdHost == "" {
		t.Error("manifest has no prod probe host")
	}
	if manifest.Probes.AdmHost == "" {
		t.Error("manifest has no adm probe host")
	}
	if manifest.Markers.DaplaVar == "" {
		t.Error("manifest has no dapla marker variable")
	}
	for _, label := range Labels() {
		if _, ok := manifest.Platforms[label]; !ok {
			t.Errorf("manifest has no entry for %q", label)
		}
	}
}

func TestParseManifest_RejectsMissingLabel(t *testing.T) {
	t.Parallel()

	data := strings.Replace(string(manifestData), "adm-mac:", "adm-other:", 1)
	if _, err := ParseManifest([]byte(data)); err == nil {
		t.Error("ParseManifest accepted a manifest with a missing label")
	}
}

func TestParseManifest_RejectsSupportedWithoutConfig(t *testing.T) {
	t.Parallel()

	data := strings.Replace(string(manifestData),
		"    config: gitconfig-dapla\n", "", 1)
	if _, err := ParseManifest([]byte(data)); err == nil {
		t.Error("ParseManifest accepted a supported platform without a config file")
	}
}

func TestConfigName(t *testing.T) {
	t.Parallel()

	manifest := Default()

	if got := manifest.ConfigName(Dapla); got != "gitconfig-dapla" {
		t.Errorf("ConfigName(dapla) = %q, want gitconfig-dapla", got)
	}
	if got := manifest.ConfigName(Unknown); got != "" {
		t.Errorf("ConfigName(unknown) = %q, want empty", got)
	}
}
