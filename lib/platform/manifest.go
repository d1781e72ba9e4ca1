// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestData []byte

// Manifest holds the data half of platform classification: which hosts
// to probe, which environment variables mark a managed environment,
// and which labels have a published reference configuration.
type Manifest struct {
	Probes    ProbeTargets    `yaml:"probes"`
	Markers   Markers         `yaml:"markers"`
	Platforms map[Label]Entry `yaml:"platforms"`
}

// ProbeTargets names the hosts whose reachability distinguishes the
// production and administrative network zones.
type ProbeTargets struct {
	ProdHost string `yaml:"prod_host"`
	AdmHost  string `yaml:"adm_host"`
}

// Markers describes the environment variables consulted during signal
// gathering.
type Markers struct {
	// DaplaVar is the variable whose value marks a managed Dapla
	// environment when it equals one of DaplaValues.
	DaplaVar    string   `yaml:"dapla_var"`
	DaplaValues []string `yaml:"dapla_values"`

	// SessionVar is the terminal session-name variable; a value
	// containing CitrixSubstring indicates a Citrix session.
	SessionVar      string `yaml:"session_var"`
	CitrixSubstring string `yaml:"citrix_substring"`
}

// Entry is the per-label manifest record.
type Entry struct {
	// Supported is true when a reference configuration is published
	// for the label.
	Supported bool `yaml:"supported"`

	// Config is the reference configuration file name within the
	// recommended config set. Empty for unsupported labels.
	Config string `yaml:"config,omitempty"`
}

var (
	defaultOnce     sync.Once
	defaultManifest *Manifest
)

// Default returns the manifest embedded in the binary. The embedded
// data is validated at build time by the package tests; a parse
// failure here means a broken build, so it panics rather than
// returning an error every caller would have to ignore.
func Default() *Manifest {
	defaultOnce.Do(func() {
		manifest, err := ParseManifest(manifestData)
		if err != nil {
			panic(fmt.Sprintf("embedded platform manifest: %v", err))
		}
		defaultManifest = manifest
	})
	return defaultManifest
}

// ParseManifest parses manifest YAML and checks that every known label
// has an entry and every supported entry names a config file.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for _, label := range Labels() {
		entry, ok := manifest.Platforms[label]
		if !ok {
			return nil, fmt.Errorf("manifest missing platform %q", label)
		}
		if entry.Supported && entry.Config == "" {
			return nil, fmt.Errorf("manifest: supported platform %q has no config file", label)
		}
	}

	if manifest.Probes.ProdHost == "" || manifest.Probes.AdmHost == "" {
		return nil, fmt.Errorf("manifest: both probe hosts are required")
	}

	return &manifest, nil
}

// ConfigName returns the reference configuration file name for the
// label, or "" when the label is unsupported.
func (m *Manifest) ConfigName(label Label) string {
	return m.Platforms[label].Config
}
