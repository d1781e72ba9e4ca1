// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"bufio"
	"strings"
)

// Config is a parsed Git configuration: section name to key/value
// pairs. It covers the subset of the gitconfig syntax the reference
// configurations use ([section] headers, key = value lines, and
// comments), which is all reconciliation needs.
type Config map[string]map[string]string

// Parse builds a Config from gitconfig text. Blank lines and lines
// starting with # or ; are ignored. Keys outside any section are
// dropped, and a duplicated key within a section keeps the last value,
// matching how git itself resolves single-valued lookups.
func Parse(text string) Config {
	config := make(Config)
	var current map[string]string

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' && line[len(line)-1] == ']' {
			section := strings.TrimSpace(line[1 : len(line)-1])
			if config[section] == nil {
				config[section] = make(map[string]string)
			}
			current = config[section]
			continue
		}

		if current == nil {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		current[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return config
}

// Get returns the value for section/key, and whether it is present.
func (c Config) Get(section, key string) (string, bool) {
	value, ok := c[section][key]
	return value, ok
}

// Sections returns the number of sections. Mostly useful in tests and
// log output.
func (c Config) Sections() int {
	return len(c)
}
