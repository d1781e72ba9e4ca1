// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ValidateLocalFiles checks the .gitignore and .gitattributes of the
// repository at dir against the recommended versions. Both files must
// exist and contain every non-comment line of their recommended
// counterpart; extra lines are fine. A missing file is an error
// wrapping [ErrMissingConfig], not a mismatch.
func ValidateLocalFiles(dir string) (bool, error) {
	localIgnore, err := readRuleLines(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return false, err
	}
	localAttributes, err := readRuleLines(filepath.Join(dir, ".gitattributes"))
	if err != nil {
		return false, err
	}

	wantIgnore := ruleLines(RecommendedGitignore())
	wantAttributes := ruleLines(RecommendedGitattributes())

	return containsAll(localIgnore, wantIgnore) &&
		containsAll(localAttributes, wantAttributes), nil
}

// readRuleLines reads a file and returns its non-comment lines with
// trailing whitespace stripped.
func readRuleLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func ruleLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func containsAll(have, want []string) bool {
	for _, line := range want {
		if line == "" {
			continue
		}
		if !slices.Contains(have, line) {
			return false
		}
	}
	return true
}
