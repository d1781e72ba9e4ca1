// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"embed"
	"fmt"

	"github.com/gitzone-tools/gitzone/lib/platform"
)

// recommendedFS holds the published reference configurations plus the
// recommended repository-local files. The same directory is what the
// apply command fetches fresh from the distribution repository; the
// embedded copy lets validation work offline.
//
//go:embed recommended
var recommendedFS embed.FS

// RecommendedDir is the path of the reference config directory within
// this repository, used when resolving a freshly cloned distribution
// checkout.
const RecommendedDir = "lib/gitconfig/recommended"

// Lookup returns the parsed reference configuration for label. Labels
// without a published reference (per the platform manifest) yield an
// error wrapping [ErrMissingConfig].
func Lookup(label platform.Label) (Config, error) {
	text, err := ReferenceText(label)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// ReferenceText returns the raw reference configuration for label.
func ReferenceText(label platform.Label) (string, error) {
	name := platform.Default().ConfigName(label)
	if name == "" {
		return "", fmt.Errorf("%w: no reference configuration for platform %q", ErrMissingConfig, label)
	}
	data, err := recommendedFS.ReadFile("recommended/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: recommended/%s", ErrMissingConfig, name)
	}
	return string(data), nil
}

// RecommendedGitattributes returns the raw recommended .gitattributes
// content, trailing whitespace trimmed by the caller if desired.
func RecommendedGitattributes() string {
	return mustAsset("recommended/gitattributes")
}

// RecommendedGitignore returns the raw recommended .gitignore content.
func RecommendedGitignore() string {
	return mustAsset("recommended/gitignore")
}

func mustAsset(name string) string {
	data, err := recommendedFS.ReadFile(name)
	if err != nil {
		// The assets are compiled into the binary; a miss is a broken
		// build, not a runtime condition.
		panic(fmt.Sprintf("embedded asset %s: %v", name, err))
	}
	return string(data)
}
