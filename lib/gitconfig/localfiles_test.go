// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocalFiles(t *testing.T, ignore, attributes string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(ignore), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitattributes"), []byte(attributes), 0o644))
	return dir
}

func TestValidateLocalFiles_RecommendedContentPasses(t *testing.T) {
	t.Parallel()

	dir := writeLocalFiles(t, RecommendedGitignore(), RecommendedGitattributes())

	ok, err := ValidateLocalFiles(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateLocalFiles_SupersetPasses(t *testing.T) {
	t.Parallel()

	dir := writeLocalFiles(t,
		"# project specific\nnode_modules/\n"+RecommendedGitignore(),
		RecommendedGitattributes()+"*.bin binary\n")

	ok, err := ValidateLocalFiles(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateLocalFiles_MissingRuleFails(t *testing.T) {
	t.Parallel()

	dir := writeLocalFiles(t, "node_modules/\n", RecommendedGitattributes())

	ok, err := ValidateLocalFiles(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateLocalFiles_CommentsIgnoredOnBothSides(t *testing.T) {
	t.Parallel()

	// Strip comments from the local copies; the recommended files'
	// comment headers must not be demanded of local files.
	dir := writeLocalFiles(t,
		stripComments(RecommendedGitignore()),
		stripComments(RecommendedGitattributes()))

	ok, err := ValidateLocalFiles(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func stripComments(text string) string {
	var out string
	for _, line := range ruleLines(text) {
		out += line + "\n"
	}
	return out
}

func TestValidateLocalFiles_MissingGitignore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitattributes"),
		[]byte(RecommendedGitattributes()), 0o644))

	_, err := ValidateLocalFiles(dir)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestValidateLocalFiles_MissingGitattributes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"),
		[]byte(RecommendedGitignore()), 0o644))

	_, err := ValidateLocalFiles(dir)
	assert.ErrorIs(t, err, ErrMissingConfig)
}
