// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	text := `# global settings
[core]
	autocrlf = input
	eol = lf

; alternative comment style
[user]
	name = Ada Lovelace
	email = ada@example.com

[credential]
	helper = cache --timeout=28800
`
	config := Parse(text)

	assert.Equal(t, 3, config.Sections())

	value, ok := config.Get("core", "autocrlf")
	assert.True(t, ok)
	assert.Equal(t, "input", value)

	value, ok = config.Get("user", "name")
	assert.True(t, ok)
	assert.Equal(t, "Ada Lovelace", value)

	// Values keep their internal spaces.
	value, _ = config.Get("credential", "helper")
	assert.Equal(t, "cache --timeout=28800", value)

	_, ok = config.Get("missing", "key")
	assert.False(t, ok)
}

func TestParse_DuplicateKeyKeepsLastValue(t *testing.T) {
	t.Parallel()

	config := Parse("[core]\nautocrlf = true\nautocrlf = input\n")

	value, _ := config.Get("core", "autocrlf")
	assert.Equal(t, "input", value)
}

func TestParse_ReopenedSectionMerges(t *testing.T) {
	t.Parallel()

	config := Parse("[core]\neol = lf\n[pull]\nrebase = false\n[core]\nautocrlf = input\n")

	assert.Equal(t, 2, config.Sections())
	value, _ := config.Get("core", "eol")
	assert.Equal(t, "lf", value)
	value, _ = config.Get("core", "autocrlf")
	assert.Equal(t, "input", value)
}

func TestParse_IgnoresNoise(t *testing.T) {
	t.Parallel()

	config := Parse("stray = line\n\n# comment\n[core]\nnot-a-pair\nautocrlf = input\n")

	assert.Equal(t, 1, config.Sections())
	_, ok := config.Get("core", "not-a-pair")
	assert.False(t, ok)
	value, _ := config.Get("core", "autocrlf")
	assert.Equal(t, "input", value)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Parse("").Sections())
}
