// Copyright 2026 The Gitzone Authors
// SPDX-License-Identifier: Apache-2.0

package gitconfig

import (
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitzone-tools/gitzone/lib/platform"
)

func TestReconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		local     Config
		reference Config
		want      bool
	}{
		{
			name:      "reflexive without user section",
			local:     Config{"core": {"autocrlf": "true"}},
			reference: Config{"core": {"autocrlf": "true"}},
			want:      true,
		},
		{
			name: "reflexive with full user section",
			local: Config{
				"core": {"autocrlf": "input"},
				"user": {"name": "Ada Lovelace", "email": "ada@example.com"},
			},
			reference: Config{
				"core": {"autocrlf": "input"},
				"user": {"name": "Ada Lovelace", "email": "ada@example.com"},
			},
			want: true,
		},
		{
			name: "local superset tolerated",
			local: Config{
				"core":  {"autocrlf": "true"},
				"extra": {"foo": "bar"},
			},
			reference: Config{"core": {"autocrlf": "true"}},
			want:      true,
		},
		{
			name:      "value drift rejected",
			local:     Config{"core": {"autocrlf": "false"}},
			reference: Config{"core": {"autocrlf": "true"}},
			want:      false,
		},
		{
			name:      "missing key rejected",
			local:     Config{"core": {"eol": "lf"}},
			reference: Config{"core": {"autocrlf": "true", "eol": "lf"}},
			want:      false,
		},
		{
			name:      "missing section rejected",
			local:     Config{"pull": {"rebase": "false"}},
			reference: Config{"core": {"autocrlf": "true"}},
			want:      false,
		},
		{
			name:      "empty local fails non-empty reference",
			local:     Config{},
			reference: Config{"core": {"autocrlf": "true"}},
			want:      false,
		},
		{
			name:      "empty reference always satisfied",
			local:     Config{},
			reference: Config{},
			want:      true,
		},
		{
			name:      "user section missing email rejected",
			local:     Config{"user": {"name": "A B"}},
			reference: Config{},
			want:      false,
		},
		{
			name:      "user section missing name rejected",
			local:     Config{"user": {"email": "a@example.com"}},
			reference: Config{"core": {"autocrlf": "true"}},
			want:      false,
		},
		{
			name: "user identity compared by presence not value",
			local: Config{
				"core": {"autocrlf": "true"},
				"user": {"name": "Somebody Else", "email": "else@example.com"},
			},
			reference: Config{
				"core": {"autocrlf": "true"},
				"user": {"name": "Template Name", "email": "template@example.com"},
			},
			want: true,
		},
		{
			name:      "reference user identity requires local user section",
			local:     Config{"core": {"autocrlf": "true"}},
			reference: Config{"user": {"name": "x", "email": "y"}, "core": {"autocrlf": "true"}},
			want:      false,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, Reconcile(test.local, test.reference))
		})
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	local := Config{"core": {"autocrlf": "true"}, "user": {"name": "A", "email": "a@b"}}
	reference := Config{"core": {"autocrlf": "true", "eol": "lf"}}
	localCopy := cloneConfig(local)
	referenceCopy := cloneConfig(reference)

	Reconcile(local, reference)

	assert.Equal(t, localCopy, local)
	assert.Equal(t, referenceCopy, reference)
}

func cloneConfig(c Config) Config {
	clone := make(Config, len(c))
	for section, keys := range c {
		clone[section] = maps.Clone(keys)
	}
	return clone
}

func TestValidate_MatchingConfig(t *testing.T) {
	t.Parallel()

	text, err := ReferenceText(platform.Dapla)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gitconfig")
	local := text + "[user]\n\tname = Ada Lovelace\n\temail = ada@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(local), 0o644))

	result, err := Validate(path, platform.Dapla)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, ReasonMatch, result.Reason)
}

func TestValidate_Mismatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gitconfig")
	require.NoError(t, os.WriteFile(path, []byte("[core]\n\tautocrlf = false\n"), 0o644))

	result, err := Validate(path, platform.ProdLinux)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, ReasonMismatch, result.Reason)
}

func TestValidate_MissingLocalFile(t *testing.T) {
	t.Parallel()

	_, err := Validate(filepath.Join(t.TempDir(), "absent"), platform.Dapla)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestValidate_UnsupportedPlatform(t *testing.T) {
	t.Parallel()

	// Even a byte-identical copy of a published reference fails for an
	// unsupported label; the file is not even read.
	result, err := Validate(filepath.Join(t.TempDir(), "absent"), platform.AdmMac)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, ReasonUnsupported, result.Reason)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	config, err := Lookup(platform.ProdLinux)
	require.NoError(t, err)

	value, ok := config.Get("http", "sslVerify")
	assert.True(t, ok)
	assert.Equal(t, "false", value)
}

func TestLookup_Unpublished(t *testing.T) {
	t.Parallel()

	_, err := Lookup(platform.Unknown)
	assert.ErrorIs(t, err, ErrMissingConfig)
}
