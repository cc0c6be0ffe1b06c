// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/version-gate/pkg/releases"
)

func writeTempYAML(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCollectTargets(t *testing.T) {
	manifest := writeTempYAML(t, "versions.yaml", "api: 0.5.9\nworker: 0.4.5\n")

	targets, err := collectTargets([]string{"1.0.0"}, manifest)
	require.NoError(t, err)
	require.Len(t, targets, 3)

	// Direct --current values come first, manifest entries sorted by name.
	assert.Equal(t, checkTarget{Version: "1.0.0"}, targets[0])
	assert.Equal(t, checkTarget{Component: "api", Version: "0.5.9"}, targets[1])
	assert.Equal(t, checkTarget{Component: "worker", Version: "0.4.5"}, targets[2])
}

func TestCollectTargetsMissingManifest(t *testing.T) {
	_, err := collectTargets(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCheckOne(t *testing.T) {
	rel, err := releases.FromStrings(map[string]string{"0.5.1": "2022R1"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		target    checkTarget
		required  string
		wantMet   bool
		wantInErr string
	}{
		{
			name:     "requirement met",
			target:   checkTarget{Version: "0.5.5"},
			required: "0.5.1",
			wantMet:  true,
		},
		{
			name:     "exact match met",
			target:   checkTarget{Version: "0.5.1"},
			required: "0.5.1",
			wantMet:  true,
		},
		{
			name:      "requirement unmet uses release label",
			target:    checkTarget{Component: "api", Version: "0.4.5"},
			required:  "0.5.1",
			wantMet:   false,
			wantInErr: "2022R1",
		},
		{
			name:      "malformed current version",
			target:    checkTarget{Version: "a.b.c"},
			required:  "0.5.1",
			wantMet:   false,
			wantInErr: "INVALID_FORMAT",
		},
		{
			name:      "malformed required version",
			target:    checkTarget{Version: "0.5.5"},
			required:  "1.2.3.4",
			wantMet:   false,
			wantInErr: "INVALID_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := checkOne(tt.target, tt.required, rel)
			assert.Equal(t, tt.wantMet, res.Met)
			if tt.wantInErr != "" {
				assert.Contains(t, res.Error, tt.wantInErr)
			} else {
				assert.Empty(t, res.Error)
			}
		})
	}
}

func TestCheckOneDenialNamesComponent(t *testing.T) {
	res := checkOne(checkTarget{Component: "worker", Version: "0.1.0"}, "0.5.1", releases.Map{})
	assert.False(t, res.Met)
	assert.Contains(t, res.Error, "worker")
	assert.Contains(t, res.Error, "0.5.1")
}

func TestCheckCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := checkCmd()
	cmd.Writer = &buf

	err := cmd.Run(context.Background(),
		[]string{"check", "--required", "0.5.1", "--current", "0.4.5", "--current", "0.5.9"})
	require.NoError(t, err)

	var report checkReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "0.5.1", report.Required)
	assert.Equal(t, 1, report.Unmet)
	require.Len(t, report.Results, 2)
	assert.False(t, report.Results[0].Met)
	assert.True(t, report.Results[1].Met)
}

func TestCheckCommandFailOnError(t *testing.T) {
	var buf bytes.Buffer
	cmd := checkCmd()
	cmd.Writer = &buf

	err := cmd.Run(context.Background(),
		[]string{"check", "--required", "0.5.1", "--current", "0.4.5", "--fail-on-error"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not met")
}

func TestCheckCommandWithManifestAndReleases(t *testing.T) {
	manifest := writeTempYAML(t, "versions.yaml", "api: 0.5.9\nworker: 0.4.5\n")
	relFile := writeTempYAML(t, "releases.yaml", "\"0.5.1\": 2022R1\n")

	var buf bytes.Buffer
	cmd := checkCmd()
	cmd.Writer = &buf

	err := cmd.Run(context.Background(),
		[]string{"check", "--required", "0.5.1",
			"--manifest", manifest, "--releases", relFile, "--format", "json"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "\"unmet\": 1")
	assert.Contains(t, out, "2022R1")
	assert.Contains(t, out, "worker")
}

func TestCheckCommandRequiresTargets(t *testing.T) {
	cmd := checkCmd()
	cmd.Writer = &bytes.Buffer{}

	err := cmd.Run(context.Background(), []string{"check", "--required", "0.5.1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to check")
}
