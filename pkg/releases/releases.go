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

// Package releases maps canonical versions to human-readable product
// release labels (e.g. 0.5.1 -> "2022R1"). Lookups are exact-triple;
// versions without an entry fall back to their dotted form.
package releases

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	vgerrors "github.com/NVIDIA/version-gate/pkg/errors"
	"github.com/NVIDIA/version-gate/pkg/version"
)

// Map relates canonical versions to product release labels.
// A nil or empty Map is valid; label resolution then always falls back to
// the raw dotted version. Maps are read-only after construction and safe
// for unsynchronized concurrent reads.
type Map map[version.Version]string

// FromStrings builds a Map from dotted-version keys. Keys are normalized,
// so "0.5", "0.5.0", and "v0.5.0" all address the same entry. Duplicate
// keys after normalization are rejected.
func FromStrings(entries map[string]string) (Map, error) {
	if len(entries) == 0 {
		return Map{}, nil
	}

	m := make(Map, len(entries))
	for key, label := range entries {
		v, err := version.ParseVersion(key)
		if err != nil {
			return nil, vgerrors.Wrap(vgerrors.ErrCodeInvalidFormat,
				fmt.Sprintf("invalid release map key %q", key), err)
		}
		if _, exists := m[v]; exists {
			return nil, vgerrors.New(vgerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate release map key %s", v))
		}
		m[v] = label
	}
	return m, nil
}

// Resolve returns the release label for an exact version match.
func (m Map) Resolve(v version.Version) (string, bool) {
	label, ok := m[v]
	return label, ok
}

// Label returns the release label for v, falling back to the dotted
// version string when no entry exists.
func (m Map) Label(v version.Version) string {
	if label, ok := m[v]; ok {
		return label
	}
	return v.String()
}

// LoadFile reads a release map from a YAML file of dotted-version keys:
//
//	"0.5.1": 2022R1
//	"0.5.9": 2022R2
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, vgerrors.Wrap(vgerrors.ErrCodeNotFound,
				fmt.Sprintf("release map file %q not found", path), err)
		}
		return nil, vgerrors.Wrap(vgerrors.ErrCodeInternal,
			fmt.Sprintf("failed to read release map file %q", path), err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, vgerrors.Wrap(vgerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse release map file %q", path), err)
	}

	return FromStrings(entries)
}
