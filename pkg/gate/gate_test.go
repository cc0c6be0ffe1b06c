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

package gate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/version-gate/pkg/releases"
	"github.com/NVIDIA/version-gate/pkg/version"
)

// mockServer models a client bound to a versioned server.
type mockServer struct {
	version any
}

func (m *mockServer) ServerVersion() any {
	return m.version
}

// bareServer exposes no version capability at all.
type bareServer struct{}

func testReleases(t *testing.T) releases.Map {
	t.Helper()
	m, err := releases.FromStrings(map[string]string{"0.5.1": "2022R1"})
	require.NoError(t, err)
	return m
}

func TestNewNormalizesRequired(t *testing.T) {
	s, err := New("upload", "0.5")
	require.NoError(t, err)
	assert.Equal(t, version.NewVersion(0, 5, 0), s.Required())
	assert.Equal(t, "upload", s.Operation())

	s, err = New("upload", [3]int{0, 5, 1})
	require.NoError(t, err)
	assert.Equal(t, version.NewVersion(0, 5, 1), s.Required())
}

func TestNewFailsFastOnMalformedRequired(t *testing.T) {
	// Declaration fails before any invocation happens.
	tests := []struct {
		name     string
		required any
	}{
		{name: "non numeric string", required: "a.b.c"},
		{name: "too many components", required: "1.2.3.4"},
		{name: "short tuple", required: []int{1, 2}},
		{name: "negative component", required: []int{1, -2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("upload", tt.required)
			require.Error(t, err)
			assert.True(t, version.IsInvalidFormat(err))
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew("upload", "not-a-version") })
	assert.NotPanics(t, func() { MustNew("upload", "0.5.1") })
}

func TestCheckMeetsRequirement(t *testing.T) {
	s := MustNew("upload", "0.5.1", WithReleases(testReleases(t)))

	// Exact match and newer versions both pass.
	assert.NoError(t, s.Check(&mockServer{version: "0.5.1"}))
	assert.NoError(t, s.Check(&mockServer{version: "0.5.5"}))
	assert.NoError(t, s.Check(&mockServer{version: "1.0.0"}))
	assert.NoError(t, s.Check(&mockServer{version: [3]int{0, 5, 1}}))
}

func TestCheckDeniesOutdatedWithReleaseLabel(t *testing.T) {
	s := MustNew("upload", "0.5.1", WithReleases(testReleases(t)))

	err := s.Check(&mockServer{version: "0.4.5"})
	require.Error(t, err)
	assert.True(t, IsVersionUnsupported(err))
	assert.Contains(t, err.Error(), "upload")
	assert.Contains(t, err.Error(), "2022R1")
	assert.NotContains(t, err.Error(), "0.5.1")
}

func TestCheckDeniesOutdatedWithoutReleaseMap(t *testing.T) {
	s := MustNew("refresh", []int{0, 1, 0})

	err := s.Check(&mockServer{version: []int{0, 0, 1}})
	require.Error(t, err)
	assert.True(t, IsVersionUnsupported(err))
	assert.Contains(t, err.Error(), "refresh")
	assert.Contains(t, err.Error(), "0.1.0")
}

func TestCheckLabelFallbackWhenVersionUnmapped(t *testing.T) {
	// The map has no entry for the required triple, so the raw version shows.
	rel, err := releases.FromStrings(map[string]string{"9.9.9": "2099R1"})
	require.NoError(t, err)
	s := MustNew("upload", "0.5.1", WithReleases(rel))

	gateErr := s.Check(&mockServer{version: "0.4.5"})
	require.Error(t, gateErr)
	assert.Contains(t, gateErr.Error(), "0.5.1")
}

func TestCheckMissingCapability(t *testing.T) {
	s := MustNew("upload", "0.5.1")

	err := s.Check(&bareServer{})
	require.Error(t, err)
	assert.True(t, IsMissingVersion(err))
	assert.False(t, IsVersionUnsupported(err))
	assert.Contains(t, err.Error(), "bareServer")
	assert.Contains(t, err.Error(), VersionCapability)
}

func TestCheckNilVersionIsMissing(t *testing.T) {
	s := MustNew("upload", "0.5.1")

	err := s.Check(&mockServer{version: nil})
	require.Error(t, err)
	assert.True(t, IsMissingVersion(err))
}

func TestCheckMalformedCurrentVersion(t *testing.T) {
	s := MustNew("upload", "0.5.1")

	err := s.Check(&mockServer{version: "oops"})
	require.Error(t, err)
	assert.True(t, version.IsInvalidFormat(err))
	assert.False(t, IsVersionUnsupported(err))
	assert.False(t, IsMissingVersion(err))
}

func TestDoPassesThroughResult(t *testing.T) {
	s := MustNew("upload", "0.5.1")
	srv := &mockServer{version: "0.5.5"}

	got, err := Do(s, srv, func() (string, error) { return "uploaded", nil })
	require.NoError(t, err)
	assert.Equal(t, "uploaded", got)
}

func TestDoPassesThroughOperationError(t *testing.T) {
	s := MustNew("upload", "0.5.1")
	srv := &mockServer{version: "0.5.5"}
	opErr := errors.New("disk full")

	_, err := Do(s, srv, func() (string, error) { return "", opErr })
	require.Error(t, err)
	// The operation's own failure propagates unchanged.
	assert.ErrorIs(t, err, opErr)
	assert.False(t, IsVersionUnsupported(err))
}

func TestDoSkipsOperationWhenDenied(t *testing.T) {
	s := MustNew("upload", "0.5.1")
	srv := &mockServer{version: "0.4.5"}

	called := false
	_, err := Do(s, srv, func() (string, error) {
		called = true
		return "uploaded", nil
	})
	require.Error(t, err)
	assert.True(t, IsVersionUnsupported(err))
	assert.False(t, called, "wrapped operation must not run once the precondition fails")
}

func TestWrapReadsVersionPerCall(t *testing.T) {
	s := MustNew("refresh", "0.5.1")
	srv := &mockServer{version: "0.4.0"}

	guarded := Wrap(s, func(m *mockServer) (bool, error) { return true, nil })

	_, err := guarded(srv)
	require.Error(t, err)

	// The same wrapper observes a server upgrade.
	srv.version = "0.6.0"
	ok, err := guarded(srv)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGatesAreIndependent(t *testing.T) {
	fooGate := MustNew("foo", "0.2.1", WithReleases(testReleases(t)))
	barGate := MustNew("bar", [3]int{0, 1, 0})
	srv := &mockServer{version: "0.2.0"}

	// 0.2.0 satisfies bar's 0.1.0 but not foo's 0.2.1.
	assert.NoError(t, barGate.Check(srv))

	err := fooGate.Check(srv)
	require.Error(t, err)
	assert.True(t, IsVersionUnsupported(err))
	assert.True(t, strings.Contains(err.Error(), "foo"))
}
