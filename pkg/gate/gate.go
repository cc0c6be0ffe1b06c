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
	"fmt"

	vgerrors "github.com/NVIDIA/version-gate/pkg/errors"
	"github.com/NVIDIA/version-gate/pkg/releases"
	"github.com/NVIDIA/version-gate/pkg/version"
)

// VersionCapability names the accessor a bound object must expose.
// It appears in missing-capability error messages.
const VersionCapability = "ServerVersion"

// Versioned is the capability contract for gated objects: any object whose
// operations are version-gated must expose its current server version as a
// dotted string or integer triple. The gate only reads the version at call
// time; it never mutates the object.
type Versioned interface {
	ServerVersion() any
}

// Spec attaches a minimum-version requirement to a named operation.
// It is created once at declaration time, immutable thereafter, and safe
// for unsynchronized concurrent use.
type Spec struct {
	op       string
	required version.Version
	releases releases.Map
}

// Option configures a Spec at construction time.
type Option func(*Spec)

// WithReleases attaches a release-label map used to render the required
// version in denial messages. An empty map is valid; messages then show
// the raw dotted version.
func WithReleases(m releases.Map) Option {
	return func(s *Spec) {
		s.releases = m
	}
}

// New builds a gate Spec for the named operation. The required version is
// normalized immediately, so a malformed requirement fails here, at
// declaration time, independent of any call.
func New(op string, required any, opts ...Option) (*Spec, error) {
	min, err := version.Normalize(required)
	if err != nil {
		return nil, vgerrors.WrapWithContext(vgerrors.ErrCodeInvalidFormat,
			fmt.Sprintf("invalid required version for operation %q", op), err,
			map[string]any{"operation": op, "input": fmt.Sprintf("%v", required)})
	}

	s := &Spec{op: op, required: min}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNew builds a gate Spec and panics if the required version is
// malformed. Only use this for hardcoded requirements or in tests.
func MustNew(op string, required any, opts ...Option) *Spec {
	s, err := New(op, required, opts...)
	if err != nil {
		panic(fmt.Sprintf("gate.MustNew: %v", err))
	}
	return s
}

// Operation returns the gated operation's name.
func (s *Spec) Operation() string {
	return s.op
}

// Required returns the normalized minimum version.
func (s *Spec) Required() version.Version {
	return s.required
}

// RequiredLabel returns the human-readable form of the required version:
// the mapped release label when the release map has an exact entry for the
// required triple, the raw dotted version otherwise.
func (s *Spec) RequiredLabel() string {
	return s.releases.Label(s.required)
}

// Check enforces the gate's precondition against a bound object. It reads
// the object's current version, normalizes it, and compares it against the
// required minimum. The returned error is nil when the requirement is met;
// otherwise it is one of:
//
//   - MISSING_VERSION when obj does not expose the ServerVersion capability
//     or reports a nil version
//   - INVALID_FORMAT when the reported version cannot be normalized
//   - VERSION_UNSUPPORTED when the current version is below the requirement
func (s *Spec) Check(obj any) error {
	gateChecks.WithLabelValues(s.op).Inc()

	vo, ok := obj.(Versioned)
	if !ok {
		return s.missingVersionErr(obj)
	}

	raw := vo.ServerVersion()
	if raw == nil {
		return s.missingVersionErr(obj)
	}

	current, err := version.Normalize(raw)
	if err != nil {
		return vgerrors.WrapWithContext(vgerrors.ErrCodeInvalidFormat,
			fmt.Sprintf("invalid server version on %T", obj), err,
			map[string]any{"operation": s.op, "input": fmt.Sprintf("%v", raw)})
	}

	if !current.Meets(s.required) {
		gateDenials.WithLabelValues(s.op).Inc()
		return vgerrors.NewWithContext(vgerrors.ErrCodeVersionUnsupported,
			fmt.Sprintf("operation %q requires server version >= %s", s.op, s.RequiredLabel()),
			map[string]any{
				"operation": s.op,
				"required":  s.required.String(),
				"current":   current.String(),
			})
	}

	return nil
}

func (s *Spec) missingVersionErr(obj any) error {
	return vgerrors.NewWithContext(vgerrors.ErrCodeMissingVersion,
		fmt.Sprintf("type %T does not expose the %s capability required by operation %q",
			obj, VersionCapability, s.op),
		map[string]any{"operation": s.op, "object_type": fmt.Sprintf("%T", obj)})
}

// Do is the explicit invoke entry point: it checks the gate against the
// bound object and, only when the requirement is met, calls op. The
// operation's result and error pass through untouched, so a failure raised
// by op itself is indistinguishable from an ungated call.
func Do[R any](s *Spec, obj any, op func() (R, error)) (R, error) {
	if err := s.Check(obj); err != nil {
		var zero R
		return zero, err
	}
	return op()
}

// Wrap is the decorator form of Do: it guards an operation whose first
// argument is the bound object. The returned function re-reads the
// object's version on every call, so the same wrapper observes upgrades.
func Wrap[O any, R any](s *Spec, op func(O) (R, error)) func(O) (R, error) {
	return func(obj O) (R, error) {
		return Do(s, any(obj), func() (R, error) { return op(obj) })
	}
}

// IsMissingVersion reports whether err indicates an object without the
// version capability.
func IsMissingVersion(err error) bool {
	return vgerrors.HasCode(err, vgerrors.ErrCodeMissingVersion)
}

// IsVersionUnsupported reports whether err indicates a denied gate check.
func IsVersionUnsupported(err error) bool {
	return vgerrors.HasCode(err, vgerrors.ErrCodeVersionUnsupported)
}
