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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is the umbrella error for all normalization failures.
// Every specific parse error below wraps it, so callers can match the whole
// family with errors.Is(err, ErrInvalidFormat).
var ErrInvalidFormat = errors.New("invalid version format")

// Specific error types for version parsing failures.
var (
	ErrEmptyVersion      = fmt.Errorf("%w: version is empty", ErrInvalidFormat)
	ErrTooManyComponents = fmt.Errorf("%w: version has more than 3 components", ErrInvalidFormat)
	ErrNonNumeric        = fmt.Errorf("%w: version component is not numeric", ErrInvalidFormat)
	ErrNegativeComponent = fmt.Errorf("%w: version component cannot be negative", ErrInvalidFormat)
)

// Version represents a canonical semantic version number with Major, Minor,
// and Patch components. Versions are comparable value types: two Versions are
// equal iff all three components match, and ordering is lexicographic on
// (Major, Minor, Patch). Short inputs ("2", "2.1") are zero-padded during
// parsing, so a Version is always a full triple.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// NewVersion creates a new Version with the specified major, minor, and patch values.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// String returns the canonical "Major.Minor.Patch" representation.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a version string into a Version.
// Supported formats: "1", "1.2", "1.2.3", with an optional "v" prefix.
// Missing trailing components default to zero, so "2" parses as 2.0.0 and
// "2.1" as 2.1.0. Components must be non-negative integers; suffixes,
// pre-release tags, and build metadata are rejected.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	// Strip 'v' prefix if present
	s = strings.TrimPrefix(s, "v")

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooManyComponents, s)
	}

	var nums [3]int
	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component in %q", ErrNonNumeric, s)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
		nums[i] = num
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// FromParts builds a Version from an integer triple.
// Exactly three non-negative components are required; anything else fails
// with a format error.
func FromParts(parts []int) (Version, error) {
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidFormat, len(parts))
	}
	for _, num := range parts {
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// Normalize produces a canonical Version from any supported representation:
// a Version (returned as is), a dotted string, a [3]int, an []int of exactly
// three elements, or an []any whose elements are integers or numeric strings.
// Normalize is idempotent and has no side effects.
func Normalize(input any) (Version, error) {
	switch in := input.(type) {
	case Version:
		return in, nil
	case string:
		return ParseVersion(in)
	case [3]int:
		return FromParts(in[:])
	case []int:
		return FromParts(in)
	case []any:
		parts := make([]int, 0, len(in))
		for _, elem := range in {
			num, err := componentAsInt(elem)
			if err != nil {
				return Version{}, err
			}
			parts = append(parts, num)
		}
		return FromParts(parts)
	default:
		return Version{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, input)
	}
}

// componentAsInt converts a single tuple component to an integer.
func componentAsInt(elem any) (int, error) {
	switch c := elem.(type) {
	case int:
		return c, nil
	case int32:
		return int(c), nil
	case int64:
		return int(c), nil
	case uint:
		return int(c), nil
	case string:
		num, err := strconv.Atoi(c)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, c)
		}
		return num, nil
	default:
		return 0, fmt.Errorf("%w: unsupported component type %T", ErrNonNumeric, elem)
	}
}

// Compare returns an integer comparing two versions lexicographically on
// (Major, Minor, Patch): -1 if v < other, 0 if v == other, 1 if v > other.
// Components compare as integers, so 0.10.0 sorts after 0.9.0.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// Equals returns true if v exactly equals other (all components match).
func (v Version) Equals(other Version) bool {
	return v == other
}

// Less returns true if v is strictly older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Meets returns true if v satisfies the required minimum version,
// that is v >= required.
func (v Version) Meets(required Version) bool {
	return v.Compare(required) >= 0
}

// IsValid returns true if all components are non-negative.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0
}

// IsInvalidFormat reports whether err is any of this package's
// normalization failures.
func IsInvalidFormat(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidFormat)
}
