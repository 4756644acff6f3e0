/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package version parses and compares Kubernetes-style version strings.
//
// It is used to validate cluster.kubernetesVersion in compute configs and
// to enforce the minimum Kubernetes version supported by the FaaS runtime.
// Provider build suffixes (e.g. "-eks-3025e55", "-gke.1337000") are
// preserved but ignored for comparisons.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// MinSupportedKubernetes is the oldest Kubernetes version the FaaS runtime
// components are validated against.
var MinSupportedKubernetes = MustParse("1.21")

// Version represents a version number with Major, Minor, and Patch
// components. Precision records how many components were present in the
// source string (1, 2, or 3) and bounds comparisons: a "1.28" version
// compares equal to any "1.28.x".
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision indicates how many components are significant (1, 2, or 3)
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras stores provider build metadata like "-eks-3025e55"
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the string representation of the Version respecting its
// precision. Extras are not included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return fmt.Sprintf("%d", v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse parses a version string into a Version.
// Supported formats: "1", "1.28", "1.28.3", "v1.28.3", "1.28.3-eks-3025e55".
// The "v" prefix is optional. Anything after a '-' or '+' that follows a
// digit is preserved in Extras.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// Extract build suffixes before splitting on dots, since suffixes like
	// "-gke.1337000" contain dots of their own.
	mainPart := s
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 {
			prevCh := s[i-1]
			if prevCh >= '0' && prevCh <= '9' {
				mainPart = s[:i]
				v.Extras = s[i:]
				break
			}
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests; for user input always
// use Parse and handle the error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// Comparison is performed up to the lower of the two precisions, so
// "1.28" compares equal to "1.28.7".
func (v Version) Compare(other Version) int {
	precision := v.Precision
	if other.Precision < precision {
		precision = other.Precision
	}

	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if precision == 1 {
		return 0
	}

	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if precision == 2 {
		return 0
	}

	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// AtLeast returns true if v is equal to or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}
