// Package version provides canonical semantic version parsing, normalization,
// and comparison.
//
// # Overview
//
// A Version is an immutable (Major, Minor, Patch) triple of non-negative
// integers. The package accepts two input representations and normalizes
// both to the same canonical triple:
//
//   - Dotted strings with one to three components: "2", "2.1", "2.1.3",
//     optionally prefixed with "v". Missing trailing components default to
//     zero, so "2.1" normalizes to 2.1.0.
//   - Integer triples: exactly three non-negative components, supplied as
//     [3]int, []int, or []any with integer or numeric-string elements.
//
// Ordering is lexicographic on (Major, Minor, Patch) with integer component
// comparison, so 0.10.0 sorts after 0.9.0.
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.ParseVersion("0.5.1")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 0.5.1
//
// Compare versions:
//
//	current, _ := version.ParseVersion("0.5.5")
//	required := version.NewVersion(0, 5, 1)
//	if current.Meets(required) {
//	    fmt.Println("Version requirement met")
//	}
//
// Normalize heterogeneous inputs:
//
//	a, _ := version.Normalize("1.2")
//	b, _ := version.Normalize([3]int{1, 2, 0})
//	// a == b
//
// # Error Handling
//
// All normalization failures wrap ErrInvalidFormat; the specific failure
// modes are:
//
//   - ErrEmptyVersion: input string is empty
//   - ErrTooManyComponents: more than 3 version components
//   - ErrNonNumeric: component contains non-numeric characters
//   - ErrNegativeComponent: component is a negative number
//
// Use errors.Is(err, version.ErrInvalidFormat) or version.IsInvalidFormat to
// match the whole family. For constant initialization, use MustParseVersion
// which panics on error:
//
//	var MinVersion = version.MustParseVersion("1.0.0")
package version
