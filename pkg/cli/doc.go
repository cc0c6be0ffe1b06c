// Package cli implements the vgate command line interface.
//
// The CLI uses the urfave/cli/v3 framework and delegates to the library
// packages:
//
//   - check: evaluates current versions against a required minimum,
//     optionally reading a manifest of component versions and a release map
//   - normalize: prints the canonical major.minor.patch form of versions
//   - resolve: maps versions to product release labels
//
// Commands emit results to stdout in YAML or JSON; structured logs go to
// stderr.
package cli
