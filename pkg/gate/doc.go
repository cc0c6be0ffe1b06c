// Package gate enforces minimum-version preconditions on operations bound
// to versioned objects.
//
// # Overview
//
// A Spec attaches a required minimum version to a named operation. At call
// time the gate reads the bound object's current version through the
// Versioned capability, normalizes it, and either lets the operation run or
// fails with a descriptive error. An optional release map renders required
// versions as product release labels in denial messages.
//
// # Usage
//
// Declare a gate once, then guard calls with it:
//
//	rel, _ := releases.FromStrings(map[string]string{"0.5.1": "2022R1"})
//	uploadGate := gate.MustNew("upload", "0.5.1", gate.WithReleases(rel))
//
//	func (c *Client) Upload(data []byte) (string, error) {
//	    return gate.Do(uploadGate, c, func() (string, error) {
//	        return c.upload(data)
//	    })
//	}
//
// Or wrap an operation up front:
//
//	guarded := gate.Wrap(uploadGate, (*Client).Refresh)
//	err := guarded(client)
//
// The bound object satisfies the capability by exposing its version:
//
//	func (c *Client) ServerVersion() any { return c.serverVersion }
//
// # Failure Modes
//
// Check distinguishes three terminal failures, discriminated with
// IsMissingVersion, version.IsInvalidFormat, and IsVersionUnsupported:
//
//   - the object does not expose a readable version
//   - the exposed version cannot be normalized
//   - the current version is below the requirement
//
// A failure raised by the wrapped operation itself propagates unchanged;
// the gate never retries, swallows, or logs errors.
//
// # Concurrency
//
// Specs and release maps are immutable after construction. Concurrent
// callers may share a Spec across goroutines without coordination.
package gate
