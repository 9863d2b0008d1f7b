// SPDX-License-Identifier: MIT
// Package: zhot/diagram
//
// options.go — functional options for scene assembly.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs
//     (programmer error); assembly itself never panics.
//   • No hidden globals; everything flows through the resolved config.

package diagram

// Option customizes Assemble by mutating a config before assembly begins.
// Applying K options costs O(K) time, O(1) space.
type Option func(*config)

// config is the resolved, immutable-after-resolution assembly settings.
type config struct {
	diagnostic func(string)
}

// newConfig applies opts over the defaults. The default diagnostic is a
// no-op: the library core stays silent; processes decide where warnings go.
func newConfig(opts ...Option) config {
	cfg := config{diagnostic: func(string) {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDiagnostic routes non-fatal consistency warnings (point surplus)
// to fn instead of discarding them. Panics on nil to surface programmer
// error early.
func WithDiagnostic(fn func(msg string)) Option {
	if fn == nil {
		panic("diagram: WithDiagnostic(nil)")
	}
	return func(c *config) { c.diagnostic = fn }
}
