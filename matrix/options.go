// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy used by
// LU and Inverse. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options travel verbatim: callers such as cache.Solve forward ...Option
//     untouched to Inverse.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// MachineEpsilon is the float64 unit roundoff, math.Nextafter(1, 2) - 1.
	MachineEpsilon = 2.220446049250313e-16

	// DefaultEpsilon is the relative pivot tolerance. Unless WithEpsilon
	// overrides it, a pivot p of an n×n matrix A is treated as zero when
	// |p| <= n * DefaultEpsilon * max|a_ij|, which catches singular inputs
	// whose pivots degrade to rounding noise.
	DefaultEpsilon = MachineEpsilon

	// DefaultRelativeEpsilon selects the scale-aware threshold above.
	DefaultRelativeEpsilon = true

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on kernel inputs.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	relative       bool    // scale eps by n*max|a_ij|; DefaultRelativeEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the configured pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelativeEpsilon reports whether Epsilon is scaled by n*max|a_ij|.
func (o Options) RelativeEpsilon() bool { return o.relative }

// pivotTolerance returns the magnitude at or below which a pivot of an n×n
// matrix with largest absolute entry maxAbs counts as zero.
func (o Options) pivotTolerance(n int, maxAbs float64) float64 {
	if !o.relative {
		return o.eps
	}

	return float64(n) * o.eps * maxAbs
}

// ValidateNaNInf reports whether kernels reject non-finite input.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon replaces the default scale-aware threshold with an absolute
// pivot tolerance: |p| <= eps means singular. Panics when eps is negative,
// NaN or Inf.
//
// AI-Hints:
//   - WithEpsilon(0) rejects only exact zero pivots and will happily invert
//     matrices that are singular up to rounding.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.relative = false
	}
}

// WithValidateNaNInf enables rejection of NaN/Inf inputs (ErrNaNInf).
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-value scan on kernel inputs.
// Non-finite data then flows through the arithmetic unchecked.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last writer wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of the defaults.
// Nil setters are skipped so callers can forward optional values blindly.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		relative:       DefaultRelativeEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
