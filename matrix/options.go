// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and tolerance
// comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf is a per-instance flag of Dense, fixed at construction
//     and carried by Clone/Move/CopyFrom/MoveFrom. It is OFF by default:
//     plain arithmetic never inspects values for NaN/Inf.
//   - eps/relTol are consumed only by AllClose. Equal is always exact.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Update
	// and in the value-taking constructors (NewDenseFunc, NewDenseFromRows).
	DefaultValidateNaNInf = false

	// DefaultEpsilon is the absolute tolerance (atol) used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultRelTol is the relative tolerance (rtol) used by AllClose.
	DefaultRelTol = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "matrix: WithRelTol: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	eps            float64 // >= 0; DefaultEpsilon
	relTol         float64 // >= 0; DefaultRelTol
}

// WithValidateNaNInf enables finite-only enforcement for the constructed matrix.
// Set/Update then return ErrNaNInf instead of storing NaN or ±Inf, and the
// value-taking constructors reject non-finite input before returning.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-only enforcement (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEpsilon sets the absolute tolerance used by AllClose.
// Panics when eps is negative, NaN or Inf.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTol sets the relative tolerance used by AllClose.
// Panics when rtol is negative, NaN or Inf.
func WithRelTol(rtol float64) Option {
	if rtol < 0 || math.IsNaN(rtol) || math.IsInf(rtol, 0) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = rtol }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last writer wins. Pure; exposed so callers can inspect effective settings.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Epsilon reports the absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelTol reports the relative tolerance.
func (o Options) RelTol() float64 { return o.relTol }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
		relTol:         DefaultRelTol,
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
