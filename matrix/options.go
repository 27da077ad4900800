// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are resolved once at construction and stored on the Dense.
//     Clone and every result derived from a *Dense left operand inherit them.
//   - Numeric policy is explicit: validateNaNInf controls whether New/Set
//     reject NaN/±Inf, and whether Inverse reports ErrSingular instead of
//     returning non-finite cells.
//   - Logging is opt-in. Without WithLogger the package never writes anything.
package matrix

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf is off: IEEE-754 semantics flow through the
	// kernels, so a singular Inverse yields ±Inf/NaN cells instead of an error.
	DefaultValidateNaNInf = false

	// DefaultLaplaceWarnOrder is the largest order Det expands without a
	// warning. 10! cofactor terms is already ~3.6M recursive calls.
	DefaultLaplaceWarnOrder = 10
)

// minLaplaceWarnOrder: below this every expansion would warn.
const minLaplaceWarnOrder = 2

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil       = "matrix: WithLogger: logger must be non-nil"
	panicWarnOrderTooLow = "matrix: WithLaplaceWarnOrder: order must be >= 2"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf   bool        // DefaultValidateNaNInf
	laplaceWarnOrder int         // DefaultLaplaceWarnOrder
	logger           *zap.Logger // zap.NewNop() unless WithLogger
}

// WithValidateNaNInf enables strict finite-value validation.
//
// Behavior highlights:
//   - New/Set reject NaN and ±Inf with ErrNaNInf.
//   - Inverse reports ErrSingular on a zero determinant.
//
// Notes:
//   - Affects newly created matrices; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default IEEE-754 pass-through policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger attaches a zap logger. It panics on a nil logger.
//
// Log points:
//   - Det/Cofactor/Adjugate/Inverse: Warn when the order exceeds the
//     Laplace warning order.
//   - Inverse: Warn on a zero determinant (non-validating policy).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithLaplaceWarnOrder sets the order above which Laplace expansion is logged
// as expensive. It panics when order < 2.
func WithLaplaceWarnOrder(order int) Option {
	if order < minLaplaceWarnOrder {
		panic(panicWarnOrderTooLow)
	}

	return func(o *Options) { o.laplaceWarnOrder = order }
}

// NewMatrixOptions resolves a set of options for inspection.
// Most callers pass options straight to New/NewDense instead.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports the resolved numeric policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// LaplaceWarnOrder reports the resolved warning order.
func (o Options) LaplaceWarnOrder() int { return o.laplaceWarnOrder }

// withResolved replays an already resolved Options value.
func withResolved(r Options) Option {
	return func(o *Options) { *o = r }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf:   DefaultValidateNaNInf,
		laplaceWarnOrder: DefaultLaplaceWarnOrder,
		logger:           zap.NewNop(),
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins) and finalizes invariants.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order
		}
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
func finalizeOptions(o *Options) {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.laplaceWarnOrder < minLaplaceWarnOrder {
		o.laplaceWarnOrder = DefaultLaplaceWarnOrder
	}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
