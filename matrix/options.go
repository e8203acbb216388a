// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix values. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with the value: Clone, NewSameKind and Add results
//     inherit the receiver's options.
//
// Notes:
//   - The zero Options value equals the defaults, so a zero Dynamic or Fixed
//     behaves exactly like one built by a constructor without options.
package matrix

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// AddPolicy selects how Add decides whether two variants may be combined.
type AddPolicy uint8

const (
	// PolicyShape accepts any two variants whose shapes agree.
	// The result takes the receiver's variant.
	PolicyShape AddPolicy = iota

	// PolicyStrict additionally requires both operands to share the same
	// variant; for fixed matrices the shape is part of the variant.
	PolicyStrict
)

// String returns the policy name used in diagnostics.
func (p AddPolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}

	return "shape"
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Populate and Add. Off by default: NaN and ±Inf are ordinary float
	// values. Integer element types never trip it.
	DefaultValidateNaNInf = false

	// DefaultAddPolicy is the addition policy used when none is given.
	DefaultAddPolicy = PolicyShape
)

const panicNilLogger = "matrix: WithLogger: logger must be non-nil"

// discard is the diagnostics sink used when no logger was configured.
var discard = newDiscardLogger()

func newDiscardLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)

	return l
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool            // DefaultValidateNaNInf
	policy         AddPolicy       // DefaultAddPolicy
	logger         log.FieldLogger // nil means discard
}

// WithValidateNaNInf enables rejection of NaN and ±Inf values on Set,
// Populate and Add (ErrNaNInf).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value policy (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithShapePolicy makes Add accept any variants with equal shapes.
func WithShapePolicy() Option {
	return func(o *Options) { o.policy = PolicyShape }
}

// WithStrictPolicy makes Add reject operands of different variants
// with ErrIncompatibleVariant.
func WithStrictPolicy() Option {
	return func(o *Options) { o.policy = PolicyStrict }
}

// WithLogger routes diagnostics (rejected additions, failed population)
// to l at debug level. Panics if l is nil.
func WithLogger(l log.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the finite-value policy is active.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Policy reports the configured addition policy.
func (o Options) Policy() AddPolicy { return o.policy }

// sink returns the configured logger or the discard sink.
func (o Options) sink() log.FieldLogger {
	if o.logger == nil {
		return discard
	}

	return o.logger
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins). nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		policy:         DefaultAddPolicy,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
