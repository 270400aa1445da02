// Package config provides fluent construction of a Design, following
// the WithX(...) chaining idiom used elsewhere for builders.
package config

import (
	"log/slog"

	"github.com/sarchlab/vsrtl/circuit"
)

// Builder configures a Design before it is handed to a caller.
// Zero value is a ready-to-use Builder that leaves each register's
// default reverse-stack depth in place, records no clock frequency,
// and leaves the Design's default logger (slog.Default()) in place.
type Builder struct {
	logger          *slog.Logger
	reverseStackLen int
	freqHz          float64
}

// NewBuilder returns a Builder with the package default logger.
func NewBuilder() Builder {
	return Builder{logger: slog.Default()}
}

// WithLogger sets the logger the built Design reports diagnostics to.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// WithReverseStackSize bounds how many clock edges every register
// created by circuit.NewRegister can reverse through; a component with
// its own reverse history, such as ops.RegisterFile, keeps its own
// bound. Zero (the default) leaves each register's own default in
// place.
func (b Builder) WithReverseStackSize(n int) Builder {
	b.reverseStackLen = n
	return b
}

// WithClockFrequency records the design's intended clock frequency in
// hertz. VSRTL settles combinationally and has no notion of wall-clock
// timing itself; this is metadata a caller's driver loop (or a VCD
// trace) can use to convert cycles to simulated time.
func (b Builder) WithClockFrequency(hz float64) Builder {
	b.freqHz = hz
	return b
}

// ClockFrequency returns the frequency most recently set by
// WithClockFrequency, or 0 if none was set.
func (b Builder) ClockFrequency() float64 {
	return b.freqHz
}

// Build finalizes the configuration into a ready-to-initialize Design
// wrapping root.
func (b Builder) Build(name string, root *circuit.Component) *circuit.Design {
	d := circuit.NewDesign(name, root)
	if b.logger != nil {
		d = d.WithLogger(b.logger)
	}
	if b.reverseStackLen > 0 {
		d = d.WithReverseStackSize(b.reverseStackLen)
	}
	return d
}
