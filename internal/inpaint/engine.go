package inpaint

import "runtime"

// Defaults used by DefaultOptions.
const (
	DefaultSampleWidth    = 10
	DefaultAlphaThreshold = 128
	DefaultExpandPadding  = 5
	DefaultFillPadding    = 3
)

// Options tunes the estimator and the fill engine.
type Options struct {
	// SampleWidth is the thickness of each border strip sampled around a
	// region, in pixels.
	SampleWidth int

	// QuantizeStep is the per-channel bucket size for colour voting.
	QuantizeStep int

	// AlphaThreshold excludes pixels with alpha below it from estimation.
	AlphaThreshold uint8

	// FillPadding grows each mask on every side before painting.
	FillPadding int

	// Workers bounds concurrent estimations in FillAuto.
	Workers int
}

// DefaultOptions returns the standard engine settings.
func DefaultOptions() Options {
	return Options{
		SampleWidth:    DefaultSampleWidth,
		QuantizeStep:   DefaultQuantizeStep,
		AlphaThreshold: DefaultAlphaThreshold,
		FillPadding:    DefaultFillPadding,
		Workers:        runtime.NumCPU(),
	}
}

// Engine runs estimation and fills with a fixed set of Options. An Engine
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine creates an engine. Non-positive SampleWidth, QuantizeStep and
// Workers and a zero AlphaThreshold take their defaults. FillPadding is used
// as given; negative values count as zero.
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.SampleWidth <= 0 {
		opts.SampleWidth = def.SampleWidth
	}
	if opts.QuantizeStep <= 0 {
		opts.QuantizeStep = def.QuantizeStep
	}
	if opts.AlphaThreshold == 0 {
		opts.AlphaThreshold = def.AlphaThreshold
	}
	if opts.FillPadding < 0 {
		opts.FillPadding = 0
	}
	if opts.Workers <= 0 {
		opts.Workers = def.Workers
	}
	return &Engine{opts: opts}
}

// Options returns the engine's effective settings.
func (e *Engine) Options() Options {
	return e.opts
}

var defaultEngine = NewEngine(DefaultOptions())
