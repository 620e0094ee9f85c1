// Package extractor implements the Aglycone/Sugar Extractor orchestration
// core of spec.md §4.3: the single large procedure that clones an input
// molecule, lets the Detector strip sugars from one copy, reconstructs a
// chemically valid boundary between the two halves, optionally
// post-processes the sugar side, and partitions the result into fragments.
package extractor

import "github.com/Steinbeck-Lab/mortar-sugars/sugardetect"

// Options is the Extractor's per-call configuration, per spec.md §4.3's
// inputs and §6's settings surface. Built via functional options matching
// the teacher's chained-construction idiom (see sugardetect.Settings'
// doc comment for the same rationale).
type Options struct {
	ExtractCircular            bool
	ExtractLinear              bool
	MarkAttachPointsByR        bool
	PostProcessSugars          bool
	LimitPostProcessingBySize  bool
	Detector                   sugardetect.Settings
}

// Option configures an Options value.
type Option func(*Options)

// WithExtractCircular enables the circular-sugar branch of the Detector.
func WithExtractCircular(enabled bool) Option {
	return func(o *Options) { o.ExtractCircular = enabled }
}

// WithExtractLinear enables the linear-sugar branch of the Detector.
func WithExtractLinear(enabled bool) Option {
	return func(o *Options) { o.ExtractLinear = enabled }
}

// WithMarkAttachPointsByR selects R-atom saturation over implicit-H
// saturation for every open valence the Extractor and Splitter create.
func WithMarkAttachPointsByR(enabled bool) Option {
	return func(o *Options) { o.MarkAttachPointsByR = enabled }
}

// WithPostProcessSugars enables the Splitter after extraction.
func WithPostProcessSugars(enabled bool) Option {
	return func(o *Options) { o.PostProcessSugars = enabled }
}

// WithLimitPostProcessingBySize enables the Splitter's size gate.
func WithLimitPostProcessingBySize(enabled bool) Option {
	return func(o *Options) { o.LimitPostProcessingBySize = enabled }
}

// WithDetectorSettings supplies the sugardetect.Settings the Extractor
// owns by composition, per spec.md §9's design note preferring
// composition over the source's subclassing relationship.
func WithDetectorSettings(settings sugardetect.Settings) Option {
	return func(o *Options) { o.Detector = settings }
}

// NewOptions builds an Options value from defaults overridden by opts.
func NewOptions(opts ...Option) Options {
	o := Options{
		ExtractCircular:           true,
		ExtractLinear:             false,
		MarkAttachPointsByR:       false,
		PostProcessSugars:         false,
		LimitPostProcessingBySize: true,
		Detector:                  sugardetect.NewSettings(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
