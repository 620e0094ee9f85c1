package extractor

import (
	"github.com/Steinbeck-Lab/mortar-sugars/internal/logging"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
	"github.com/Steinbeck-Lab/mortar-sugars/splitter"
)

// runPostProcessing calls the Splitter on the sugars copy in the fixed
// order spec.md §4.3 step 8 requires: linear patterns first (if linear
// extraction was requested), then the circular O-glycosidic pattern (if
// circular extraction was requested).
func runPostProcessing(sugars *molgraph.Molecule, opts Options, logger logging.Logger) {
	cfg := splitter.Config{
		MarkAttachPointsByR:       opts.MarkAttachPointsByR,
		LimitPostProcessingBySize: opts.LimitPostProcessingBySize,
		Detector:                  opts.Detector,
	}

	if opts.ExtractLinear {
		if splitter.SplitEtherEsterAndPeroxidePostprocessing(sugars, cfg) {
			logger.Info("post-processing split ether/ester/peroxide bonds")
		}
	}
	if opts.ExtractCircular {
		if splitter.SplitOGlycosidicBonds(sugars, cfg) {
			logger.Info("post-processing split O-glycosidic bonds")
		}
	}
}
