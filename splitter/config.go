// Package splitter implements the Post-processing Splitter of spec.md
// §4.4: five substructure-driven bond-breaking routines run over an
// already-extracted sugar fragment to separate glycosidic, ester, ether
// and peroxide linkages that the Extractor's boundary reconstruction
// deliberately leaves alone (those bonds are not the aglycone/sugar
// boundary itself — they sit entirely within one side).
package splitter

import "github.com/Steinbeck-Lab/mortar-sugars/sugardetect"

// Config is the Splitter's per-call configuration, mirroring the relevant
// slice of extractor.Options (duplicated rather than imported to avoid a
// package cycle, since the Extractor calls the Splitter).
type Config struct {
	MarkAttachPointsByR       bool
	LimitPostProcessingBySize bool
	Detector                  sugardetect.Settings
}
