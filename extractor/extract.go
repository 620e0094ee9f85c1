package extractor

import (
	"github.com/Steinbeck-Lab/mortar-sugars/internal/logging"
	"github.com/Steinbeck-Lab/mortar-sugars/internal/xerrors"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
	"github.com/Steinbeck-Lab/mortar-sugars/sugardetect"
)

// Result is the outcome of CopyAndExtract: the ordered fragment list of
// spec.md §4.3 plus any diagnostic warnings collected along the way,
// following spec.md §9's design note that turns the source's
// logger.error-then-continue pattern into an explicit, inspectable
// result rather than something only visible in log output.
type Result struct {
	Fragments []*molgraph.Molecule
	Warnings  []string
}

// CopyAndExtract is the Extractor's single public operation (spec.md
// §4.3). mol is never mutated. If maps is non-nil it is populated with the
// surviving correspondences; if maps is nil, a Maps is allocated and
// filled internally and is not part of the Result.
func CopyAndExtract(mol *molgraph.Molecule, opts Options, maps *Maps, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if mol == nil {
		return nil, xerrors.Wrap(xerrors.InvalidInput, "copy_and_extract: mol is nil")
	}
	if maps == nil {
		maps = NewMaps()
	}

	// Step 1: early exit.
	if mol.AtomCount() == 0 {
		return &Result{Fragments: []*molgraph.Molecule{mol}}, nil
	}

	// Step 2: clone the aglycone copy and run the Detector on it.
	aglycone, aglyconeAtoms, aglyconeBonds := molgraph.CloneAtomsAndBonds(mol)

	removedAny := false
	switch {
	case opts.ExtractCircular && opts.ExtractLinear:
		removedAny = sugardetect.RemoveCircularAndLinearSugars(aglycone, opts.Detector)
	case opts.ExtractCircular:
		removedAny = sugardetect.RemoveCircularSugars(aglycone, opts.Detector)
	case opts.ExtractLinear:
		removedAny = sugardetect.RemoveLinearSugars(aglycone, opts.Detector)
	}

	if !removedAny {
		rehomeStereo(mol, aglycone, aglyconeAtoms, aglyconeBonds)
		copyAtomMapInto(maps.AglyconeAtoms, aglyconeAtoms)
		copyBondMapInto(maps.AglyconeBonds, aglyconeBonds)
		return &Result{Fragments: []*molgraph.Molecule{aglycone}}, nil
	}

	// Step 2 (continued): clone the sugars copy from the untouched original.
	sugars, sugarsAtoms, sugarsBonds := molgraph.CloneAtomsAndBonds(mol)

	// Step 3: form the sugars copy from the complement of the aglycone copy.
	containsSpiroSugars := false
	for _, a := range mol.Atoms() {
		orig := a.Handle()
		aglyconeCopyH, inAglyconeMap := aglyconeAtoms[orig]
		var aglyconeAtom *molgraph.Atom
		if inAglyconeMap {
			aglyconeAtom = aglycone.Atom(aglyconeCopyH)
		}

		if aglyconeAtom != nil && aglyconeAtom.HasSpiroMarker() {
			if sugarsCopyH, ok := sugarsAtoms[orig]; ok {
				if sugarsAtom := sugars.Atom(sugarsCopyH); sugarsAtom != nil {
					sugarsAtom.SetSpiroMarker(true)
				}
			}
			containsSpiroSugars = true
			continue
		}

		if aglyconeAtom != nil {
			if sugarsCopyH, ok := sugarsAtoms[orig]; ok {
				sugars.RemoveAtom(sugarsCopyH)
			}
		}
	}

	warnings := reconstructBoundary(mol, aglycone, aglyconeAtoms, aglyconeBonds, sugars, sugarsAtoms, sugarsBonds, opts, logger)

	// Step 6: invariant audit.
	if len(warnings.brokenBonds) == 0 && aglycone.AtomCount() > 0 && molgraph.IsConnected(mol) && !containsSpiroSugars {
		logger.Info("no broken bonds found", logging.String("hint", "detector output may be inconsistent with extractor assumptions"))
	}

	// Step 7: spiro saturation.
	saturateSpiroAtoms(aglycone, opts.MarkAttachPointsByR)
	saturateSpiroAtoms(sugars, opts.MarkAttachPointsByR)

	// Stereo re-homing, against the now-settled maps.
	rehomeStereo(mol, aglycone, aglyconeAtoms, aglyconeBonds)
	rehomeStereo(mol, sugars, sugarsAtoms, sugarsBonds)

	// Step 8: optional post-processing.
	if opts.PostProcessSugars {
		runPostProcessing(sugars, opts, logger)
	}

	// Step 9: map clean-up.
	pruneAtoms(aglyconeAtoms, aglycone)
	pruneBonds(aglyconeBonds, aglycone)
	pruneAtoms(sugarsAtoms, sugars)
	pruneBonds(sugarsBonds, sugars)
	copyAtomMapInto(maps.AglyconeAtoms, aglyconeAtoms)
	copyBondMapInto(maps.AglyconeBonds, aglyconeBonds)
	copyAtomMapInto(maps.SugarsAtoms, sugarsAtoms)
	copyBondMapInto(maps.SugarsBonds, sugarsBonds)

	// Step 10: partition sugars.
	fragments := []*molgraph.Molecule{aglycone}
	if molgraph.IsConnected(sugars) {
		fragments = append(fragments, sugars)
	} else {
		for _, comp := range molgraph.PartitionIntoMolecules(sugars) {
			if comp.AtomCount() > 0 {
				fragments = append(fragments, comp)
			}
		}
	}

	return &Result{Fragments: fragments, Warnings: warnings.messages}, nil
}

func copyAtomMapInto(dst, src map[molgraph.AtomHandle]molgraph.AtomHandle) {
	for k, v := range src {
		dst[k] = v
	}
}

func copyBondMapInto(dst, src map[molgraph.BondHandle]molgraph.BondHandle) {
	for k, v := range src {
		dst[k] = v
	}
}
