package splitter

import (
	"github.com/Steinbeck-Lab/mortar-sugars/matcher"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

// saturateOpenValence closes an open valence at atom after a bond break,
// per spec.md §4.4 step 4: an R attachment if markByR, otherwise
// implicit_h_count incremented by the broken bond's order weight.
func saturateOpenValence(mol *molgraph.Molecule, atom molgraph.AtomHandle, markByR bool, weight int) {
	if markByR {
		for i := 0; i < weight; i++ {
			mol.AddAttachmentMarker(atom)
		}
		return
	}
	a := mol.Atom(atom)
	if a == nil {
		return
	}
	if a.ImplicitHCount == molgraph.UnsetH {
		a.ImplicitHCount = 0
	}
	a.ImplicitHCount += weight
}

// gateFor answers the size-gate predicate for the rule's kind, per spec.md
// §4.4 step 2: circular patterns gate on the Detector's preservation
// threshold, linear patterns gate on the linear-sugar candidate minimum.
func gateFor(r rule, cfg Config) func(*molgraph.Molecule) bool {
	if r.linear {
		minSize := cfg.Detector.LinearSugarCandidateMinSizeSetting()
		return func(comp *molgraph.Molecule) bool { return comp.AtomCount() < minSize }
	}
	return func(comp *molgraph.Molecule) bool { return cfg.Detector.IsTooSmallToPreserve(comp.AtomCount()) }
}

// applyRule repeatedly matches r.pattern against mol and breaks the first
// gate-passing match until none remain, per the Splitter's idempotence
// note: once every matching bond has been broken (or skipped by the size
// gate), a further pass finds nothing left to do.
func applyRule(mol *molgraph.Molecule, r rule, cfg Config) bool {
	changed := false
	for {
		matches := matcher.MatchUnique(r.pattern, mol)
		if len(matches) == 0 {
			break
		}
		progressed := false
		for _, m := range matches {
			if trySplit(mol, m, r, cfg) {
				changed = true
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}
	return changed
}

func trySplit(mol *molgraph.Molecule, m matcher.Match, r rule, cfg Config) bool {
	atomA := m.Atoms[r.splitA]
	atomB := m.Atoms[r.splitB]
	bond := mol.BondBetween(atomA, atomB)
	if bond == nil {
		return false
	}

	if cfg.LimitPostProcessingBySize {
		scratch, _, bondMap := molgraph.CloneAtomsAndBonds(mol)
		if copyBond, ok := bondMap[bond.Handle()]; ok {
			scratch.RemoveBond(copyBond)
		}
		gate := gateFor(r, cfg)
		for _, comp := range molgraph.PartitionIntoMolecules(scratch) {
			if gate(comp) {
				return false
			}
		}
	}

	order := bond.Order
	weight := bond.OrderWeight()

	if !r.duplicateOxygen {
		mol.RemoveBond(bond.Handle())
		saturateOpenValence(mol, atomA, cfg.MarkAttachPointsByR, weight)
		saturateOpenValence(mol, atomB, cfg.MarkAttachPointsByR, weight)
		return true
	}

	oxygenOrig, nonOxygen := atomA, atomB
	if mol.Atom(atomA).AtomicNumber != 8 {
		oxygenOrig, nonOxygen = atomB, atomA
	}

	newOxygen := molgraph.CopyAtom(mol.Atom(oxygenOrig), mol)
	newBond := mol.NewBond(nonOxygen, newOxygen.Handle(), order)
	newBond.IsAromatic = bond.IsAromatic
	newBond.Stereo = bond.Stereo
	newBond.Display = bond.Display
	newBond.IsInRing = bond.IsInRing
	newBond.ElectronCount = bond.ElectronCount

	for _, s := range mol.StereoElements() {
		if s.FocusKind == molgraph.StereoFocusAtom && s.FocusAtom == nonOxygen {
			s.UpdateCarriers(oxygenOrig, newOxygen.Handle())
		}
	}

	mol.RemoveBond(bond.Handle())
	saturateOpenValence(mol, oxygenOrig, cfg.MarkAttachPointsByR, weight)
	return true
}
