package extractor

import (
	"fmt"

	"github.com/Steinbeck-Lab/mortar-sugars/internal/logging"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

// boundaryReport accumulates the broken-bond handles reconstructBoundary
// visited (used for the "no broken bonds found" invariant audit) and any
// internal-inconsistency diagnostics, per spec.md §7's propagation policy:
// these are logged and collected, never turned into a hard error.
type boundaryReport struct {
	brokenBonds []molgraph.BondHandle
	messages    []string
}

func (r *boundaryReport) warn(logger logging.Logger, bond molgraph.BondHandle, msg string) {
	r.messages = append(r.messages, msg)
	logger.Error(msg, logging.Int("bond", int(bond)))
}

func bondBroken(b *molgraph.Bond, aglycone *molgraph.Molecule, aglyconeBonds map[molgraph.BondHandle]molgraph.BondHandle, sugars *molgraph.Molecule, sugarsBonds map[molgraph.BondHandle]molgraph.BondHandle) bool {
	if h, ok := aglyconeBonds[b.Handle()]; ok && aglycone.ContainsBond(h) {
		return false
	}
	if h, ok := sugarsBonds[b.Handle()]; ok && sugars.ContainsBond(h) {
		return false
	}
	return true
}

// reconstructBoundary is spec.md §4.3 steps 4 and 5: repair every bond that
// the Detector's removal left dangling, first trying the two special-cased
// carbon-carbon corrections, then falling back to general saturation for
// everything else (C-heteroatom, remaining C-C, hetero-heteroatom).
func reconstructBoundary(
	mol *molgraph.Molecule,
	aglycone *molgraph.Molecule, aglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle, aglyconeBonds map[molgraph.BondHandle]molgraph.BondHandle,
	sugars *molgraph.Molecule, sugarsAtoms map[molgraph.AtomHandle]molgraph.AtomHandle, sugarsBonds map[molgraph.BondHandle]molgraph.BondHandle,
	opts Options, logger logging.Logger,
) *boundaryReport {
	report := &boundaryReport{}
	handled := make(map[molgraph.BondHandle]bool)

	// Step 4: special C-C boundary corrections.
	for _, b := range mol.Bonds() {
		beginAtom := mol.Atom(b.Begin)
		endAtom := mol.Atom(b.End)
		if beginAtom.AtomicNumber != 6 || endAtom.AtomicNumber != 6 {
			continue
		}
		if !bondBroken(b, aglycone, aglyconeBonds, sugars, sugarsBonds) {
			continue
		}
		report.brokenBonds = append(report.brokenBonds, b.Handle())
		handled[b.Handle()] = true

		survivorOrig, survivorCopy, otherOrig, ok := boundarySurvivor(b, aglycone, aglyconeAtoms)
		if !ok {
			// Neither endpoint (or both) currently live in the aglycone
			// copy: nothing special to repair, general reconstruction below
			// handles it as an ordinary C-C break.
			handled[b.Handle()] = false
			continue
		}

		if tryC6Repair(mol, survivorOrig, survivorCopy, otherOrig, b, aglycone, aglyconeAtoms, sugars, sugarsAtoms, sugarsBonds) {
			continue
		}
		if tryCarboxyTransfer(mol, survivorOrig, survivorCopy, otherOrig, b, aglycone, aglyconeAtoms, sugars, sugarsAtoms, sugarsBonds) {
			continue
		}
		handled[b.Handle()] = false
	}

	// Step 5: general bond reconstruction for everything still broken.
	for _, b := range mol.Bonds() {
		if !bondBroken(b, aglycone, aglyconeBonds, sugars, sugarsBonds) {
			continue
		}
		if !handled[b.Handle()] {
			report.brokenBonds = append(report.brokenBonds, b.Handle())
		}
		if handled[b.Handle()] {
			continue
		}

		beginHetero := mol.Atom(b.Begin).AtomicNumber != 6
		endHetero := mol.Atom(b.End).AtomicNumber != 6

		if beginHetero != endHetero {
			reconstructHeteroCarbonBond(mol, b, beginHetero, aglycone, aglyconeAtoms, aglyconeBonds, sugars, sugarsAtoms, sugarsBonds, opts, report, logger)
		} else {
			reconstructUniformBond(mol, b, aglycone, aglyconeAtoms, sugars, sugarsAtoms, opts)
		}
	}

	return report
}

// boundarySurvivor answers which endpoint of b currently lives in the
// aglycone copy (the other having already been stripped by the Detector),
// along with the original handle of the side that did not survive. ok is
// false when the bond does not have exactly one such endpoint.
func boundarySurvivor(b *molgraph.Bond, aglycone *molgraph.Molecule, aglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle) (survivorOrig, survivorCopy, otherOrig molgraph.AtomHandle, ok bool) {
	beginCopy, beginOK := aglyconeAtoms[b.Begin]
	beginSurvives := beginOK && aglycone.Contains(beginCopy)
	endCopy, endOK := aglyconeAtoms[b.End]
	endSurvives := endOK && aglycone.Contains(endCopy)

	switch {
	case beginSurvives && !endSurvives:
		return b.Begin, beginCopy, b.End, true
	case endSurvives && !beginSurvives:
		return b.End, endCopy, b.Begin, true
	default:
		return molgraph.InvalidAtom, molgraph.InvalidAtom, molgraph.InvalidAtom, false
	}
}

func cloneBondFields(src, dst *molgraph.Bond) {
	dst.IsAromatic = src.IsAromatic
	dst.Stereo = src.Stereo
	dst.Display = src.Display
	dst.IsInRing = src.IsInRing
	dst.ElectronCount = src.ElectronCount
}

// tryC6Repair handles the exocyclic-carbon special case: a surviving
// aglycone carbon whose only remaining bond is to an oxygen (e.g. a former
// ring C6 hydroxymethyl carbon) is moved wholesale onto the sugars side and
// rewired to its original C-C partner there, rather than left behind as a
// saturated stub. Grounded on spec.md §4.3 step 4's "C6-like repair".
func tryC6Repair(
	mol *molgraph.Molecule, survivorOrig, survivorCopy, otherOrig molgraph.AtomHandle, b *molgraph.Bond,
	aglycone *molgraph.Molecule, aglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle,
	sugars *molgraph.Molecule, sugarsAtoms map[molgraph.AtomHandle]molgraph.AtomHandle, sugarsBonds map[molgraph.BondHandle]molgraph.BondHandle,
) bool {
	if aglycone.ConnectedBondsCount(survivorCopy) != 1 {
		return false
	}
	neighbours := aglycone.ConnectedAtoms(survivorCopy)
	if len(neighbours) != 1 || neighbours[0].AtomicNumber != 8 {
		return false
	}

	aglycone.RemoveAtom(survivorCopy)
	delete(aglyconeAtoms, survivorOrig)

	newAtom := molgraph.CopyAtom(mol.Atom(survivorOrig), sugars)
	sugarsAtoms[survivorOrig] = newAtom.Handle()

	if otherCopy, ok := sugarsAtoms[otherOrig]; ok && sugars.Contains(otherCopy) {
		newBond := sugars.NewBond(newAtom.Handle(), otherCopy, b.Order)
		cloneBondFields(b, newBond)
		sugarsBonds[b.Handle()] = newBond.Handle()
	}
	return true
}

// tryCarboxyTransfer handles a carboxylic-acid carbon left behind on the
// aglycone side with exactly its keto and hydroxyl oxygens: the whole
// carboxy group (carbon + keto oxygen, with their double bond) is moved to
// the sugars side and reconnected to its original C-C partner there; the
// hydroxyl oxygen is left in the aglycone copy with its bond to the
// departed carbon simply gone. Grounded on spec.md §4.3 step 4's "carboxy
// transfer".
func tryCarboxyTransfer(
	mol *molgraph.Molecule, survivorOrig, survivorCopy, otherOrig molgraph.AtomHandle, b *molgraph.Bond,
	aglycone *molgraph.Molecule, aglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle,
	sugars *molgraph.Molecule, sugarsAtoms map[molgraph.AtomHandle]molgraph.AtomHandle, sugarsBonds map[molgraph.BondHandle]molgraph.BondHandle,
) bool {
	if aglycone.ConnectedBondsCount(survivorCopy) != 2 {
		return false
	}

	ketoOrig, etherOrig := molgraph.InvalidAtom, molgraph.InvalidAtom
	for _, ob := range mol.BondsOf(survivorOrig) {
		if ob.Handle() == b.Handle() {
			continue
		}
		neighbourOrig := ob.OtherEnd(survivorOrig)
		neighbourAtom := mol.Atom(neighbourOrig)
		if neighbourAtom == nil || neighbourAtom.AtomicNumber != 8 {
			continue
		}
		switch ob.Order {
		case molgraph.BondOrderDouble:
			ketoOrig = neighbourOrig
		case molgraph.BondOrderSingle:
			etherOrig = neighbourOrig
		}
	}
	if ketoOrig == molgraph.InvalidAtom || etherOrig == molgraph.InvalidAtom {
		return false
	}

	newCarbon := molgraph.CopyAtom(mol.Atom(survivorOrig), sugars)
	newOxygen := molgraph.CopyAtom(mol.Atom(ketoOrig), sugars)
	sugarsAtoms[survivorOrig] = newCarbon.Handle()
	sugarsAtoms[ketoOrig] = newOxygen.Handle()

	if ketoBondOrig := mol.BondBetween(survivorOrig, ketoOrig); ketoBondOrig != nil {
		newKetoBond := sugars.NewBond(newCarbon.Handle(), newOxygen.Handle(), molgraph.BondOrderDouble)
		cloneBondFields(ketoBondOrig, newKetoBond)
		sugarsBonds[ketoBondOrig.Handle()] = newKetoBond.Handle()
	}

	if otherCopy, ok := sugarsAtoms[otherOrig]; ok && sugars.Contains(otherCopy) {
		newCCBond := sugars.NewBond(newCarbon.Handle(), otherCopy, b.Order)
		cloneBondFields(b, newCCBond)
		sugarsBonds[b.Handle()] = newCCBond.Handle()
	}

	if ketoCopyH, ok := aglyconeAtoms[ketoOrig]; ok && aglycone.Contains(ketoCopyH) {
		aglycone.RemoveAtom(ketoCopyH)
	}
	delete(aglyconeAtoms, ketoOrig)
	aglycone.RemoveAtom(survivorCopy)
	delete(aglyconeAtoms, survivorOrig)
	return true
}

// reconstructHeteroCarbonBond handles a broken bond between a carbon and a
// heteroatom: whichever side currently owns the heteroatom keeps it
// (saturated for the lost bond), and a fresh copy of the heteroatom is
// wired onto the other side's surviving carbon and saturated per
// saturateNewBoundaryHetero. Grounded on spec.md §4.3 step 5.
func reconstructHeteroCarbonBond(
	mol *molgraph.Molecule, b *molgraph.Bond, beginHetero bool,
	aglycone *molgraph.Molecule, aglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle, aglyconeBonds map[molgraph.BondHandle]molgraph.BondHandle,
	sugars *molgraph.Molecule, sugarsAtoms map[molgraph.AtomHandle]molgraph.AtomHandle, sugarsBonds map[molgraph.BondHandle]molgraph.BondHandle,
	opts Options, report *boundaryReport, logger logging.Logger,
) {
	heteroOrig, carbonOrig := b.Begin, b.End
	if !beginHetero {
		heteroOrig, carbonOrig = b.End, b.Begin
	}

	var ownerMol, targetMol *molgraph.Molecule
	var ownerAtoms, targetAtoms map[molgraph.AtomHandle]molgraph.AtomHandle
	var targetBonds map[molgraph.BondHandle]molgraph.BondHandle

	switch {
	case isLiveIn(aglycone, aglyconeAtoms, heteroOrig):
		ownerMol, ownerAtoms = aglycone, aglyconeAtoms
		targetMol, targetAtoms, targetBonds = sugars, sugarsAtoms, sugarsBonds
	case isLiveIn(sugars, sugarsAtoms, heteroOrig):
		ownerMol, ownerAtoms = sugars, sugarsAtoms
		targetMol, targetAtoms, targetBonds = aglycone, aglyconeAtoms, aglyconeBonds
	default:
		report.warn(logger, b.Handle(), fmt.Sprintf("heteroatom %d of broken bond %d is absent from both copies", heteroOrig, b.Handle()))
		return
	}

	carbonCopy, ok := targetAtoms[carbonOrig]
	if !ok || !targetMol.Contains(carbonCopy) {
		report.warn(logger, b.Handle(), fmt.Sprintf("carbon %d of broken bond %d is absent from the receiving side", carbonOrig, b.Handle()))
		return
	}

	newHetero := molgraph.CopyAtom(mol.Atom(heteroOrig), targetMol)
	targetAtoms[heteroOrig] = newHetero.Handle()

	newBond := targetMol.NewBond(newHetero.Handle(), carbonCopy, b.Order)
	cloneBondFields(b, newBond)
	targetBonds[b.Handle()] = newBond.Handle()

	saturateNewBoundaryHetero(targetMol, newHetero.Handle(), opts.MarkAttachPointsByR, mol.BondOrderSum(heteroOrig), b.OrderWeight())

	if ownerCopy, ok := ownerAtoms[heteroOrig]; ok && ownerMol.Contains(ownerCopy) {
		saturate(ownerMol, ownerCopy, opts.MarkAttachPointsByR, b.OrderWeight())
	}
}

func isLiveIn(mol *molgraph.Molecule, atoms map[molgraph.AtomHandle]molgraph.AtomHandle, orig molgraph.AtomHandle) bool {
	copyH, ok := atoms[orig]
	return ok && mol.Contains(copyH)
}

// reconstructUniformBond handles a broken C-C or hetero-hetero bond: each
// endpoint that survives on either side is simply saturated for the lost
// bond order, per spec.md §4.3 step 5.
func reconstructUniformBond(
	mol *molgraph.Molecule, b *molgraph.Bond,
	aglycone *molgraph.Molecule, aglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle,
	sugars *molgraph.Molecule, sugarsAtoms map[molgraph.AtomHandle]molgraph.AtomHandle,
	opts Options,
) {
	for _, orig := range [2]molgraph.AtomHandle{b.Begin, b.End} {
		if copyH, ok := aglyconeAtoms[orig]; ok && aglycone.Contains(copyH) {
			saturate(aglycone, copyH, opts.MarkAttachPointsByR, b.OrderWeight())
		}
		if copyH, ok := sugarsAtoms[orig]; ok && sugars.Contains(copyH) {
			saturate(sugars, copyH, opts.MarkAttachPointsByR, b.OrderWeight())
		}
	}
}

// saturateSpiroAtoms adds two single-bond attachment stubs to every atom
// carrying the sugar spiro marker in mol, per spec.md §4.3 step 7: each
// copy is missing exactly the two bonds that led into the ring living on
// the other copy.
func saturateSpiroAtoms(mol *molgraph.Molecule, markByR bool) {
	for _, a := range mol.Atoms() {
		if a.HasSpiroMarker() {
			saturate(mol, a.Handle(), markByR, 2)
		}
	}
}
