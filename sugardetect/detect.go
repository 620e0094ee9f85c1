package sugardetect

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// RemoveCircularSugars mutates mol in place, removing every ring judged a
// circular-sugar candidate (subject to Settings), and answers whether
// anything was removed. Public contract of spec.md §4.2.
func RemoveCircularSugars(mol *molgraph.Molecule, settings Settings) bool {
	removedAny := false

	for {
		rings := perceiveRings(mol)
		spiros := spiroAtoms(rings)

		removedThisPass := false
		for _, r := range rings {
			if !isCircularSugarCandidate(mol, r) {
				continue
			}

			toRemove := circularSugarRingAtoms(mol, r)
			var spiroAtom molgraph.AtomHandle = molgraph.InvalidAtom
			for h := range toRemove {
				if spiros[h] {
					spiroAtom = h
					break
				}
			}
			if spiroAtom != molgraph.InvalidAtom {
				if !settings.DetectSpiroRingsAsCircularSugars() {
					continue
				}
				delete(toRemove, spiroAtom)
			}

			if settings.RemoveOnlyTerminalSugars() && !wouldStayConnectedIfRemoved(mol, toRemove) {
				continue
			}

			if spiroAtom != molgraph.InvalidAtom {
				mol.Atom(spiroAtom).SetSpiroMarker(true)
			}
			for h := range toRemove {
				mol.RemoveAtom(h)
			}
			removedThisPass = true
			removedAny = true
			break // ring/atom handles are now stale; re-perceive before continuing
		}

		if !removedThisPass {
			break
		}
	}

	return removedAny
}

// RemoveLinearSugars mutates mol in place, removing every acyclic polyol
// chain judged a linear-sugar candidate (subject to Settings), and
// answers whether anything was removed.
func RemoveLinearSugars(mol *molgraph.Molecule, settings Settings) bool {
	removedAny := false

	for {
		chains := linearSugarChains(mol, settings.LinearSugarCandidateMinSizeSetting())

		removedThisPass := false
		for _, chain := range chains {
			if settings.RemoveOnlyTerminalSugars() && !wouldStayConnectedIfRemoved(mol, chain) {
				continue
			}
			for h := range chain {
				mol.RemoveAtom(h)
			}
			removedThisPass = true
			removedAny = true
			break
		}

		if !removedThisPass {
			break
		}
	}

	return removedAny
}

// RemoveCircularAndLinearSugars runs both passes, circular first, and
// answers whether either removed anything.
func RemoveCircularAndLinearSugars(mol *molgraph.Molecule, settings Settings) bool {
	circular := RemoveCircularSugars(mol, settings)
	linear := RemoveLinearSugars(mol, settings)
	return circular || linear
}

// wouldStayConnectedIfRemoved answers whether mol, with the given atoms
// removed, would still be a single connected component — the "terminal
// sugar" test of spec.md glossary, evaluated on a scratch copy so mol
// itself is left untouched until the caller commits to the removal.
func wouldStayConnectedIfRemoved(mol *molgraph.Molecule, remove map[molgraph.AtomHandle]bool) bool {
	scratch, atomMap, _ := molgraph.DeeperCopy(mol)
	for h := range remove {
		if copyHandle, ok := atomMap[h]; ok {
			scratch.RemoveAtom(copyHandle)
		}
	}
	return molgraph.IsConnected(scratch)
}
