package sugardetect

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// isCircularSugarCandidate answers whether r looks like a pyranose/
// furanose ring template: a 5- or 6-membered, non-aromatic ring with
// exactly one ring oxygen and the rest ring carbons, where at least half
// of the ring carbons carry an exocyclic oxygen substituent (the
// hydroxyl/hydroxymethyl pattern carbohydrates are built from). This is
// the SMARTS-like ring template spec.md §4.2 delegates to "an underlying
// library"; implemented here as the hand-written ring-neighbourhood query
// spec.md §9 allows in place of a real SMARTS engine.
func isCircularSugarCandidate(mol *molgraph.Molecule, r ring) bool {
	if r.size() != 5 && r.size() != 6 {
		return false
	}

	oxygens, carbons := 0, 0
	for _, h := range r.atoms {
		a := mol.Atom(h)
		if a == nil || a.IsPseudo || a.IsAromatic {
			return false
		}
		switch a.AtomicNumber {
		case 8:
			oxygens++
		case 6:
			carbons++
		default:
			return false
		}
	}
	if oxygens != 1 || carbons != r.size()-1 {
		return false
	}

	exocyclicOxygenCarbons := 0
	for _, h := range r.atoms {
		a := mol.Atom(h)
		if a.AtomicNumber != 6 {
			continue
		}
		for _, b := range mol.BondsOf(h) {
			if b.IsInRing {
				continue
			}
			nbr := mol.Atom(b.OtherEnd(h))
			if nbr != nil && !nbr.IsPseudo && nbr.AtomicNumber == 8 {
				exocyclicOxygenCarbons++
				break
			}
		}
	}
	return exocyclicOxygenCarbons*2 >= carbons
}

// circularSugarRingAtoms answers the full atom set of a circular-sugar
// ring together with the exocyclic oxygens bonded directly to a ring
// carbon that have no other heavy neighbour (hydroxyls) — the atoms
// MORTAR's SugarRemovalUtility actually strips, not just the ring itself,
// so the aglycone is left with a clean open valence rather than a ring of
// bare carbons. An exocyclic hydroxymethyl carbon and its oxygen are not
// included; the Extractor's C6-like repair moves such a carbon to the
// sugar side.
func circularSugarRingAtoms(mol *molgraph.Molecule, r ring) map[molgraph.AtomHandle]bool {
	out := make(map[molgraph.AtomHandle]bool, r.size())
	for _, h := range r.atoms {
		out[h] = true
	}
	for _, h := range r.atoms {
		a := mol.Atom(h)
		if a.AtomicNumber != 6 {
			continue
		}
		for _, b := range mol.BondsOf(h) {
			if b.IsInRing {
				continue
			}
			nbr := mol.Atom(b.OtherEnd(h))
			if nbr == nil || nbr.IsPseudo || nbr.AtomicNumber != 8 {
				continue
			}
			if mol.ConnectedBondsCount(nbr.Handle()) == 1 {
				out[nbr.Handle()] = true
			}
		}
	}
	return out
}
