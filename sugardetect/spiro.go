package sugardetect

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// spiroAtoms answers every atom handle that is a spiro junction among the
// given rings: a member of exactly two rings whose atom sets intersect
// only at that one atom.
func spiroAtoms(rings []ring) map[molgraph.AtomHandle]bool {
	membership := make(map[molgraph.AtomHandle][]int)
	for i, r := range rings {
		for _, a := range r.atoms {
			membership[a] = append(membership[a], i)
		}
	}

	out := make(map[molgraph.AtomHandle]bool)
	for atom, ringIdxs := range membership {
		if len(ringIdxs) != 2 {
			continue
		}
		a, b := rings[ringIdxs[0]], rings[ringIdxs[1]]
		if sharesOnly(a, b, atom) {
			out[atom] = true
		}
	}
	return out
}

// sharesOnly answers whether rings a and b share exactly the one given
// atom and no other.
func sharesOnly(a, b ring, atom molgraph.AtomHandle) bool {
	shared := 0
	for _, h := range a.atoms {
		if b.hasAtom(h) {
			shared++
		}
	}
	return shared == 1 && a.hasAtom(atom) && b.hasAtom(atom)
}
