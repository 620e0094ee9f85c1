package sugardetect

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// linearSugarChains answers every maximal acyclic run of consecutive,
// singly-bonded, non-aromatic carbons in mol where every carbon carries a
// hydroxyl (an oxygen with no other heavy neighbour), with at least
// minSize carbons — a polyol chain, the linear-sugar
// template of spec.md §4.2 ("classifies acyclic carbon chains as
// candidate linear sugars with configurable minimum length").
func linearSugarChains(mol *molgraph.Molecule, minSize int) []map[molgraph.AtomHandle]bool {
	candidates := make(map[molgraph.AtomHandle]bool)
	for _, a := range mol.Atoms() {
		if a.AtomicNumber == 6 && !a.IsAromatic && !a.IsInRing() && hasHydroxylSubstituent(mol, a.Handle()) {
			candidates[a.Handle()] = true
		}
	}

	visited := make(map[molgraph.AtomHandle]bool)
	var chains []map[molgraph.AtomHandle]bool

	for start := range candidates {
		if visited[start] {
			continue
		}
		chain := map[molgraph.AtomHandle]bool{start: true}
		visited[start] = true
		queue := []molgraph.AtomHandle{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, b := range mol.BondsOf(cur) {
				if b.IsInRing || b.Order != molgraph.BondOrderSingle {
					continue
				}
				nbr := b.OtherEnd(cur)
				if visited[nbr] || !candidates[nbr] {
					continue
				}
				visited[nbr] = true
				chain[nbr] = true
				queue = append(queue, nbr)
			}
		}
		if len(chain) >= minSize {
			chains = append(chains, withHydroxylSubstituents(mol, chain))
		}
	}
	return chains
}

func hasHydroxylSubstituent(mol *molgraph.Molecule, h molgraph.AtomHandle) bool {
	for _, b := range mol.BondsOf(h) {
		nbr := mol.Atom(b.OtherEnd(h))
		if nbr != nil && !nbr.IsPseudo && nbr.AtomicNumber == 8 && mol.ConnectedBondsCount(nbr.Handle()) == 1 {
			return true
		}
	}
	return false
}

// withHydroxylSubstituents extends a carbon-chain atom set with the
// terminal hydroxyl oxygens hanging off it, mirroring
// circularSugarRingAtoms' treatment of the circular case.
func withHydroxylSubstituents(mol *molgraph.Molecule, chain map[molgraph.AtomHandle]bool) map[molgraph.AtomHandle]bool {
	out := make(map[molgraph.AtomHandle]bool, len(chain)*2)
	for h := range chain {
		out[h] = true
	}
	for h := range chain {
		for _, b := range mol.BondsOf(h) {
			nbr := mol.Atom(b.OtherEnd(h))
			if nbr != nil && !nbr.IsPseudo && nbr.AtomicNumber == 8 && mol.ConnectedBondsCount(nbr.Handle()) == 1 {
				out[nbr.Handle()] = true
			}
		}
	}
	return out
}
