package extractor

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// saturate closes an open valence left by a broken bond on the given atom
// (already living in its final copy), per spec.md §4.3 step 5 / §4.4
// step 4: either an explicit "R" attachment marker, or an increase of
// implicit_h_count by amount.
func saturate(mol *molgraph.Molecule, atom molgraph.AtomHandle, markByR bool, amount int) {
	if markByR {
		for i := 0; i < amount; i++ {
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
	a.ImplicitHCount += amount
}

// saturateNewBoundaryHetero closes the open valence of a heteroatom that
// was just copied across the boundary and wired back to its original
// partner with a real bond of order brokenBondOrder. Resolves spec.md §9
// Open Question 3: when marking by R, the new copy gets both a single R
// attachment AND a residual implicit-H top-up of
// bond_order_sum(orig_hetero) - (1 + broken_bond_order) — the "-1"
// accounting for the R bond itself; when not marking by R, it gets only
// implicit H of bond_order_sum(orig_hetero) - broken_bond_order. Without
// this residual, an atom that had more than one neighbour before
// extraction (e.g. an ether oxygen, bond_order_sum 2) would come out
// under-saturated after only the reconstructed bond (and optional R) are
// accounted for.
func saturateNewBoundaryHetero(mol *molgraph.Molecule, atom molgraph.AtomHandle, markByR bool, origBondOrderSum, brokenBondOrder int) {
	if markByR {
		mol.AddAttachmentMarker(atom)
		residual := origBondOrderSum - (1 + brokenBondOrder)
		if residual > 0 {
			saturate(mol, atom, false, residual)
		}
		return
	}
	residual := origBondOrderSum - brokenBondOrder
	if residual > 0 {
		saturate(mol, atom, false, residual)
	}
}
