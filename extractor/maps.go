package extractor

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// Maps holds the four original→copy correspondence maps spec.md §3/§4.3
// describes: one atom/bond pair for the aglycone copy, one atom/bond pair
// for the sugars copy. Callers may supply their own (e.g. pre-sized for a
// batch of calls); if omitted, CopyAndExtract allocates one.
type Maps struct {
	AglyconeAtoms map[molgraph.AtomHandle]molgraph.AtomHandle
	AglyconeBonds map[molgraph.BondHandle]molgraph.BondHandle
	SugarsAtoms   map[molgraph.AtomHandle]molgraph.AtomHandle
	SugarsBonds   map[molgraph.BondHandle]molgraph.BondHandle
}

// NewMaps allocates an empty Maps value.
func NewMaps() *Maps {
	return &Maps{
		AglyconeAtoms: make(map[molgraph.AtomHandle]molgraph.AtomHandle),
		AglyconeBonds: make(map[molgraph.BondHandle]molgraph.BondHandle),
		SugarsAtoms:   make(map[molgraph.AtomHandle]molgraph.AtomHandle),
		SugarsBonds:   make(map[molgraph.BondHandle]molgraph.BondHandle),
	}
}

// pruneAtoms removes every entry of m whose value is no longer contained
// in copy, per spec.md §4.3 step 9 ("map clean-up").
func pruneAtoms(m map[molgraph.AtomHandle]molgraph.AtomHandle, copy *molgraph.Molecule) {
	for orig, copyH := range m {
		if !copy.Contains(copyH) {
			delete(m, orig)
		}
	}
}

func pruneBonds(m map[molgraph.BondHandle]molgraph.BondHandle, copy *molgraph.Molecule) {
	for orig, copyH := range m {
		if !copy.ContainsBond(copyH) {
			delete(m, orig)
		}
	}
}

// AtomIndicesOfGroup answers the indices (as original-molecule handles)
// of atoms in mol whose mapped image is present in group, per spec.md
// §4.3's index/map retrieval helpers. Atoms in group that are not in the
// map (R-markers, freshly introduced atoms) are ignored.
func AtomIndicesOfGroup(mol *molgraph.Molecule, group *molgraph.Molecule, origToCopy map[molgraph.AtomHandle]molgraph.AtomHandle) []int {
	var out []int
	for _, a := range mol.Atoms() {
		copyH, ok := origToCopy[a.Handle()]
		if !ok {
			continue
		}
		if group.Contains(copyH) {
			out = append(out, int(a.Handle()))
		}
	}
	return out
}

// BondIndicesOfGroup is the bond analogue of AtomIndicesOfGroup.
func BondIndicesOfGroup(mol *molgraph.Molecule, group *molgraph.Molecule, origToCopy map[molgraph.BondHandle]molgraph.BondHandle) []int {
	var out []int
	for _, b := range mol.Bonds() {
		copyH, ok := origToCopy[b.Handle()]
		if !ok {
			continue
		}
		if group.ContainsBond(copyH) {
			out = append(out, int(b.Handle()))
		}
	}
	return out
}

// GroupIndicesForAllAtoms answers an integer label per atom in mol: 0 for
// the aglycone, i>=1 for the i-th sugar fragment (1-indexed against
// fragments[1:]), or -1 for an atom assigned to neither. Per spec.md
// §4.3, a connecting heteroatom duplicated in both sides is assigned to
// whichever side's map contains it first, aglycone taking priority.
func GroupIndicesForAllAtoms(mol *molgraph.Molecule, fragments []*molgraph.Molecule, aglyconeMap, sugarsMap map[molgraph.AtomHandle]molgraph.AtomHandle) []int {
	labels := make([]int, mol.AtomCount())
	for i := range labels {
		labels[i] = -1
	}

	if len(fragments) == 0 {
		return labels
	}

	aglycone := fragments[0]
	for _, a := range mol.Atoms() {
		idx := int(a.Handle())
		if idx >= len(labels) {
			continue
		}
		if copyH, ok := aglyconeMap[a.Handle()]; ok && aglycone.Contains(copyH) {
			labels[idx] = 0
			continue
		}
		if copyH, ok := sugarsMap[a.Handle()]; ok {
			for i, frag := range fragments[1:] {
				if frag.Contains(copyH) {
					labels[idx] = i + 1
					break
				}
			}
		}
	}
	return labels
}
