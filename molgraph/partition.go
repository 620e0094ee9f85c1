package molgraph

// IsConnected answers whether every live atom in mol is reachable from
// every other live atom via bonds. An empty molecule is considered
// connected. Grounded on the "connectivity analyser" collaborator named
// in spec.md §6; implemented as a plain breadth-first walk over the
// BondsOf adjacency already exposed by Molecule, the same traversal shape
// cx-luo-go-chem's GetNeighbors-based walks use.
func IsConnected(mol *Molecule) bool {
	atoms := mol.Atoms()
	if len(atoms) <= 1 {
		return true
	}
	visited := bfsFrom(mol, atoms[0].handle)
	return len(visited) == len(atoms)
}

func bfsFrom(mol *Molecule, start AtomHandle) map[AtomHandle]bool {
	visited := map[AtomHandle]bool{start: true}
	queue := []AtomHandle{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range mol.ConnectedAtoms(cur) {
			if nbr == nil || visited[nbr.handle] {
				continue
			}
			visited[nbr.handle] = true
			queue = append(queue, nbr.handle)
		}
	}
	return visited
}

// PartitionIntoMolecules splits mol into its connected components,
// answering one *Molecule per component. Every atom/bond/stereo element
// of mol ends up in exactly one output molecule; the input is left
// untouched. The Extractor calls this to split a disconnected sugars copy
// into fragments, and the splitter's size gate calls it on a scratch copy
// to preview the components a bond break would produce.
func PartitionIntoMolecules(mol *Molecule) []*Molecule {
	atoms := mol.Atoms()
	seen := make(map[AtomHandle]bool, len(atoms))
	var components []map[AtomHandle]bool

	for _, a := range atoms {
		if seen[a.handle] {
			continue
		}
		comp := bfsFrom(mol, a.handle)
		for h := range comp {
			seen[h] = true
		}
		components = append(components, comp)
	}

	out := make([]*Molecule, 0, len(components))
	for _, comp := range components {
		out = append(out, extractComponent(mol, comp))
	}
	return out
}

// extractComponent builds a fresh Molecule containing exactly the atoms
// named in keep and the bonds/stereo elements wholly within them.
func extractComponent(mol *Molecule, keep map[AtomHandle]bool) *Molecule {
	dst := NewMolecule(mol.Name)
	atomMap := make(map[AtomHandle]AtomHandle, len(keep))
	bondMap := make(map[BondHandle]BondHandle)

	for _, a := range mol.Atoms() {
		if !keep[a.handle] {
			continue
		}
		copyAtom := CopyAtom(a, dst)
		atomMap[a.handle] = copyAtom.handle
	}

	for _, b := range mol.Bonds() {
		if !keep[b.Begin] || !keep[b.End] {
			continue
		}
		newBegin := atomMap[b.Begin]
		newEnd := atomMap[b.End]
		copyBond := dst.NewBond(newBegin, newEnd, b.Order)
		copyBondFields(b, copyBond)
		bondMap[b.handle] = copyBond.handle
	}

	for _, s := range mol.StereoElements() {
		if mapped, ok := s.Map(atomMap, bondMap); ok {
			dst.AddStereoElement(mapped)
		}
	}

	return dst
}
