package molgraph

// DeeperCopy produces an independent copy of src — every atom, bond and
// stereo element duplicated rather than shared — along with the
// original→copy correspondence maps for atoms and bonds. Extraction and
// splitting both need these maps: they let the caller translate a set of
// "atoms/bonds to keep" computed against src into handles valid in the
// copy, then mutate the copy freely without disturbing src. Grounded on
// cx-luo-go-chem's src/molecule/molecule.go Clone method, generalized to
// also emit the correspondence maps spec.md §4.1 requires (cx-luo's Clone
// does not need them because it never rewrites the clone's boundary).
func DeeperCopy(src *Molecule) (dst *Molecule, atomMap map[AtomHandle]AtomHandle, bondMap map[BondHandle]BondHandle) {
	dst, atomMap, bondMap = CloneAtomsAndBonds(src)
	for _, s := range src.StereoElements() {
		if mapped, ok := s.Map(atomMap, bondMap); ok {
			dst.AddStereoElement(mapped)
		}
	}
	return dst, atomMap, bondMap
}

// CloneAtomsAndBonds duplicates every atom and bond of src but none of its
// stereo elements, answering the correspondence maps. Extractor's boundary
// reconstruction needs this finer-grained split: it mutates the atom/bond
// maps as it repairs the broken boundary, and only re-homes stereo
// elements once against the final, settled maps (see extractor's stereo
// rehoming pass) — re-homing them twice, once here and once there, would
// either duplicate entries or race against maps that are still changing.
func CloneAtomsAndBonds(src *Molecule) (dst *Molecule, atomMap map[AtomHandle]AtomHandle, bondMap map[BondHandle]BondHandle) {
	dst = NewMolecule(src.Name)
	atomMap = make(map[AtomHandle]AtomHandle, len(src.atoms))
	bondMap = make(map[BondHandle]BondHandle, len(src.bonds))

	for _, a := range src.Atoms() {
		copyAtom := dst.NewAtom(a.AtomicNumber)
		copyAtomFields(a, copyAtom)
		atomMap[a.handle] = copyAtom.handle
	}

	for _, b := range src.Bonds() {
		newBegin, okB := atomMap[b.Begin]
		newEnd, okE := atomMap[b.End]
		if !okB || !okE {
			continue
		}
		copyBond := dst.NewBond(newBegin, newEnd, b.Order)
		copyBondFields(b, copyBond)
		bondMap[b.handle] = copyBond.handle
	}

	return dst, atomMap, bondMap
}

// CopyAtom duplicates a single atom's intrinsic fields (everything but
// handle/parent/connectivity) into dst, answering the new atom. Exposed
// separately from DeeperCopy because the Extractor's boundary-repair step
// needs to copy lone atoms (e.g. a boundary heteroatom duplicated onto the
// other side) without cloning an entire molecule.
func CopyAtom(src *Atom, dst *Molecule) *Atom {
	out := dst.NewAtom(src.AtomicNumber)
	copyAtomFields(src, out)
	return out
}

func copyAtomFields(src, dst *Atom) {
	dst.IsPseudo = src.IsPseudo
	dst.PseudoSymbol = src.PseudoSymbol
	dst.AttachPointNum = src.AttachPointNum
	dst.FormalCharge = src.FormalCharge
	dst.ImplicitHCount = src.ImplicitHCount
	dst.IsAromatic = src.IsAromatic
	dst.Valence = src.Valence
	dst.AtomTypeName = src.AtomTypeName
	dst.Flags = src.Flags
	dst.SingleElectrons = src.SingleElectrons
	dst.LonePairCount = src.LonePairCount
	if src.Point2D != nil {
		p := *src.Point2D
		dst.Point2D = &p
	}
	if src.Point3D != nil {
		p := *src.Point3D
		dst.Point3D = &p
	}
	if len(src.Properties) > 0 {
		dst.Properties = make(map[string]interface{}, len(src.Properties))
		for k, v := range src.Properties {
			dst.Properties[k] = v
		}
	}
}

func copyBondFields(src, dst *Bond) {
	dst.IsAromatic = src.IsAromatic
	dst.Stereo = src.Stereo
	dst.Display = src.Display
	dst.IsInRing = src.IsInRing
	dst.ElectronCount = src.ElectronCount
	if len(src.Properties) > 0 {
		dst.Properties = make(map[string]interface{}, len(src.Properties))
		for k, v := range src.Properties {
			dst.Properties[k] = v
		}
	}
}
