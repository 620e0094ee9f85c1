package molgraph

// StereoElement records a single stereochemical annotation: a tetrahedral
// configuration centred on an atom, or a cis/trans configuration centred
// on a double bond. Grounded on cx-luo-go-chem's
// src/molecule/molecule_stereocenters.go (Stereocenter, Pyramid ordering)
// and molecule_cis_trans.go (CisTrans), generalized into one record type
// keyed by a FocusKind rather than two parallel bookkeeping structs, since
// spec.md §3 describes stereo elements uniformly ("focus atom-or-bond,
// ordered carriers, configuration").
type StereoElement struct {
	mol *Molecule

	FocusKind StereoFocusKind
	FocusAtom AtomHandle
	FocusBond BondHandle

	// Carriers lists the substituent atoms in the fixed order the
	// configuration is interpreted against: four neighbours for a
	// tetrahedral centre (cx-luo's Pyramid[4]int), two per side for a
	// double-bond geometry.
	Carriers []AtomHandle

	Configuration StereoConfiguration
}

// Map re-homes this stereo element onto a different molecule, translating
// every handle it references through atomMap/bondMap. Answers false
// (leaving the receiver unmodified) if any referenced handle is absent
// from the map; DeeperCopy and the other callers then leave the element
// out of the copy rather than carry a dangling stereo reference into it.
func (s *StereoElement) Map(atomMap map[AtomHandle]AtomHandle, bondMap map[BondHandle]BondHandle) (*StereoElement, bool) {
	out := &StereoElement{
		FocusKind:     s.FocusKind,
		Configuration: s.Configuration,
	}

	switch s.FocusKind {
	case StereoFocusAtom:
		mapped, ok := atomMap[s.FocusAtom]
		if !ok {
			return nil, false
		}
		out.FocusAtom = mapped
	case StereoFocusBond:
		mapped, ok := bondMap[s.FocusBond]
		if !ok {
			return nil, false
		}
		out.FocusBond = mapped
	}

	carriers := make([]AtomHandle, len(s.Carriers))
	for i, c := range s.Carriers {
		mapped, ok := atomMap[c]
		if !ok {
			return nil, false
		}
		carriers[i] = mapped
	}
	out.Carriers = carriers
	return out, true
}

// UpdateCarriers replaces a single carrier atom in place, answering
// whether the old carrier was found. Used when a splitter step swaps one
// substituent for another (the original bridging oxygen for its freshly
// duplicated copy) without disturbing the rest of the stereo record.
func (s *StereoElement) UpdateCarriers(old, replacement AtomHandle) bool {
	for i, c := range s.Carriers {
		if c == old {
			s.Carriers[i] = replacement
			return true
		}
	}
	return false
}
