package extractor

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// rehomeStereo attempts to re-home every stereo element of src onto dst
// via atomMap/bondMap, adding it only when every referent (focus and all
// carriers) survives. Run once after boundary reconstruction settles both
// copies' maps, per spec.md §4.3's repeated "re-home stereo elements
// whose focus and carriers all survive on the receiving side" and
// property 5 of spec.md §8.
func rehomeStereo(src *molgraph.Molecule, dst *molgraph.Molecule, atomMap map[molgraph.AtomHandle]molgraph.AtomHandle, bondMap map[molgraph.BondHandle]molgraph.BondHandle) {
	for _, s := range src.StereoElements() {
		if mapped, ok := s.Map(atomMap, bondMap); ok {
			dst.AddStereoElement(mapped)
		}
	}
}
