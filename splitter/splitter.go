package splitter

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// SplitOGlycosidicBonds breaks every O-glycosidic bond in mol (ring-carbon
// to non-ring bridging oxygen), duplicating the oxygen on the ring side.
// Mutates mol in place; answers whether anything was split.
func SplitOGlycosidicBonds(mol *molgraph.Molecule, cfg Config) bool {
	return applyRule(mol, oGlycosidicRule(), cfg)
}

// SplitEsters breaks every ester C–O bond on the acyl side, duplicating
// the oxygen on the acyl carbon.
func SplitEsters(mol *molgraph.Molecule, cfg Config) bool {
	return applyRule(mol, esterRule(), cfg)
}

// SplitEthersCrosslinking breaks ether bonds whose far carbon also bears a
// hydroxy group, without duplicating the bridging oxygen.
func SplitEthersCrosslinking(mol *molgraph.Molecule, cfg Config) bool {
	return applyRule(mol, crosslinkingEtherRule(), cfg)
}

// SplitEthers breaks every remaining plain ether bond, duplicating the
// oxygen on the first-carbon side. Run after SplitEsters and
// SplitEthersCrosslinking, since this pattern also matches theirs.
func SplitEthers(mol *molgraph.Molecule, cfg Config) bool {
	return applyRule(mol, etherRule(), cfg)
}

// SplitPeroxides breaks every peroxide O–O bond, without duplicating
// either oxygen.
func SplitPeroxides(mol *molgraph.Molecule, cfg Config) bool {
	return applyRule(mol, peroxideRule(), cfg)
}

// SplitEtherEsterAndPeroxidePostprocessing runs ester, cross-linking
// ether, plain ether and peroxide splitting in that fixed order, per
// spec.md §4.4: the plain-ether pattern is promiscuous and would
// otherwise match esters and cross-linking ethers first.
func SplitEtherEsterAndPeroxidePostprocessing(mol *molgraph.Molecule, cfg Config) bool {
	changed := false
	changed = SplitEsters(mol, cfg) || changed
	changed = SplitEthersCrosslinking(mol, cfg) || changed
	changed = SplitEthers(mol, cfg) || changed
	changed = SplitPeroxides(mol, cfg) || changed
	return changed
}
