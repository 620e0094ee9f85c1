package splitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
	"github.com/Steinbeck-Lab/mortar-sugars/sugardetect"
)

func noGateConfig() Config {
	return Config{
		LimitPostProcessingBySize: false,
		Detector:                  sugardetect.NewSettings(),
	}
}

// findOtherOxygen answers the oxygen (other than exclude) bonded to anchor.
func findOtherOxygen(mol *molgraph.Molecule, anchor, exclude molgraph.AtomHandle) (molgraph.AtomHandle, bool) {
	for _, nbr := range mol.ConnectedAtoms(anchor) {
		if nbr.AtomicNumber == 8 && nbr.Handle() != exclude {
			return nbr.Handle(), true
		}
	}
	return molgraph.InvalidAtom, false
}

func TestSplitEthersBreaksAndDuplicatesOxygen(t *testing.T) {
	mol := molgraph.NewMolecule("ether")
	firstC := mol.NewAtom(6)
	bridgeO := mol.NewAtom(8)
	secondC := mol.NewAtom(6)
	mol.NewBond(firstC.Handle(), bridgeO.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(bridgeO.Handle(), secondC.Handle(), molgraph.BondOrderSingle)

	changed := SplitEthers(mol, noGateConfig())
	require.True(t, changed)

	require.Nil(t, mol.BondBetween(firstC.Handle(), bridgeO.Handle()))
	require.Equal(t, 4, mol.AtomCount())

	newO, ok := findOtherOxygen(mol, firstC.Handle(), bridgeO.Handle())
	require.True(t, ok)
	require.Equal(t, 1, mol.ConnectedBondsCount(newO))

	require.Equal(t, 1, mol.ConnectedBondsCount(bridgeO.Handle()))
	require.Equal(t, 1, bridgeO.ImplicitHCount)
}

func TestSplitPeroxidesBreaksOOBondWithoutDuplication(t *testing.T) {
	mol := molgraph.NewMolecule("peroxide")
	firstC := mol.NewAtom(6)
	o1 := mol.NewAtom(8)
	o2 := mol.NewAtom(8)
	secondC := mol.NewAtom(6)
	mol.NewBond(firstC.Handle(), o1.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(o1.Handle(), o2.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(o2.Handle(), secondC.Handle(), molgraph.BondOrderSingle)

	changed := SplitPeroxides(mol, noGateConfig())
	require.True(t, changed)

	require.Nil(t, mol.BondBetween(o1.Handle(), o2.Handle()))
	require.Equal(t, 4, mol.AtomCount(), "peroxide split never duplicates an atom")
	require.Equal(t, 1, o1.ImplicitHCount)
	require.Equal(t, 1, o2.ImplicitHCount)
}

func TestSplitEstersBreaksAcylCOBondAndDuplicatesOxygen(t *testing.T) {
	mol := molgraph.NewMolecule("ester")
	acylC := mol.NewAtom(6)
	ketoO := mol.NewAtom(8)
	bridgeO := mol.NewAtom(8)
	alkylC := mol.NewAtom(6)
	mol.NewBond(acylC.Handle(), ketoO.Handle(), molgraph.BondOrderDouble)
	mol.NewBond(acylC.Handle(), bridgeO.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(bridgeO.Handle(), alkylC.Handle(), molgraph.BondOrderSingle)

	changed := SplitEsters(mol, noGateConfig())
	require.True(t, changed)

	require.Nil(t, mol.BondBetween(acylC.Handle(), bridgeO.Handle()))

	newO, ok := findOtherOxygen(mol, acylC.Handle(), ketoO.Handle())
	require.True(t, ok)
	require.Equal(t, 1, mol.ConnectedBondsCount(newO))

	require.Equal(t, 1, mol.ConnectedBondsCount(bridgeO.Handle()))
	require.Equal(t, 1, bridgeO.ImplicitHCount)
	require.True(t, mol.BondBetween(bridgeO.Handle(), alkylC.Handle()) != nil)
}

func TestSplitEthersCrosslinkingDoesNotDuplicateOxygen(t *testing.T) {
	mol := molgraph.NewMolecule("crosslink")
	firstC := mol.NewAtom(6)
	bridgeO := mol.NewAtom(8)
	hydroxylatedC := mol.NewAtom(6)
	// The hydroxy group HasHydroxyNeighbour looks for: a terminal oxygen
	// (no other heavy neighbour) with a positive implicit-H count.
	hydroxyl := mol.NewAtom(8)
	hydroxyl.ImplicitHCount = 1
	mol.NewBond(firstC.Handle(), bridgeO.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(bridgeO.Handle(), hydroxylatedC.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(hydroxylatedC.Handle(), hydroxyl.Handle(), molgraph.BondOrderSingle)

	atomCountBefore := mol.AtomCount()

	changed := SplitEthersCrosslinking(mol, noGateConfig())
	require.True(t, changed)

	require.Nil(t, mol.BondBetween(bridgeO.Handle(), hydroxylatedC.Handle()))
	require.Equal(t, atomCountBefore, mol.AtomCount(), "cross-linking ether split duplicates nothing")
	require.Equal(t, 1, bridgeO.ImplicitHCount)
	require.Equal(t, 1, hydroxylatedC.ImplicitHCount)
}

func TestSplitEthersSizeGateBlocksTooSmallFragment(t *testing.T) {
	mol := molgraph.NewMolecule("tiny-ether")
	firstC := mol.NewAtom(6)
	bridgeO := mol.NewAtom(8)
	secondC := mol.NewAtom(6)
	mol.NewBond(firstC.Handle(), bridgeO.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(bridgeO.Handle(), secondC.Handle(), molgraph.BondOrderSingle)

	cfg := Config{LimitPostProcessingBySize: true, Detector: sugardetect.NewSettings()}
	changed := SplitEthers(mol, cfg)
	require.False(t, changed)
	require.NotNil(t, mol.BondBetween(firstC.Handle(), bridgeO.Handle()))
	require.Equal(t, 3, mol.AtomCount())
}

func TestSplitEthersIsIdempotent(t *testing.T) {
	mol := molgraph.NewMolecule("long-ether")
	atoms := make([]molgraph.AtomHandle, 0, 7)
	atoms = append(atoms, mol.NewAtom(6).Handle(), mol.NewAtom(6).Handle(), mol.NewAtom(6).Handle(), mol.NewAtom(6).Handle())
	bridgeO := mol.NewAtom(8).Handle()
	atoms2 := []molgraph.AtomHandle{mol.NewAtom(6).Handle(), mol.NewAtom(6).Handle(), mol.NewAtom(6).Handle(), mol.NewAtom(6).Handle()}

	for i := 0; i+1 < len(atoms); i++ {
		mol.NewBond(atoms[i], atoms[i+1], molgraph.BondOrderSingle)
	}
	mol.NewBond(atoms[len(atoms)-1], bridgeO, molgraph.BondOrderSingle)
	mol.NewBond(bridgeO, atoms2[0], molgraph.BondOrderSingle)
	for i := 0; i+1 < len(atoms2); i++ {
		mol.NewBond(atoms2[i], atoms2[i+1], molgraph.BondOrderSingle)
	}

	cfg := Config{LimitPostProcessingBySize: true, Detector: sugardetect.NewSettings()}

	first := SplitEthers(mol, cfg)
	require.True(t, first)

	second := SplitEthers(mol, cfg)
	require.False(t, second, "re-running the same split must be a no-op")
}

func TestSplitEtherEsterAndPeroxidePostprocessingRunsEsterBeforePlainEther(t *testing.T) {
	mol := molgraph.NewMolecule("ester-like-ether")
	// alkylC gets the lowest handle so that the plain-ether rule, had it run
	// first, would match it as firstC and break the alkylC–bridgeO bond.
	alkylC := mol.NewAtom(6)
	acylC := mol.NewAtom(6)
	ketoO := mol.NewAtom(8)
	bridgeO := mol.NewAtom(8)
	mol.NewBond(acylC.Handle(), ketoO.Handle(), molgraph.BondOrderDouble)
	mol.NewBond(acylC.Handle(), bridgeO.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(bridgeO.Handle(), alkylC.Handle(), molgraph.BondOrderSingle)

	changed := SplitEtherEsterAndPeroxidePostprocessing(mol, noGateConfig())
	require.True(t, changed)

	// The ester rule should have claimed the acylC–bridgeO bond; the acyl
	// carbon keeps its own duplicated oxygen rather than the alkyl carbon
	// ending up bonded straight to a duplicated bridging oxygen.
	require.Nil(t, mol.BondBetween(acylC.Handle(), bridgeO.Handle()))
	require.NotNil(t, mol.BondBetween(bridgeO.Handle(), alkylC.Handle()))
}

func TestSplitOGlycosidicBondsMarksByR(t *testing.T) {
	mol := molgraph.NewMolecule("glycoside")
	ringC := mol.NewAtom(6)
	other1 := mol.NewAtom(6)
	other2 := mol.NewAtom(6)
	bridgeO := mol.NewAtom(8)
	aglyconeC := mol.NewAtom(6)

	mol.NewBond(ringC.Handle(), other1.Handle(), molgraph.BondOrderSingle).IsInRing = true
	mol.NewBond(other1.Handle(), other2.Handle(), molgraph.BondOrderSingle).IsInRing = true
	mol.NewBond(other2.Handle(), ringC.Handle(), molgraph.BondOrderSingle).IsInRing = true
	mol.NewBond(ringC.Handle(), bridgeO.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(bridgeO.Handle(), aglyconeC.Handle(), molgraph.BondOrderSingle)

	cfg := Config{MarkAttachPointsByR: true, LimitPostProcessingBySize: false, Detector: sugardetect.NewSettings()}
	changed := SplitOGlycosidicBonds(mol, cfg)
	require.True(t, changed)

	require.Nil(t, mol.BondBetween(ringC.Handle(), bridgeO.Handle()))

	// The ring carbon keeps a plain duplicated oxygen; the original bridging
	// oxygen (now stranded on the aglycone side) is the one saturated by an
	// R marker.
	newO, ok := findOtherOxygen(mol, ringC.Handle(), molgraph.InvalidAtom)
	require.True(t, ok)
	require.Equal(t, 1, mol.ConnectedBondsCount(newO))

	var sawMarker bool
	for _, nbr := range mol.ConnectedAtoms(bridgeO.Handle()) {
		if nbr.IsAttachmentMarker() {
			sawMarker = true
		}
	}
	require.True(t, sawMarker)
}
