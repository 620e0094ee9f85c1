package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/mortar-sugars/internal/logging"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

func TestSaturateSpiroAtoms(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	a := mol.NewAtom(6)
	a.SetSpiroMarker(true)
	b := mol.NewAtom(6)

	saturateSpiroAtoms(mol, false)

	require.Equal(t, 2, a.ImplicitHCount)
	require.Equal(t, molgraph.UnsetH, b.ImplicitHCount)
}

func TestTryC6RepairMovesExocyclicHydroxymethylCarbon(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	ringC := mol.NewAtom(6)
	c6 := mol.NewAtom(6)
	oh := mol.NewAtom(8)
	mol.NewBond(ringC.Handle(), c6.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(c6.Handle(), oh.Handle(), molgraph.BondOrderSingle)

	aglycone, aglyconeAtoms, _ := molgraph.CloneAtomsAndBonds(mol)
	sugars, sugarsAtoms, sugarsBonds := molgraph.CloneAtomsAndBonds(mol)

	ringCCopy := aglyconeAtoms[ringC.Handle()]
	aglycone.RemoveAtom(ringCCopy) // simulates the Detector stripping the ring carbon
	delete(aglyconeAtoms, ringC.Handle())
	sugars.RemoveAtom(sugarsAtoms[c6.Handle()])
	delete(sugarsAtoms, c6.Handle())
	sugars.RemoveAtom(sugarsAtoms[oh.Handle()])
	delete(sugarsAtoms, oh.Handle())

	b := mol.BondBetween(ringC.Handle(), c6.Handle())
	require.NotNil(t, b)

	c6Copy := aglyconeAtoms[c6.Handle()]
	ok := tryC6Repair(mol, c6.Handle(), c6Copy, ringC.Handle(), b, aglycone, aglyconeAtoms, sugars, sugarsAtoms, sugarsBonds)
	require.True(t, ok)

	require.False(t, aglycone.Contains(c6Copy))
	newC6, inSugars := sugarsAtoms[c6.Handle()]
	require.True(t, inSugars)
	require.True(t, sugars.Contains(newC6))
	require.Equal(t, 1, sugars.ConnectedBondsCount(newC6))
	nbrs := sugars.ConnectedAtoms(newC6)
	require.Len(t, nbrs, 1)
	require.Equal(t, uint8(6), nbrs[0].AtomicNumber)
}

func TestReconstructBoundaryLogsWarningOnMissingHeteroatom(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	o := mol.NewAtom(8)
	c := mol.NewAtom(6)
	mol.NewBond(o.Handle(), c.Handle(), molgraph.BondOrderSingle)

	aglycone, aglyconeAtoms, aglyconeBonds := molgraph.CloneAtomsAndBonds(mol)
	sugars, sugarsAtoms, sugarsBonds := molgraph.CloneAtomsAndBonds(mol)

	// Remove the oxygen from both copies and their maps to force the
	// "heteroatom absent from both copies" diagnostic path.
	aglycone.RemoveAtom(aglyconeAtoms[o.Handle()])
	delete(aglyconeAtoms, o.Handle())
	sugars.RemoveAtom(sugarsAtoms[o.Handle()])
	delete(sugarsAtoms, o.Handle())

	report := reconstructBoundary(mol, aglycone, aglyconeAtoms, aglyconeBonds, sugars, sugarsAtoms, sugarsBonds, NewOptions(), logging.NewNopLogger())
	require.NotEmpty(t, report.messages)
	require.Contains(t, report.brokenBonds, mol.BondsOf(c.Handle())[0].Handle())
}
