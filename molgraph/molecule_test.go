package molgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

func ethanol() *molgraph.Molecule {
	mol := molgraph.NewMolecule("ethanol")
	c1 := mol.NewAtom(6)
	c2 := mol.NewAtom(6)
	o := mol.NewAtom(8)
	mol.NewBond(c1.Handle(), c2.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(c2.Handle(), o.Handle(), molgraph.BondOrderSingle)
	return mol
}

func TestNewAtomAndBond(t *testing.T) {
	mol := ethanol()
	require.Equal(t, 3, mol.AtomCount())
	require.Equal(t, 2, mol.BondCount())
}

func TestBondBetweenAndConnectedAtoms(t *testing.T) {
	mol := ethanol()
	atoms := mol.Atoms()
	c1, c2, o := atoms[0], atoms[1], atoms[2]

	require.NotNil(t, mol.BondBetween(c1.Handle(), c2.Handle()))
	require.Nil(t, mol.BondBetween(c1.Handle(), o.Handle()))

	neighbours := mol.ConnectedAtoms(c2.Handle())
	require.Len(t, neighbours, 2)
	require.Equal(t, 1, mol.ConnectedBondsCount(c1.Handle()))
	require.Equal(t, 2, mol.ConnectedBondsCount(c2.Handle()))
	require.Equal(t, 2, mol.BondOrderSum(c2.Handle()))
}

func TestNewBondRejectsDuplicate(t *testing.T) {
	mol := ethanol()
	atoms := mol.Atoms()
	require.Panics(t, func() {
		mol.NewBond(atoms[0].Handle(), atoms[1].Handle(), molgraph.BondOrderSingle)
	})
}

func TestRemoveAtomCascadesBonds(t *testing.T) {
	mol := ethanol()
	atoms := mol.Atoms()
	c2 := atoms[1]

	mol.RemoveAtom(c2.Handle())

	require.Equal(t, 2, mol.AtomCount())
	require.Equal(t, 0, mol.BondCount())
	require.False(t, mol.Contains(c2.Handle()))
}

func TestRemoveBondLeavesAtoms(t *testing.T) {
	mol := ethanol()
	atoms := mol.Atoms()
	b := mol.BondBetween(atoms[1].Handle(), atoms[2].Handle())
	require.NotNil(t, b)

	mol.RemoveBond(b.Handle())

	require.Equal(t, 3, mol.AtomCount())
	require.Equal(t, 1, mol.BondCount())
	require.Nil(t, mol.BondBetween(atoms[1].Handle(), atoms[2].Handle()))
}

func TestAttachmentMarker(t *testing.T) {
	mol := molgraph.NewMolecule("fragment")
	c := mol.NewAtom(6)
	marker := mol.AddAttachmentMarker(c.Handle())

	require.True(t, marker.IsAttachmentMarker())
	require.Equal(t, 1, marker.AttachPointNum)
	require.Equal(t, 0, marker.ImplicitHCount)
	require.Equal(t, 1, mol.ConnectedBondsCount(c.Handle()))
}

func TestAtomPropertyRoundTrip(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	a := mol.NewAtom(6)

	a.SetProperty("sugarCandidate", true)
	require.True(t, a.BoolProperty("sugarCandidate"))

	v, ok := a.Property("sugarCandidate")
	require.True(t, ok)
	require.Equal(t, true, v)
}

func TestAtomSetPropertyPanicsOnNonPrimitive(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	a := mol.NewAtom(6)

	require.Panics(t, func() {
		a.SetProperty("bad", []int{1, 2})
	})
}

func TestIsInRingDerivedFromBonds(t *testing.T) {
	mol := molgraph.NewMolecule("ring")
	a := mol.NewAtom(6)
	b := mol.NewAtom(6)
	c := mol.NewAtom(6)
	bond := mol.NewBond(a.Handle(), b.Handle(), molgraph.BondOrderSingle)
	mol.NewBond(b.Handle(), c.Handle(), molgraph.BondOrderSingle)

	require.False(t, a.IsInRing())
	bond.IsInRing = true
	require.True(t, a.IsInRing())
	require.True(t, b.IsInRing())
	require.False(t, c.IsInRing())
}
