package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/mortar-sugars/extractor"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

// glucoseLikeRing builds a minimal pyranose-shaped ring (5 carbons + 1 ring
// oxygen), each ring carbon bearing one exocyclic hydroxyl.
func glucoseLikeRing(mol *molgraph.Molecule) (ringAtoms []molgraph.AtomHandle, anomeric molgraph.AtomHandle) {
	c := make([]molgraph.AtomHandle, 5)
	for i := range c {
		c[i] = mol.NewAtom(6).Handle()
	}
	o := mol.NewAtom(8).Handle()

	ring := append(append([]molgraph.AtomHandle{}, c...), o)
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		bond := mol.NewBond(ring[i], next, molgraph.BondOrderSingle)
		bond.IsInRing = true
	}

	for _, atom := range c {
		oh := mol.NewAtom(8)
		oh.ImplicitHCount = 1
		mol.NewBond(atom, oh.Handle(), molgraph.BondOrderSingle)
	}

	return ring, c[0]
}

func TestCopyAndExtractEmptyMoleculeReturnsItself(t *testing.T) {
	mol := molgraph.NewMolecule("empty")
	result, err := extractor.CopyAndExtract(mol, extractor.NewOptions(), nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Fragments, 1)
	require.Same(t, mol, result.Fragments[0])
}

func TestCopyAndExtractNilMoleculeIsInvalidInput(t *testing.T) {
	_, err := extractor.CopyAndExtract(nil, extractor.NewOptions(), nil, nil)
	require.Error(t, err)
}

func TestCopyAndExtractNoSugarDetectedReturnsAglyconeCopy(t *testing.T) {
	mol := molgraph.NewMolecule("benzene-ish")
	a := mol.NewAtom(6)
	b := mol.NewAtom(6)
	mol.NewBond(a.Handle(), b.Handle(), molgraph.BondOrderSingle)

	result, err := extractor.CopyAndExtract(mol, extractor.NewOptions(), nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Fragments, 1)
	require.Equal(t, 2, result.Fragments[0].AtomCount())
	require.NotSame(t, mol, result.Fragments[0])
}

func TestCopyAndExtractGlycosidicBondReconstruction(t *testing.T) {
	mol := molgraph.NewMolecule("glycoside")
	aglyconeC := mol.NewAtom(6)
	glycosidicO := mol.NewAtom(8)
	mol.NewBond(aglyconeC.Handle(), glycosidicO.Handle(), molgraph.BondOrderSingle)

	_, anomeric := glucoseLikeRing(mol)
	mol.NewBond(glycosidicO.Handle(), anomeric, molgraph.BondOrderSingle)

	maps := extractor.NewMaps()
	opts := extractor.NewOptions(extractor.WithExtractCircular(true))
	result, err := extractor.CopyAndExtract(mol, opts, maps, nil)
	require.NoError(t, err)
	require.Len(t, result.Fragments, 2)

	aglycone := result.Fragments[0]
	sugars := result.Fragments[1]

	aglyconeCopyC, ok := maps.AglyconeAtoms[aglyconeC.Handle()]
	require.True(t, ok)
	require.True(t, aglycone.Contains(aglyconeCopyC))

	aglyconeCopyO, ok := maps.AglyconeAtoms[glycosidicO.Handle()]
	require.True(t, ok)
	require.True(t, aglycone.Contains(aglyconeCopyO))
	require.Equal(t, 1, aglycone.ConnectedBondsCount(aglyconeCopyO))
	require.Equal(t, 1, aglycone.Atom(aglyconeCopyO).ImplicitHCount)

	sugarsCopyO, ok := maps.SugarsAtoms[glycosidicO.Handle()]
	require.True(t, ok)
	require.True(t, sugars.Contains(sugarsCopyO))
	require.Equal(t, 1, sugars.ConnectedBondsCount(sugarsCopyO))
	require.Equal(t, 1, sugars.Atom(sugarsCopyO).ImplicitHCount)
}

func TestCopyAndExtractMarksAttachPointsByR(t *testing.T) {
	mol := molgraph.NewMolecule("glycoside")
	aglyconeC := mol.NewAtom(6)
	glycosidicO := mol.NewAtom(8)
	mol.NewBond(aglyconeC.Handle(), glycosidicO.Handle(), molgraph.BondOrderSingle)

	_, anomeric := glucoseLikeRing(mol)
	mol.NewBond(glycosidicO.Handle(), anomeric, molgraph.BondOrderSingle)

	maps := extractor.NewMaps()
	opts := extractor.NewOptions(extractor.WithExtractCircular(true), extractor.WithMarkAttachPointsByR(true))
	result, err := extractor.CopyAndExtract(mol, opts, maps, nil)
	require.NoError(t, err)
	require.Len(t, result.Fragments, 2)

	aglycone := result.Fragments[0]
	aglyconeCopyO, ok := maps.AglyconeAtoms[glycosidicO.Handle()]
	require.True(t, ok)

	var sawMarker bool
	for _, nbr := range aglycone.ConnectedAtoms(aglyconeCopyO) {
		if nbr.IsAttachmentMarker() {
			sawMarker = true
		}
	}
	require.True(t, sawMarker)
}
