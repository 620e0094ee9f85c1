package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

func TestSaturateImplicitH(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	a := mol.NewAtom(6)
	saturate(mol, a.Handle(), false, 2)
	require.Equal(t, 2, a.ImplicitHCount)
	saturate(mol, a.Handle(), false, 1)
	require.Equal(t, 3, a.ImplicitHCount)
}

func TestSaturateByR(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	a := mol.NewAtom(6)
	saturate(mol, a.Handle(), true, 2)
	require.Equal(t, molgraph.UnsetH, a.ImplicitHCount)
	require.Equal(t, 2, mol.ConnectedBondsCount(a.Handle()))
	for _, nbr := range mol.ConnectedAtoms(a.Handle()) {
		require.True(t, nbr.IsAttachmentMarker())
	}
}

func TestSaturateNewBoundaryHeteroImplicitH(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	o := mol.NewAtom(8)
	saturateNewBoundaryHetero(mol, o.Handle(), false, 2, 1)
	require.Equal(t, 1, o.ImplicitHCount)
}

func TestSaturateNewBoundaryHeteroByR(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	o := mol.NewAtom(8)
	saturateNewBoundaryHetero(mol, o.Handle(), true, 3, 1)
	require.Equal(t, 1, mol.ConnectedBondsCount(o.Handle()))
	require.Equal(t, 1, o.ImplicitHCount, "residual = origBondOrderSum(3) - (1 + broken(1)) = 1")
}

func TestSaturateNewBoundaryHeteroByRNoResidual(t *testing.T) {
	mol := molgraph.NewMolecule("m")
	o := mol.NewAtom(8)
	saturateNewBoundaryHetero(mol, o.Handle(), true, 2, 1)
	require.Equal(t, 1, mol.ConnectedBondsCount(o.Handle()))
	require.Equal(t, molgraph.UnsetH, o.ImplicitHCount, "residual = 2 - (1+1) = 0, no top-up applied")
}
