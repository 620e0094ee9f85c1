package sugardetect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
	"github.com/Steinbeck-Lab/mortar-sugars/sugardetect"
)

// glucoseLikeRing builds a minimal pyranose-shaped ring (5 carbons + 1
// ring oxygen) each ring carbon bearing one exocyclic hydroxyl, optionally
// attached to an external "aglycone" carbon via the anomeric carbon.
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

func TestRemoveCircularSugarsRemovesPyranoseRing(t *testing.T) {
	mol := molgraph.NewMolecule("glycoside")
	aglycone := mol.NewAtom(6)
	ringAtoms, anomeric := glucoseLikeRing(mol)
	mol.NewBond(aglycone.Handle(), anomeric, molgraph.BondOrderSingle)

	settings := sugardetect.NewSettings(sugardetect.WithTerminalOnly(true))
	removed := sugardetect.RemoveCircularSugars(mol, settings)

	require.True(t, removed)
	require.True(t, mol.Contains(aglycone.Handle()))
	for _, h := range ringAtoms {
		require.False(t, mol.Contains(h), "ring atom %d should have been removed", h)
	}
}

func TestRemoveCircularSugarsNoOpWithoutCandidate(t *testing.T) {
	mol := molgraph.NewMolecule("benzene-ish")
	a := mol.NewAtom(6)
	b := mol.NewAtom(6)
	mol.NewBond(a.Handle(), b.Handle(), molgraph.BondOrderSingle)

	settings := sugardetect.NewSettings()
	removed := sugardetect.RemoveCircularSugars(mol, settings)
	require.False(t, removed)
	require.Equal(t, 2, mol.AtomCount())
}

func TestIsTooSmallToPreserve(t *testing.T) {
	settings := sugardetect.NewSettings(sugardetect.WithPreservationThreshold(5))
	require.True(t, settings.IsTooSmallToPreserve(3))
	require.False(t, settings.IsTooSmallToPreserve(7))
}

func TestRemoveLinearSugarsRemovesPolyolChain(t *testing.T) {
	mol := molgraph.NewMolecule("polyol")
	aglycone := mol.NewAtom(6)
	chain := make([]molgraph.AtomHandle, 4)
	prev := aglycone.Handle()
	for i := range chain {
		c := mol.NewAtom(6)
		chain[i] = c.Handle()
		mol.NewBond(prev, c.Handle(), molgraph.BondOrderSingle)
		oh := mol.NewAtom(8)
		oh.ImplicitHCount = 1
		mol.NewBond(c.Handle(), oh.Handle(), molgraph.BondOrderSingle)
		prev = c.Handle()
	}

	settings := sugardetect.NewSettings(sugardetect.WithLinearSugarCandidateMinSize(4), sugardetect.WithTerminalOnly(true))
	removed := sugardetect.RemoveLinearSugars(mol, settings)

	require.True(t, removed)
	require.True(t, mol.Contains(aglycone.Handle()))
}
