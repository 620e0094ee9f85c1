// Package matcher implements the "SMARTS matcher" collaborator named in
// spec.md §6: given a small query Pattern and a target molecule, it
// answers every unique substructure match. Grounded on cx-luo-go-chem's
// src/molecule/molecule_substructure_matcher.go SubstructureMatcher, whose
// backtracking recursiveMatch walks the query atom-by-atom extending the
// mapping along query bonds. That matcher only ever compares atomic
// number/charge/degree, which is not enough to express the five patterns
// of spec.md §4.4 (non-ring bonds, specific degrees, carbonyl/hydroxy
// neighbour lookups): per spec.md §9's design note ("the five concrete
// patterns... can be replaced with hand-written graph queries against
// atom neighbourhoods"), each pattern atom here carries an arbitrary
// predicate instead of a fixed element, and each pattern bond carries an
// arbitrary predicate instead of a fixed order — the backtracking shape
// is kept, the comparison functions are generalized.
package matcher

import "github.com/Steinbeck-Lab/mortar-sugars/molgraph"

// AtomPredicate reports whether the given atom (in the context of its
// owning molecule, for degree/ring queries) satisfies a pattern atom's
// constraint.
type AtomPredicate func(mol *molgraph.Molecule, atom *molgraph.Atom) bool

// BondPredicate reports whether the given bond satisfies a pattern bond's
// constraint.
type BondPredicate func(mol *molgraph.Molecule, bond *molgraph.Bond) bool

// PatternAtom is one node of a Pattern: a predicate plus a human-readable
// label used in diagnostics.
type PatternAtom struct {
	Label   string
	Matches AtomPredicate
}

// PatternBond connects two PatternAtoms by their index within Pattern.Atoms.
type PatternBond struct {
	From, To int
	Matches  BondPredicate
}

// Pattern is a small connected query graph: the five substructures of
// spec.md §4.4 each compile to one of these. Atoms are listed in the
// fixed "pattern order" that spec.md §6 requires matched views to expose.
type Pattern struct {
	Name  string
	Atoms []PatternAtom
	Bonds []PatternBond
}

// adjacency answers, for each pattern atom index, the PatternBonds
// touching it.
func (p Pattern) adjacency(idx int) []PatternBond {
	var out []PatternBond
	for _, b := range p.Bonds {
		if b.From == idx || b.To == idx {
			out = append(out, b)
		}
	}
	return out
}

// Common atom/bond predicates shared by the patterns in spec.md §4.4.

// AtomicNumberIs matches an atom of the given element, ignoring pseudo
// atoms.
func AtomicNumberIs(z uint8) AtomPredicate {
	return func(_ *molgraph.Molecule, a *molgraph.Atom) bool {
		return !a.IsPseudo && a.AtomicNumber == z
	}
}

// Uncharged matches an atom with zero formal charge, per spec.md §4.4's
// "all atoms uncharged" requirement on every pattern.
func Uncharged(inner AtomPredicate) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		return a.FormalCharge == 0 && inner(mol, a)
	}
}

// DegreeIs matches an atom with exactly the given connected-bond count.
func DegreeIs(inner AtomPredicate, degree int) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		return inner(mol, a) && mol.ConnectedBondsCount(a.Handle()) == degree
	}
}

// DegreeBetween matches an atom whose connected-bond count falls in
// [lo, hi] inclusive.
func DegreeBetween(inner AtomPredicate, lo, hi int) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		if !inner(mol, a) {
			return false
		}
		d := mol.ConnectedBondsCount(a.Handle())
		return d >= lo && d <= hi
	}
}

// InRing matches an atom with at least one in-ring bond.
func InRing(inner AtomPredicate) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		return inner(mol, a) && a.IsInRing()
	}
}

// NotInRing matches an atom with no in-ring bond.
func NotInRing(inner AtomPredicate) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		return inner(mol, a) && !a.IsInRing()
	}
}

// HasHydroxyNeighbour matches an atom (expected to be carbon) that has a
// single-bonded, non-ring oxygen neighbour with no other heavy neighbour
// (degree 1) carrying at least one implicit hydrogen — the "also bears a
// hydroxy group" clause of the
// cross-linking-ether pattern.
func HasHydroxyNeighbour(inner AtomPredicate) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		if !inner(mol, a) {
			return false
		}
		for _, b := range mol.BondsOf(a.Handle()) {
			if b.IsInRing || b.Order != molgraph.BondOrderSingle {
				continue
			}
			nbr := mol.Atom(b.OtherEnd(a.Handle()))
			if nbr == nil || nbr.IsPseudo || nbr.AtomicNumber != 8 {
				continue
			}
			if mol.ConnectedBondsCount(nbr.Handle()) != 1 {
				continue
			}
			if nbr.ImplicitHCount > 0 {
				return true
			}
		}
		return false
	}
}

// HasCarbonylNeighbour matches an atom (expected to be carbon) that has a
// double-bonded oxygen neighbour — the acyl carbon of the ester pattern.
func HasCarbonylNeighbour(inner AtomPredicate) AtomPredicate {
	return func(mol *molgraph.Molecule, a *molgraph.Atom) bool {
		if !inner(mol, a) {
			return false
		}
		for _, b := range mol.BondsOf(a.Handle()) {
			if b.Order != molgraph.BondOrderDouble {
				continue
			}
			nbr := mol.Atom(b.OtherEnd(a.Handle()))
			if nbr != nil && !nbr.IsPseudo && nbr.AtomicNumber == 8 {
				return true
			}
		}
		return false
	}
}

// NonRingBond matches a non-ring bond of the given order.
func NonRingBond(order molgraph.BondOrder) BondPredicate {
	return func(_ *molgraph.Molecule, b *molgraph.Bond) bool {
		return !b.IsInRing && b.Order == order
	}
}
