package splitter

import (
	"github.com/Steinbeck-Lab/mortar-sugars/matcher"
	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

// rule bundles one pattern from spec.md §4.4's table with the indices (into
// Pattern.Atoms / the resulting Match.Atoms) of the bond to break and
// whether the split duplicates the bridging oxygen.
type rule struct {
	name            string
	pattern         matcher.Pattern
	splitA, splitB  int
	duplicateOxygen bool
	linear          bool // gate kind: true = linear-size gate, false = circular preservation gate
}

func carbonAtom(ring bool) matcher.AtomPredicate {
	base := matcher.Uncharged(matcher.AtomicNumberIs(6))
	if ring {
		return matcher.InRing(base)
	}
	return matcher.NotInRing(base)
}

func bridgingOxygen() matcher.AtomPredicate {
	return matcher.NotInRing(matcher.DegreeIs(matcher.Uncharged(matcher.AtomicNumberIs(8)), 2))
}

func nonRingSingle() matcher.BondPredicate {
	return matcher.NonRingBond(molgraph.BondOrderSingle)
}

// oGlycosidicRule: ring-C (degree 3-4) - !@ non-ring O (degree 2) - !@ any-C.
// Split point: the ring-C–O bond. Duplicates the oxygen.
func oGlycosidicRule() rule {
	ringCarbon := matcher.InRing(matcher.DegreeBetween(matcher.Uncharged(matcher.AtomicNumberIs(6)), 3, 4))
	return rule{
		name: "o_glycosidic",
		pattern: matcher.Pattern{
			Name: "o_glycosidic",
			Atoms: []matcher.PatternAtom{
				{Label: "ringC", Matches: ringCarbon},
				{Label: "O", Matches: bridgingOxygen()},
				{Label: "anyC", Matches: matcher.Uncharged(matcher.AtomicNumberIs(6))},
			},
			Bonds: []matcher.PatternBond{
				{From: 0, To: 1, Matches: nonRingSingle()},
				{From: 1, To: 2, Matches: nonRingSingle()},
			},
		},
		splitA: 0, splitB: 1,
		duplicateOxygen: true,
		linear:          false,
	}
}

// esterRule: non-ring acyl C (has a carbonyl =O neighbour) - !@ non-ring O
// (degree 2) - !@ non-ring C. Split point: the acyl C–O bond. Duplicates
// the oxygen.
func esterRule() rule {
	acylCarbon := matcher.HasCarbonylNeighbour(carbonAtom(false))
	return rule{
		name: "ester",
		pattern: matcher.Pattern{
			Name: "ester",
			Atoms: []matcher.PatternAtom{
				{Label: "acylC", Matches: acylCarbon},
				{Label: "O", Matches: bridgingOxygen()},
				{Label: "alkylC", Matches: carbonAtom(false)},
			},
			Bonds: []matcher.PatternBond{
				{From: 0, To: 1, Matches: nonRingSingle()},
				{From: 1, To: 2, Matches: nonRingSingle()},
			},
		},
		splitA: 0, splitB: 1,
		duplicateOxygen: true,
		linear:          true,
	}
}

// crosslinkingEtherRule: non-ring C - !@ non-ring O (degree 2) - !@
// non-ring C that also bears a hydroxy group. Split point: the O–hydroxylated-C
// bond. Does not duplicate the oxygen.
func crosslinkingEtherRule() rule {
	hydroxylatedCarbon := matcher.HasHydroxyNeighbour(carbonAtom(false))
	return rule{
		name: "ether_crosslinking",
		pattern: matcher.Pattern{
			Name: "ether_crosslinking",
			Atoms: []matcher.PatternAtom{
				{Label: "firstC", Matches: carbonAtom(false)},
				{Label: "O", Matches: bridgingOxygen()},
				{Label: "hydroxylatedC", Matches: hydroxylatedCarbon},
			},
			Bonds: []matcher.PatternBond{
				{From: 0, To: 1, Matches: nonRingSingle()},
				{From: 1, To: 2, Matches: nonRingSingle()},
			},
		},
		splitA: 1, splitB: 2,
		duplicateOxygen: false,
		linear:          true,
	}
}

// etherRule: non-ring C - !@ non-ring O (degree 2) - !@ non-ring C. Split
// point: the first-C–O bond. Duplicates the oxygen. Run after the
// cross-linking and ester rules, since this pattern also matches them.
func etherRule() rule {
	return rule{
		name: "ether",
		pattern: matcher.Pattern{
			Name: "ether",
			Atoms: []matcher.PatternAtom{
				{Label: "firstC", Matches: carbonAtom(false)},
				{Label: "O", Matches: bridgingOxygen()},
				{Label: "secondC", Matches: carbonAtom(false)},
			},
			Bonds: []matcher.PatternBond{
				{From: 0, To: 1, Matches: nonRingSingle()},
				{From: 1, To: 2, Matches: nonRingSingle()},
			},
		},
		splitA: 0, splitB: 1,
		duplicateOxygen: true,
		linear:          true,
	}
}

// peroxideRule: non-ring C - !@ non-ring O (degree 2) - !@ non-ring O
// (degree 2) - !@ non-ring C. Split point: the O–O bond. Does not
// duplicate either oxygen.
func peroxideRule() rule {
	return rule{
		name: "peroxide",
		pattern: matcher.Pattern{
			Name: "peroxide",
			Atoms: []matcher.PatternAtom{
				{Label: "firstC", Matches: carbonAtom(false)},
				{Label: "O1", Matches: bridgingOxygen()},
				{Label: "O2", Matches: bridgingOxygen()},
				{Label: "secondC", Matches: carbonAtom(false)},
			},
			Bonds: []matcher.PatternBond{
				{From: 0, To: 1, Matches: nonRingSingle()},
				{From: 1, To: 2, Matches: nonRingSingle()},
				{From: 2, To: 3, Matches: nonRingSingle()},
			},
		},
		splitA: 1, splitB: 2,
		duplicateOxygen: false,
		linear:          true,
	}
}
