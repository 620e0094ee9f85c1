package matcher

import (
	"sort"

	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

// Match is one substructure match: Atoms[i] is the target atom bound to
// Pattern.Atoms[i], in pattern order, per spec.md §6 ("each view exposes
// its atoms in pattern-order").
type Match struct {
	Atoms []molgraph.AtomHandle
}

// MatchUnique answers every match of pattern in mol, de-duplicated by the
// *set* of target atoms involved (spec.md §9: "the matcher is assumed to
// support uniqueness filtering"). Implemented as backtracking search over
// pattern atoms in index order, extending the partial mapping along
// pattern bonds already placed — the same shape as cx-luo-go-chem's
// SubstructureMatcher.recursiveMatch, generalized from atomic-number
// equality to the AtomPredicate/BondPredicate functions of pattern.go.
func MatchUnique(pattern Pattern, mol *molgraph.Molecule) []Match {
	if len(pattern.Atoms) == 0 {
		return nil
	}

	atoms := mol.Atoms()
	mapping := make([]molgraph.AtomHandle, len(pattern.Atoms))
	for i := range mapping {
		mapping[i] = molgraph.InvalidAtom
	}
	used := make(map[molgraph.AtomHandle]bool, len(pattern.Atoms))

	var results []Match
	seen := make(map[string]bool)

	var recurse func(idx int)
	recurse = func(idx int) {
		if idx == len(pattern.Atoms) {
			key := matchKey(mapping)
			if !seen[key] {
				seen[key] = true
				cp := make([]molgraph.AtomHandle, len(mapping))
				copy(cp, mapping)
				results = append(results, Match{Atoms: cp})
			}
			return
		}

		pa := pattern.Atoms[idx]
		placedBonds := placedAdjacency(pattern, idx)

		for _, candidate := range atoms {
			if used[candidate.Handle()] {
				continue
			}
			if !pa.Matches(mol, candidate) {
				continue
			}
			if !satisfiesPlacedBonds(mol, pattern, placedBonds, mapping, candidate.Handle()) {
				continue
			}

			mapping[idx] = candidate.Handle()
			used[candidate.Handle()] = true

			recurse(idx + 1)

			used[candidate.Handle()] = false
			mapping[idx] = molgraph.InvalidAtom
		}
	}

	recurse(0)
	return results
}

// placedAdjacency answers the PatternBonds that connect pattern atom idx
// to a pattern atom with a strictly smaller index (already placed by the
// time idx is considered, since recurse visits atoms in index order).
func placedAdjacency(p Pattern, idx int) []PatternBond {
	var out []PatternBond
	for _, b := range p.Bonds {
		if b.From == idx && b.To < idx {
			out = append(out, b)
		} else if b.To == idx && b.From < idx {
			out = append(out, b)
		}
	}
	return out
}

func satisfiesPlacedBonds(mol *molgraph.Molecule, p Pattern, placed []PatternBond, mapping []molgraph.AtomHandle, candidate molgraph.AtomHandle) bool {
	for _, pb := range placed {
		otherIdx := pb.From
		if pb.To < pb.From {
			otherIdx = pb.To
		}
		otherHandle := mapping[otherIdx]
		if otherHandle == molgraph.InvalidAtom {
			return false
		}
		bond := mol.BondBetween(candidate, otherHandle)
		if bond == nil {
			return false
		}
		if !pb.Matches(mol, bond) {
			return false
		}
	}
	return true
}

func matchKey(mapping []molgraph.AtomHandle) string {
	sorted := append([]molgraph.AtomHandle(nil), mapping...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := make([]byte, 0, len(sorted)*4)
	for _, h := range sorted {
		key = append(key, byte(h), byte(h>>8), byte(h>>16), byte(h>>24))
	}
	return string(key)
}
