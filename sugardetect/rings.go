package sugardetect

import (
	"github.com/willf/bitset"

	"github.com/Steinbeck-Lab/mortar-sugars/molgraph"
)

// ring is a simple cycle perceived in a molecule, holding membership as a
// bitset over atom-handle integers for O(1) comparison — grounded on
// RxnWeaver's data/ring.go Ring type (atomBitSet/bondBitSet fields,
// "For faster comparison").
type ring struct {
	atoms   []molgraph.AtomHandle
	atomSet *bitset.BitSet
}

func (r ring) hasAtom(h molgraph.AtomHandle) bool { return r.atomSet.Test(uint(h)) }

func (r ring) size() int { return len(r.atoms) }

// maxPerceivedRingSize bounds the ring-perception search; sugar rings are
// furanoses (5) and pyranoses (6), so this comfortably covers the domain
// without the combinatorial blow-up of searching for macrocycles.
const maxPerceivedRingSize = 8

// perceiveRings answers one simple ring per ring bond not already
// explained by a smaller ring — a small-set-of-smallest-rings
// approximation. For each bond (u, v), the shortest path from u to v in
// the graph with that bond removed, if no longer than
// maxPerceivedRingSize, closes into a ring. Duplicate rings (same atom
// set, found from a different starting bond) are folded together.
func perceiveRings(mol *molgraph.Molecule) []ring {
	var out []ring
	seen := make(map[string]bool)

	for _, b := range mol.Bonds() {
		path := shortestPathExcluding(mol, b.Begin, b.End, b.Handle())
		if path == nil || len(path) > maxPerceivedRingSize || len(path) < 3 {
			continue
		}
		key := ringKey(path)
		if seen[key] {
			continue
		}
		seen[key] = true

		bs := bitset.New(0)
		for _, h := range path {
			bs.Set(uint(h))
		}
		out = append(out, ring{atoms: path, atomSet: bs})
	}
	return out
}

// shortestPathExcluding answers the shortest sequence of atoms from u to
// v (inclusive of both) not using the given bond, or nil if none exists.
func shortestPathExcluding(mol *molgraph.Molecule, u, v molgraph.AtomHandle, excluded molgraph.BondHandle) []molgraph.AtomHandle {
	type step struct {
		atom molgraph.AtomHandle
		prev int
	}
	visited := map[molgraph.AtomHandle]bool{u: true}
	steps := []step{{atom: u, prev: -1}}
	queue := []int{0}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cur := steps[idx]

		if cur.atom == v && idx != 0 {
			var path []molgraph.AtomHandle
			for i := idx; i != -1; i = steps[i].prev {
				path = append([]molgraph.AtomHandle{steps[i].atom}, path...)
			}
			return path
		}

		for _, bond := range mol.BondsOf(cur.atom) {
			if bond.Handle() == excluded {
				continue
			}
			next := bond.OtherEnd(cur.atom)
			if next == v {
				var path []molgraph.AtomHandle
				for i := idx; i != -1; i = steps[i].prev {
					path = append([]molgraph.AtomHandle{steps[i].atom}, path...)
				}
				path = append(path, v)
				return path
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			steps = append(steps, step{atom: next, prev: idx})
			queue = append(queue, len(steps)-1)
		}
	}
	return nil
}

func ringKey(atoms []molgraph.AtomHandle) string {
	bs := bitset.New(0)
	for _, a := range atoms {
		bs.Set(uint(a))
	}
	return bs.String()
}
