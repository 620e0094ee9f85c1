package molgraph

import (
	"github.com/willf/bitset"
)

// Molecule is the arena that owns a set of atoms, bonds and stereo
// elements. Atoms and bonds are addressed by stable handles rather than
// positional indices: removal does not renumber survivors, so handles
// captured before a removal (e.g. in an original→copy map built by
// DeeperCopy) never silently start naming a different atom. Grounded on
// the rewrite strategy noted in spec.md §9 design notes, and on the
// slice-of-pointers molecule model of cx-luo-go-chem's
// src/molecule/molecule.go, with bond-incidence bookkeeping done via
// github.com/willf/bitset the way RxnWeaver's data/molecule/atom.go
// tracks per-atom bond membership.
type Molecule struct {
	Name string

	atoms []*Atom
	bonds []*Bond
	stereo []*StereoElement

	// atomBonds[h] is the bitset of bond handles incident on atom handle h.
	// Indexed by the integer value of AtomHandle/BondHandle; a removed
	// bond's bit is cleared, and a removed atom's entry is deleted.
	atomBonds map[AtomHandle]*bitset.BitSet

	// bondIndex speeds up Bond(a, b) lookups without a full bond scan.
	bondIndex map[[2]AtomHandle]BondHandle
}

// NewMolecule answers an empty molecule ready for atom/bond construction.
func NewMolecule(name string) *Molecule {
	return &Molecule{
		Name:      name,
		atomBonds: make(map[AtomHandle]*bitset.BitSet),
		bondIndex: make(map[[2]AtomHandle]BondHandle),
	}
}

func pairKey(a, b AtomHandle) [2]AtomHandle {
	if a <= b {
		return [2]AtomHandle{a, b}
	}
	return [2]AtomHandle{b, a}
}

// NewAtom creates and adds an atom of the given element to this molecule,
// answering the new atom.
func (m *Molecule) NewAtom(atomicNumber uint8) *Atom {
	h := AtomHandle(len(m.atoms))
	a := &Atom{
		handle:         h,
		mol:            m,
		AtomicNumber:   atomicNumber,
		ImplicitHCount: UnsetH,
		Valence:        UnsetValence,
	}
	m.atoms = append(m.atoms, a)
	m.atomBonds[h] = bitset.New(0)
	return a
}

// NewPseudoAtom creates an "R"-style attachment-point marker atom, per
// spec.md §3.
func (m *Molecule) NewPseudoAtom(symbol string, attachPointNum int) *Atom {
	a := m.NewAtom(0)
	a.IsPseudo = true
	a.PseudoSymbol = symbol
	a.AttachPointNum = attachPointNum
	return a
}

// AddAttachmentMarker attaches a fresh "R" attachment-point marker atom to
// open, joined by a single bond, per spec.md §3's exact shape: symbol "R",
// attach_point_num 1, implicit_h_count 0.
func (m *Molecule) AddAttachmentMarker(open AtomHandle) *Atom {
	marker := m.NewPseudoAtom("R", 1)
	marker.ImplicitHCount = 0
	m.NewBond(open, marker.handle, BondOrderSingle)
	return marker
}

// Atom answers the atom for the given handle, or nil if it has been
// removed or never existed.
func (m *Molecule) Atom(h AtomHandle) *Atom {
	if h < 0 || int(h) >= len(m.atoms) {
		return nil
	}
	return m.atoms[h]
}

// BondByHandle answers the bond for the given handle, or nil.
func (m *Molecule) BondByHandle(h BondHandle) *Bond {
	if h < 0 || int(h) >= len(m.bonds) {
		return nil
	}
	return m.bonds[h]
}

// Atoms answers every live atom in this molecule, in handle order.
func (m *Molecule) Atoms() []*Atom {
	out := make([]*Atom, 0, len(m.atoms))
	for _, a := range m.atoms {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Bonds answers every live bond in this molecule, in handle order.
func (m *Molecule) Bonds() []*Bond {
	out := make([]*Bond, 0, len(m.bonds))
	for _, b := range m.bonds {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// StereoElements answers every stereo element attached to this molecule.
func (m *Molecule) StereoElements() []*StereoElement {
	out := make([]*StereoElement, 0, len(m.stereo))
	for _, s := range m.stereo {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// NewBond creates and adds a bond between the two given atoms, answering
// the new bond. Panics if either endpoint is invalid/absent, or if a bond
// between them already exists — spec.md §3 forbids duplicate bonds.
func (m *Molecule) NewBond(begin, end AtomHandle, order BondOrder) *Bond {
	if m.Atom(begin) == nil || m.Atom(end) == nil {
		panic("molgraph: NewBond with unknown endpoint")
	}
	if begin == end {
		panic("molgraph: NewBond with identical endpoints")
	}
	if _, exists := m.bondIndex[pairKey(begin, end)]; exists {
		panic("molgraph: duplicate bond")
	}
	h := BondHandle(len(m.bonds))
	b := &Bond{
		handle:        h,
		mol:           m,
		Begin:         begin,
		End:           end,
		Order:         order,
		ElectronCount: order.numeric() * 2,
	}
	m.bonds = append(m.bonds, b)
	m.bondIndex[pairKey(begin, end)] = h

	m.atomBonds[begin].Set(uint(h))
	m.atomBonds[end].Set(uint(h))
	return b
}

// Contains answers whether the given atom handle names a live atom in
// this molecule.
func (m *Molecule) Contains(h AtomHandle) bool { return m.Atom(h) != nil }

// ContainsBond answers whether the given bond handle names a live bond.
func (m *Molecule) ContainsBond(h BondHandle) bool { return m.BondByHandle(h) != nil }

// BondBetween answers the bond connecting the two given atoms, or nil if
// none exists.
func (m *Molecule) BondBetween(a, b AtomHandle) *Bond {
	h, ok := m.bondIndex[pairKey(a, b)]
	if !ok {
		return nil
	}
	return m.BondByHandle(h)
}

// BondsOf answers every live bond incident on the given atom.
func (m *Molecule) BondsOf(h AtomHandle) []*Bond {
	bits, ok := m.atomBonds[h]
	if !ok {
		return nil
	}
	out := make([]*Bond, 0, bits.Count())
	for i, e := bits.NextSet(0); e; i, e = bits.NextSet(i + 1) {
		if b := m.BondByHandle(BondHandle(i)); b != nil {
			out = append(out, b)
		}
	}
	return out
}

// ConnectedAtoms answers every atom directly bonded to the given atom.
func (m *Molecule) ConnectedAtoms(h AtomHandle) []*Atom {
	bonds := m.BondsOf(h)
	out := make([]*Atom, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, m.Atom(b.OtherEnd(h)))
	}
	return out
}

// ConnectedBondsCount answers the number of live bonds incident on the
// given atom (the atom's degree).
func (m *Molecule) ConnectedBondsCount(h AtomHandle) int {
	return len(m.BondsOf(h))
}

// BondOrderSum answers the sum of bond-order weights incident on the
// given atom, used for implicit-hydrogen and valence calculations.
func (m *Molecule) BondOrderSum(h AtomHandle) int {
	sum := 0
	for _, b := range m.BondsOf(h) {
		sum += b.OrderWeight()
	}
	return sum
}

// RemoveBond removes a single bond. The two atoms it connected, and any
// other bonds, are left untouched. Any stereo element whose focus was
// this bond is also removed, since its geometry no longer exists.
func (m *Molecule) RemoveBond(h BondHandle) {
	b := m.BondByHandle(h)
	if b == nil {
		return
	}
	m.atomBonds[b.Begin].Clear(uint(h))
	m.atomBonds[b.End].Clear(uint(h))
	delete(m.bondIndex, pairKey(b.Begin, b.End))
	m.bonds[h] = nil

	kept := m.stereo[:0]
	for _, s := range m.stereo {
		if s != nil && s.FocusKind == StereoFocusBond && s.FocusBond == h {
			continue
		}
		kept = append(kept, s)
	}
	m.stereo = kept
}

// RemoveAtom removes an atom along with every bond incident on it (and,
// transitively, any stereo elements those bonds carried), and any stereo
// element directly focused on the atom itself.
func (m *Molecule) RemoveAtom(h AtomHandle) {
	if m.Atom(h) == nil {
		return
	}
	for _, b := range m.BondsOf(h) {
		m.RemoveBond(b.handle)
	}
	delete(m.atomBonds, h)
	m.atoms[h] = nil

	kept := m.stereo[:0]
	for _, s := range m.stereo {
		if s != nil && s.FocusKind == StereoFocusAtom && s.FocusAtom == h {
			continue
		}
		kept = append(kept, s)
	}
	m.stereo = kept
}

// AddStereoElement registers a stereo element on this molecule. Stereo
// elements have no stable index: RemoveBond/RemoveAtom compact the list
// when they drop an element.
func (m *Molecule) AddStereoElement(s *StereoElement) {
	s.mol = m
	m.stereo = append(m.stereo, s)
}

// AtomCount answers the number of live atoms.
func (m *Molecule) AtomCount() int {
	n := 0
	for _, a := range m.atoms {
		if a != nil {
			n++
		}
	}
	return n
}

// BondCount answers the number of live bonds.
func (m *Molecule) BondCount() int {
	n := 0
	for _, b := range m.bonds {
		if b != nil {
			n++
		}
	}
	return n
}
