package molgraph

// BondHandle is a stable identity for a bond within the Molecule arena
// that owns it. See AtomHandle for the rationale.
type BondHandle int

// InvalidBond is the sentinel for "no bond".
const InvalidBond BondHandle = -1

// Bond represents a chemical bond between exactly two atoms. A bond is
// identified by its (Begin, End) pair as an unordered set; duplicate
// bonds between the same two atoms are not permitted (spec.md §3).
type Bond struct {
	handle BondHandle
	mol    *Molecule

	Begin        AtomHandle
	End          AtomHandle
	Order        BondOrder
	IsAromatic   bool
	Stereo       BondStereo
	Display      BondDisplay
	IsInRing     bool
	ElectronCount int
	Properties   map[string]interface{}
}

// Handle answers this bond's stable handle.
func (b *Bond) Handle() BondHandle { return b.handle }

// Parent answers the containing molecule of this bond.
func (b *Bond) Parent() *Molecule { return b.mol }

// OrderWeight answers the valence weight of this bond's order (1/2/3/4,
// 0 for UNSET). Used throughout boundary reconstruction and saturation.
func (b *Bond) OrderWeight() int { return b.Order.numeric() }

// OtherEnd answers the atom at the other end of this bond from the given
// one. Answers InvalidAtom if the given atom does not participate in
// this bond.
func (b *Bond) OtherEnd(a AtomHandle) AtomHandle {
	switch a {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	default:
		return InvalidAtom
	}
}

// Involves answers whether the given atom is one of this bond's endpoints.
func (b *Bond) Involves(a AtomHandle) bool {
	return a == b.Begin || a == b.End
}

// SetProperty stores a primitive-scalar property on this bond (see
// Atom.SetProperty for the restriction rationale).
func (b *Bond) SetProperty(key string, value interface{}) {
	switch value.(type) {
	case string, int, bool:
	default:
		panic("molgraph: bond property values must be string, int or bool")
	}
	if b.Properties == nil {
		b.Properties = make(map[string]interface{})
	}
	b.Properties[key] = value
}

// Property answers the named property and whether it is present.
func (b *Bond) Property(key string) (interface{}, bool) {
	v, ok := b.Properties[key]
	return v, ok
}
