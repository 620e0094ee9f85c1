package molgraph

// Builder provides fluent, chainable construction of a Molecule, the way
// cx-luo-go-chem's molecule.AddAtom/AddBond/SetCharge/SetIsotope call
// chain builds up a molecule one mutation at a time (molecule/molecule_builder.go),
// generalized here to return the Builder itself (rather than a raw
// handle/error pair) so fixture molecules in tests can be built in one
// expression. Errors are reported through Err rather than propagated
// per-call, matching the "configured once at construction time" setup
// phase described in spec.md §5 — construction is not meant to run
// concurrently with itself.
type Builder struct {
	mol  *Molecule
	last *Atom
	err  error
}

// NewBuilder starts building a fresh, empty molecule.
func NewBuilder(name string) *Builder {
	return &Builder{mol: NewMolecule(name)}
}

// Atom adds an atom of the given element and remembers it as the builder's
// current atom, the implicit source for the next Bond call.
func (b *Builder) Atom(atomicNumber uint8) *Builder {
	if b.err != nil {
		return b
	}
	b.last = b.mol.NewAtom(atomicNumber)
	return b
}

// Pseudo adds an attachment-marker pseudo-atom and remembers it as the
// builder's current atom.
func (b *Builder) Pseudo(symbol string, attachPointNum int) *Builder {
	if b.err != nil {
		return b
	}
	b.last = b.mol.NewPseudoAtom(symbol, attachPointNum)
	return b
}

// Charge sets the formal charge on the current atom.
func (b *Builder) Charge(charge int) *Builder {
	if b.err != nil || b.last == nil {
		return b
	}
	b.last.FormalCharge = charge
	return b
}

// Aromatic marks the current atom as aromatic.
func (b *Builder) Aromatic() *Builder {
	if b.err != nil || b.last == nil {
		return b
	}
	b.last.IsAromatic = true
	return b
}

// ImplicitH sets the explicit implicit-hydrogen count on the current atom.
func (b *Builder) ImplicitH(count int) *Builder {
	if b.err != nil || b.last == nil {
		return b
	}
	b.last.ImplicitHCount = count
	return b
}

// BondTo adds a bond of the given order from the builder's current atom
// to the given handle, then advances the current atom to the bond's
// far end so chained bonds read as a path: a.Atom(C).BondTo(o, B).BondTo(s, C2)...
func (b *Builder) BondTo(order BondOrder, to AtomHandle) *Builder {
	if b.err != nil || b.last == nil {
		return b
	}
	bond := b.mol.NewBond(b.last.handle, to, order)
	b.last = b.mol.Atom(bond.OtherEnd(b.last.handle))
	return b
}

// Ring marks the bond between the current atom and the given handle as
// an in-ring bond, for callers building a ring fixture directly rather
// than via ring perception.
func (b *Builder) Ring(to AtomHandle) *Builder {
	if b.err != nil || b.last == nil {
		return b
	}
	if bond := b.mol.BondBetween(b.last.handle, to); bond != nil {
		bond.IsInRing = true
	}
	return b
}

// Current answers the handle of the builder's current atom.
func (b *Builder) Current() AtomHandle {
	if b.last == nil {
		return InvalidAtom
	}
	return b.last.handle
}

// Err answers any error recorded during construction.
func (b *Builder) Err() error { return b.err }

// Build answers the assembled molecule, or the recorded error.
func (b *Builder) Build() (*Molecule, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.mol, nil
}
