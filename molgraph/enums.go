package molgraph

// BondOrder enumerates the possible orders of a bond. Grounded on
// RxnWeaver's common/enums.go BondType, extended with Quadruple per
// spec.md §3.
type BondOrder uint8

const (
	BondOrderUnset BondOrder = iota
	BondOrderSingle
	BondOrderDouble
	BondOrderTriple
	BondOrderQuadruple
)

// numeric answers the valence weight contributed by this bond order.
func (o BondOrder) numeric() int {
	switch o {
	case BondOrderSingle:
		return 1
	case BondOrderDouble:
		return 2
	case BondOrderTriple:
		return 3
	case BondOrderQuadruple:
		return 4
	default:
		return 0
	}
}

// BondStereo enumerates the stereochemical annotation carried by a bond
// (as opposed to the richer StereoElement records used for tetrahedral and
// cis/trans configurations).
type BondStereo uint8

const (
	BondStereoNone BondStereo = iota
	BondStereoUp
	BondStereoDown
	BondStereoEither
)

// BondDisplay enumerates how a bond is rendered/annotated in the source
// document. Spec.md §3 calls out SOLID and CROSSED explicitly.
type BondDisplay uint8

const (
	BondDisplaySolid BondDisplay = iota
	BondDisplayCrossed
	BondDisplayDashed
	BondDisplayWedge
)

// StereoFocusKind distinguishes whether a stereo element's focus is an
// atom (tetrahedral) or a bond (double-bond geometry).
type StereoFocusKind uint8

const (
	StereoFocusAtom StereoFocusKind = iota
	StereoFocusBond
)

// StereoConfiguration enumerates the parity/configuration carried by a
// stereo element.
type StereoConfiguration uint8

const (
	StereoConfigurationNone StereoConfiguration = iota
	StereoConfigurationR
	StereoConfigurationS
	StereoConfigurationE
	StereoConfigurationZ
	StereoConfigurationOr
	StereoConfigurationAnd
)

// AtomFlag is a bitset of miscellaneous boolean atom attributes, mirroring
// the flag bitset named in spec.md §3. Kept as named bits rather than a
// grab-bag of bool fields so that Atom.Flags can be copied as one integer
// during deeper-copy.
type AtomFlag uint32

const (
	AtomFlagInRing AtomFlag = 1 << iota
	AtomFlagAromatic
	AtomFlagBridgehead
	// AtomFlagSpiro marks an atom that is a spiro junction between two
	// rings generically. The narrower "this spiro atom belongs to a sugar
	// ring" signal that the Detector hands to the Extractor is carried as
	// a property-map entry instead (see SpiroMarkerPropertyKey in
	// molgraph/atom.go), per spec.md §3's "a boolean property key (known
	// by both Detector and Extractor)".
	AtomFlagSpiro
)

// Has answers whether the given bit(s) are all set.
func (f AtomFlag) Has(bit AtomFlag) bool { return f&bit == bit }
