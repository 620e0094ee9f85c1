package molgraph

// AtomHandle is a stable identity for an atom within the Molecule arena
// that owns it. Handles are never reused, even after the atom they name is
// removed, so foreign keys (stereo carriers, original→copy maps) never
// dangle onto an unrelated atom. Grounded on the arena+index rewrite
// strategy from spec.md §9's design notes, generalizing RxnWeaver's
// bitset-indexed atom/bond IDs (data/molecule/atom.go) to an explicit
// handle type.
type AtomHandle int

// InvalidAtom is the zero-value-free sentinel for "no atom".
const InvalidAtom AtomHandle = -1

// Point2D and Point3D are optional atom coordinates, per spec.md §3.
type Point2D struct{ X, Y float64 }
type Point3D struct{ X, Y, Z float64 }

// UnsetH and UnsetValence are the sentinels spec.md §3 calls out for
// "non-negative integer or UNSET" / "integer or UNSET" atom fields.
const (
	UnsetH       = -1
	UnsetValence = -1
)

// Atom represents a chemical atom, or a pseudo-atom attachment marker.
//
// Property map values are restricted to primitive scalars (string, int,
// bool) per spec.md §3, so that DeeperCopy can copy them verbatim without
// needing to know their concrete type.
type Atom struct {
	handle AtomHandle
	mol    *Molecule

	AtomicNumber    uint8
	IsPseudo        bool
	PseudoSymbol    string
	AttachPointNum  int
	FormalCharge    int
	ImplicitHCount  int // UnsetH if not determined
	IsAromatic      bool
	Valence         int // UnsetValence if not determined
	AtomTypeName    string
	Point2D         *Point2D
	Point3D         *Point3D
	Flags           AtomFlag
	SingleElectrons int
	LonePairCount   int
	Properties      map[string]interface{}
}

// Handle answers this atom's stable handle.
func (a *Atom) Handle() AtomHandle { return a.handle }

// Parent answers the containing molecule of this atom.
func (a *Atom) Parent() *Molecule { return a.mol }

// IsAttachmentMarker answers whether this atom is an "R" pseudo-atom used
// to mark a broken bond, per spec.md §3.
func (a *Atom) IsAttachmentMarker() bool {
	return a.IsPseudo && a.PseudoSymbol == "R"
}

// SetProperty stores a primitive-scalar property on this atom. Panics on
// a non-primitive value: this is a programmer error, not a recoverable
// one, per spec.md §3's restriction to string/int/bool.
func (a *Atom) SetProperty(key string, value interface{}) {
	switch value.(type) {
	case string, int, bool:
	default:
		panic("molgraph: atom property values must be string, int or bool")
	}
	if a.Properties == nil {
		a.Properties = make(map[string]interface{})
	}
	a.Properties[key] = value
}

// Property answers the named property and whether it is present.
func (a *Atom) Property(key string) (interface{}, bool) {
	v, ok := a.Properties[key]
	return v, ok
}

// BoolProperty answers the named property coerced to bool, defaulting to
// false when absent or of a different type.
func (a *Atom) BoolProperty(key string) bool {
	v, ok := a.Properties[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IsInRing answers whether this atom has at least one ring bond incident
// on it. Ring *membership* (as opposed to this derived flag) is computed
// on demand by sugardetect's ring perception, per spec.md §3: the core
// data model carries only the per-bond is_in_ring flag.
func (a *Atom) IsInRing() bool {
	for _, b := range a.mol.BondsOf(a.handle) {
		if b.IsInRing {
			return true
		}
	}
	return false
}

// SpiroMarkerPropertyKey is the property-map key the Detector stamps on an
// atom that is a spiro ring junction between a sugar ring and a non-sugar
// ring, per spec.md §3. The Extractor reads it back via HasSpiroMarker to
// decide that the atom must be duplicated on both sides.
const SpiroMarkerPropertyKey = "mortar.sugarSpiroMarker"

// HasSpiroMarker answers whether the Detector has stamped this atom as a
// spiro junction between a sugar ring and a non-sugar ring.
func (a *Atom) HasSpiroMarker() bool { return a.BoolProperty(SpiroMarkerPropertyKey) }

// SetSpiroMarker stamps or clears the spiro-marker property.
func (a *Atom) SetSpiroMarker(marked bool) { a.SetProperty(SpiroMarkerPropertyKey, marked) }
