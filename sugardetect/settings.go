// Package sugardetect implements the "sugar pattern detector" named in
// spec.md §4.2: a capability the Extractor owns by composition (per
// spec.md §9's design note preferring composition over the source's
// subclassing), classifying ring and acyclic-chain substructures as
// candidate sugars and removing them from a molecule in place.
package sugardetect

// Settings is the read-only configuration surface of the Detector, per
// spec.md §4.2/§6. Built via functional options the way
// cx-luo-go-chem's AtomBuilder/BondBuilder chain construction calls
// (molecule/atom_builder.go, molecule/bond_builder.go), generalized from
// per-atom chains to a single options struct, since the Detector has no
// analogous "one object per call" shape to chain against.
type Settings struct {
	removeOnlyTerminalSugars       bool
	preservationModeThreshold      int
	detectSpiroRingsAsCircularSugars bool
	linearSugarCandidateMinSize    int
}

// Option configures a Settings value.
type Option func(*Settings)

// WithTerminalOnly sets the remove-only-terminal-sugars policy: when true,
// a candidate sugar is only removed if doing so leaves the remainder of
// the molecule connected (spec.md glossary: "Terminal sugar").
func WithTerminalOnly(terminalOnly bool) Option {
	return func(s *Settings) { s.removeOnlyTerminalSugars = terminalOnly }
}

// WithPreservationThreshold sets the minimum heavy-atom count a fragment
// must have to be kept as a standalone sugar (spec.md glossary:
// "Preservation threshold").
func WithPreservationThreshold(minHeavyAtoms int) Option {
	return func(s *Settings) { s.preservationModeThreshold = minHeavyAtoms }
}

// WithSpiroRingsAsCircularSugars sets the detect-spiro-rings-as-circular-
// sugars policy described in spec.md §3/§4.2.
func WithSpiroRingsAsCircularSugars(enabled bool) Option {
	return func(s *Settings) { s.detectSpiroRingsAsCircularSugars = enabled }
}

// WithLinearSugarCandidateMinSize sets the minimum atom count an acyclic
// carbon chain must have to be considered a linear-sugar candidate.
func WithLinearSugarCandidateMinSize(minSize int) Option {
	return func(s *Settings) { s.linearSugarCandidateMinSize = minSize }
}

// NewSettings builds a Settings value from defaults overridden by opts.
// Defaults mirror MORTAR's SugarRemovalUtility defaults: terminal-only
// removal, a 5-heavy-atom preservation threshold, spiro rings NOT treated
// as circular sugars, and a 4-atom linear-sugar minimum.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		removeOnlyTerminalSugars:         true,
		preservationModeThreshold:        5,
		detectSpiroRingsAsCircularSugars: false,
		linearSugarCandidateMinSize:      4,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// RemoveOnlyTerminalSugars answers the terminal-only policy.
func (s Settings) RemoveOnlyTerminalSugars() bool { return s.removeOnlyTerminalSugars }

// DetectSpiroRingsAsCircularSugars answers the spiro policy.
func (s Settings) DetectSpiroRingsAsCircularSugars() bool {
	return s.detectSpiroRingsAsCircularSugars
}

// LinearSugarCandidateMinSizeSetting answers the configured linear-sugar
// minimum size, per the Extractor collaborator contract of spec.md §4.2.
func (s Settings) LinearSugarCandidateMinSizeSetting() int {
	return s.linearSugarCandidateMinSize
}

// IsTooSmallToPreserve answers whether a fragment of atomCount atoms falls
// below the preservation-mode threshold, per the Extractor collaborator contract of
// spec.md §4.2.
func (s Settings) IsTooSmallToPreserve(atomCount int) bool {
	return atomCount < s.preservationModeThreshold
}
