package molgraph

import "fmt"

// ElementInfo holds the essential chemical information of a natural element,
// keyed by atomic number. Grounded on RxnWeaver's common/element.go Element
// struct, trimmed to the fields the extraction core actually consults.
type ElementInfo struct {
	Number  uint8
	Symbol  string
	Name    string
	Weight  float64
	Valence int8
}

// periodicTable is a small subset of elements sufficient for organic and
// carbohydrate chemistry. Not indexed by atomic number (the list skips
// elements); ElementByNumber searches it by Number. Entry 0 is an empty
// placeholder.
var periodicTable = []ElementInfo{
	{},
	{Number: 1, Symbol: "H", Name: "Hydrogen", Weight: 1.008, Valence: 1},
	{Number: 2, Symbol: "He", Name: "Helium", Weight: 4.003, Valence: 0},
	{Number: 5, Symbol: "B", Name: "Boron", Weight: 10.81, Valence: 3},
	{Number: 6, Symbol: "C", Name: "Carbon", Weight: 12.011, Valence: 4},
	{Number: 7, Symbol: "N", Name: "Nitrogen", Weight: 14.007, Valence: 3},
	{Number: 8, Symbol: "O", Name: "Oxygen", Weight: 15.999, Valence: 2},
	{Number: 9, Symbol: "F", Name: "Fluorine", Weight: 18.998, Valence: 1},
	{Number: 11, Symbol: "Na", Name: "Sodium", Weight: 22.990, Valence: 1},
	{Number: 12, Symbol: "Mg", Name: "Magnesium", Weight: 24.305, Valence: 2},
	{Number: 15, Symbol: "P", Name: "Phosphorus", Weight: 30.974, Valence: 3},
	{Number: 16, Symbol: "S", Name: "Sulfur", Weight: 32.06, Valence: 2},
	{Number: 17, Symbol: "Cl", Name: "Chlorine", Weight: 35.45, Valence: 1},
	{Number: 19, Symbol: "K", Name: "Potassium", Weight: 39.098, Valence: 1},
	{Number: 20, Symbol: "Ca", Name: "Calcium", Weight: 40.078, Valence: 2},
	{Number: 35, Symbol: "Br", Name: "Bromine", Weight: 79.904, Valence: 1},
	{Number: 53, Symbol: "I", Name: "Iodine", Weight: 126.904, Valence: 1},
}

var symbolToNumber = func() map[string]uint8 {
	m := make(map[string]uint8, len(periodicTable))
	for _, e := range periodicTable {
		if e.Symbol != "" {
			m[e.Symbol] = e.Number
		}
	}
	return m
}()

// ElementByNumber answers the element info for the given atomic number.
// Answers the zero-value ElementInfo if the number is unknown.
func ElementByNumber(number uint8) ElementInfo {
	for _, e := range periodicTable {
		if e.Number == number {
			return e
		}
	}
	return ElementInfo{}
}

// ElementBySymbol answers the element info for the given symbol, and
// whether it was found.
func ElementBySymbol(symbol string) (ElementInfo, bool) {
	n, ok := symbolToNumber[symbol]
	if !ok {
		return ElementInfo{}, false
	}
	return ElementByNumber(n), true
}

// AtomicWeight answers the atomic weight for the given atomic number,
// falling back to 0 for unknown elements (pseudo atoms, etc.).
func AtomicWeight(number uint8) float64 {
	return ElementByNumber(number).Weight
}

func (e ElementInfo) String() string {
	return fmt.Sprintf("%s (Z=%d, weight=%.3f, valence=%d)", e.Name, e.Number, e.Weight, e.Valence)
}
