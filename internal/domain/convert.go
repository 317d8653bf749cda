package domain

const (
	kgToLb = 2.2046226218
	inToCm = 2.54
)

// Weight units accepted at the edges. Stored profiles are always in kg.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// Height units accepted at the edges. Stored profiles are always in cm.
const (
	UnitCm = "cm"
	UnitIn = "in"
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	switch {
	case from == to:
		return v
	case from == UnitKg && to == UnitLb:
		return v * kgToLb
	case from == UnitLb && to == UnitKg:
		return v / kgToLb
	}
	return v
}

// ConvertHeight converts a height value between "cm" and "in".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertHeight(v float64, from, to string) float64 {
	switch {
	case from == to:
		return v
	case from == UnitCm && to == UnitIn:
		return v / inToCm
	case from == UnitIn && to == UnitCm:
		return v * inToCm
	}
	return v
}
