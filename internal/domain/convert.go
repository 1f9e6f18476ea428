package domain

const kgPerLb = 0.45359237

// ConvertWeight converts a weight value between "kg" and "lb". Unrecognised
// unit pairs return v unchanged.
func ConvertWeight(v float64, from, to string) float64 {
	switch {
	case from == to:
		return v
	case from == "kg" && to == "lb":
		return v / kgPerLb
	case from == "lb" && to == "kg":
		return v * kgPerLb
	default:
		return v
	}
}
