package chart

// Normalize rescales value linearly from [min, max] to [0, 1], clamping
// out-of-range input. An empty range (max <= min) normalizes to 0, the
// same fallback every chart type uses.
func Normalize(value, min, max float64) float64 {
	if max <= min {
		return 0
	}

	n := (value - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// MinMax returns the smallest and largest of values. Both are 0 for an
// empty input.
func MinMax(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
