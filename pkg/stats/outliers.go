package stats

// Outliers returns the values lying strictly outside the Tukey fences of s,
// in input order.
func Outliers(values []float64, s Summary) []float64 {
	var out []float64
	for _, v := range values {
		if v < s.LowerFence || v > s.UpperFence {
			out = append(out, v)
		}
	}
	return out
}
