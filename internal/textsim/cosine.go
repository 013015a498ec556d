package textsim

import "math"

// Cosine returns the cosine similarity of two vectors. The shorter
// vector is treated as zero-padded to the longer length. If either
// vector has zero norm the result is 0, never NaN.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		var x, y float64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
