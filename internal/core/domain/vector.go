package domain

import "math"

// CosineSimilarity computes the normalized dot product of two vectors.
// The result is in [-1, 1]. When either vector has zero magnitude the
// similarity is defined as 0, which also guards division by zero.
//
// This is the single similarity primitive shared by duplicate detection
// and relevance ranking.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}

	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
