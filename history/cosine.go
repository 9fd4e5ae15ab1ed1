package history

import "math"

// CosineDistance returns 1 minus the cosine similarity of a and b.
// Identical directions give 0, orthogonal vectors give 1. Mismatched
// lengths or a zero vector give the maximum distance so such turns are
// never selected.
func CosineDistance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
