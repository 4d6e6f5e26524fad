package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_Identity(t *testing.T) {
	v := []float32{0.3, -1.2, 4.5}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	v := []float32{1, 2, 3}
	neg := []float32{-1, -2, -3}
	assert.InDelta(t, -1.0, CosineSimilarity(v, neg), 1e-9)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	zero := []float32{0, 0, 0}
	v := []float32{1, 2, 3}

	assert.Equal(t, 0.0, CosineSimilarity(zero, v))
	assert.Equal(t, 0.0, CosineSimilarity(v, zero))
	assert.Equal(t, 0.0, CosineSimilarity(zero, zero))
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{0.1, 0.9, -0.4}
	b := []float32{2.0, -0.5, 0.7}
	assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarity_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{"parallel scaled", []float32{1, 1}, []float32{3, 3}, 1.0},
		{"45 degrees", []float32{1, 0}, []float32{1, 1}, 0.7071067811865475},
		{"empty vectors", []float32{}, []float32{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
