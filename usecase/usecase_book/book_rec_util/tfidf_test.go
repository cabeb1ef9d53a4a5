package book_rec_util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTfidfVectorizer_SmoothIDFAndL2Norm(t *testing.T) {
	v := NewTfidfVectorizer()
	vectors := v.FitTransform([]string{"apple banana", "Apple cherry"})

	require.Len(t, vectors, 2)
	assert.Equal(t, map[string]int{"apple": 0, "banana": 1, "cherry": 2}, v.Vocabulary)
	assert.InDelta(t, 1.0, v.IDF[0], 1e-12)
	assert.InDelta(t, math.Log(1.5)+1, v.IDF[1], 1e-12)

	assert.Equal(t, []int{0, 1}, vectors[0].Index)
	assert.Equal(t, []int{0, 2}, vectors[1].Index)
	for _, vec := range vectors {
		assert.InDelta(t, 1.0, magnitude(vec), 1e-12)
	}
}

func TestTfidfVectorizer_StopWordsAndShortTokens(t *testing.T) {
	v := NewTfidfVectorizer()
	v.FitTransform([]string{"The spice must flow, a b c"})

	_, hasThe := v.Vocabulary["the"]
	_, hasMust := v.Vocabulary["must"]
	_, hasB := v.Vocabulary["b"]
	assert.False(t, hasThe)
	assert.False(t, hasMust)
	assert.False(t, hasB)
	assert.Contains(t, v.Vocabulary, "spice")
	assert.Contains(t, v.Vocabulary, "flow")
}

func TestTfidfVectorizer_EmptyVocabulary(t *testing.T) {
	v := NewTfidfVectorizer()
	vectors := v.FitTransform([]string{"the", "a of"})

	matrix := SimilarityMatrix(vectors)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, matrix)
}

func TestSimilarityMatrix_SymmetricUnitDiagonal(t *testing.T) {
	v := NewTfidfVectorizer()
	matrix := SimilarityMatrix(v.FitTransform([]string{
		"desert planet spice",
		"desert island",
		"spice trade routes",
	}))

	for i := range matrix {
		assert.InDelta(t, 1.0, matrix[i][i], 1e-9)
		for j := range matrix {
			assert.Equal(t, matrix[i][j], matrix[j][i])
		}
	}
	assert.Greater(t, matrix[0][1], 0.0)
	assert.Equal(t, 0.0, matrix[1][2])
}

func TestCosineSimilarity_IdenticalText(t *testing.T) {
	v := NewTfidfVectorizer()
	vectors := v.FitTransform([]string{"sand worms", "sand worms", "ocean"})
	assert.InDelta(t, 1.0, CosineSimilarity(vectors[0], vectors[1]), 1e-12)
}
