package book_rec_util

import (
	"math"
	"sort"

	"github.com/Super-Badmen-Viper/BookRec/domain/domain_util"
)

// SparseVector 按词表下标升序排列的稀疏向量
type SparseVector struct {
	Index  []int
	Weight []float64
}

// TfidfVectorizer 词表与IDF只基于本次输入的文档集合
type TfidfVectorizer struct {
	stopWords  map[string]bool
	Vocabulary map[string]int
	IDF        []float64
}

func NewTfidfVectorizer() *TfidfVectorizer {
	return &TfidfVectorizer{
		stopWords: domain_util.MustLoadStopWords(domain_util.StopWordsTFIDF),
	}
}

// FitTransform 原始词频 × 平滑IDF（ln((1+n)/(1+df))+1），再做L2归一化。
// 词表为空时所有向量均为零向量。
func (v *TfidfVectorizer) FitTransform(docs []string) []SparseVector {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tc := make(map[string]int)
		for _, term := range Terms(doc) {
			if v.stopWords[term] {
				continue
			}
			tc[term]++
		}
		for term := range tc {
			df[term]++
		}
		counts[i] = tc
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i, tc := range counts {
		vec := SparseVector{
			Index:  make([]int, 0, len(tc)),
			Weight: make([]float64, 0, len(tc)),
		}
		for term := range tc {
			vec.Index = append(vec.Index, v.Vocabulary[term])
		}
		sort.Ints(vec.Index)

		norm := 0.0
		for _, idx := range vec.Index {
			w := float64(tc[terms[idx]]) * v.IDF[idx]
			vec.Weight = append(vec.Weight, w)
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for k := range vec.Weight {
				vec.Weight[k] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func dot(a, b SparseVector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(a.Index) && j < len(b.Index) {
		switch {
		case a.Index[i] == b.Index[j]:
			sum += a.Weight[i] * b.Weight[j]
			i++
			j++
		case a.Index[i] < b.Index[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

func magnitude(a SparseVector) float64 {
	return math.Sqrt(dot(a, a))
}

// CosineSimilarity 任一向量为零向量时相似度为0
func CosineSimilarity(a, b SparseVector) float64 {
	ma, mb := magnitude(a), magnitude(b)
	if ma == 0 || mb == 0 {
		return 0
	}
	return dot(a, b) / (ma * mb)
}

// SimilarityMatrix 两两余弦相似度，对称矩阵
func SimilarityMatrix(vectors []SparseVector) [][]float64 {
	matrix := make([][]float64, len(vectors))
	for i := range matrix {
		matrix[i] = make([]float64, len(vectors))
	}
	for i := range vectors {
		for j := i; j < len(vectors); j++ {
			s := CosineSimilarity(vectors[i], vectors[j])
			matrix[i][j] = s
			matrix[j][i] = s
		}
	}
	return matrix
}
