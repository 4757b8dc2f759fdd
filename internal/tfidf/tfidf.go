// Package tfidf implements sparse lexical term weighting: tokenization,
// term frequency, smoothed inverse document frequency, and cosine
// similarity over the resulting weighted vectors.
package tfidf

import (
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// Vector maps a term to its non-negative weight. Absent terms are
// implicitly zero.
type Vector map[string]float64

// Tokenize splits text into lowercase alphanumeric tokens. Boundaries
// fall at any non-alphanumeric character; empty text yields no tokens.
func Tokenize(text string) []string {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// TermFrequency weighs each term by its count over the total token
// count. The divisor floors at 1 so an empty sequence stays safe.
func TermFrequency(tokens []string) Vector {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	if total == 0 {
		total = 1.0
	}

	tf := make(Vector, len(counts))
	for term, n := range counts {
		tf[term] = float64(n) / total
	}
	return tf
}

// InverseDocFrequency computes idf(t) = ln((N+1)/(df(t)+1)) + 1 over the
// corpus. The smoothing keeps every idf strictly positive, so ubiquitous
// terms are bounded but never zeroed out.
func InverseDocFrequency(corpus [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(corpus))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((n+1)/(float64(count)+1)) + 1.0
	}
	return idf
}

// Weight multiplies term frequencies by their idf. Terms missing from
// the idf map keep an explicit zero weight.
func Weight(tf Vector, idf map[string]float64) Vector {
	weighted := make(Vector, len(tf))
	for term, freq := range tf {
		weighted[term] = freq * idf[term]
	}
	return weighted
}

// Cosine returns the cosine similarity of two vectors, in [0,1] for
// non-negative weights. Either vector having zero norm yields exactly 0.
func Cosine(a, b Vector) float64 {
	var dot float64
	for term, av := range a {
		dot += av * b[term]
	}

	na := norm(a)
	nb := norm(b)
	if na == 0.0 || nb == 0.0 {
		return 0.0
	}
	return dot / (na * nb)
}

func norm(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}
