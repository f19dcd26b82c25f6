package textutil

import "sort"

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Scored pairs a document index with its similarity to a query.
type Scored struct {
	Index int
	Score float64
}

// Rank scores each document against query using TF-IDF weights drawn from the
// documents themselves. Documents with no overlap are omitted. Results are
// ordered by descending score, then by index.
func Rank(query string, documents []string) []Scored {
	corpus := NewCorpus()
	prints := make([]*Fingerprint, len(documents))
	for i, doc := range documents {
		prints[i] = NewFingerprint(doc)
		corpus.Add(prints[i])
	}
	idf := corpus.IDF()
	q := NewFingerprint(query).WithIDF(idf)
	if q == nil {
		return nil
	}

	var scored []Scored
	for i, fp := range prints {
		if s := CosineSimilarity(q, fp.WithIDF(idf)); s > 0 {
			scored = append(scored, Scored{Index: i, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}
