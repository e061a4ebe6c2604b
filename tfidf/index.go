// Package tfidf implements vector-space retrieval over the documentation
// corpus. Documents are embedded once at build time; queries are embedded
// against the frozen vocabulary and ranked by cosine similarity.
package tfidf

import (
	"math"
	"sort"
	"time"

	"github.com/askcdp/cdpdoc"
	"github.com/cespare/xxhash/v2"
)

// Entry is one indexed document with its sparse tf-idf vector.
type Entry struct {
	Document *cdpdoc.Document `json:"document"`
	Vector   map[int]float64  `json:"vector"`
	Norm     float64          `json:"norm"`
}

// Index is an immutable tf-idf index over the documentation corpus.
// Term IDs are assigned from the sorted vocabulary, so building twice
// from the same corpus yields identical vectors.
type Index struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Entries    []Entry        `json:"entries"`
	CorpusHash uint64         `json:"corpusHash"`
	BuiltAt    time.Time      `json:"builtAt"`
}

// Build constructs an index from the corpus. Document text is the title
// followed by the content so that title terms carry weight. Returns
// EINVALID for an empty corpus.
func Build(docs []*cdpdoc.Document, tokenizer cdpdoc.Tokenizer) (*Index, error) {
	if len(docs) == 0 {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "index requires at least one document")
	}

	tokenLists := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenizer.Tokenize(doc.Title + ". " + doc.Content)
		tokenLists[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	idx := &Index{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		Entries:    make([]Entry, len(docs)),
		CorpusHash: CorpusHash(docs),
		BuiltAt:    time.Now().UTC(),
	}
	n := float64(len(docs))
	for id, term := range terms {
		idx.Vocabulary[term] = id
		idx.IDF[id] = math.Log(n / float64(df[term]))
	}

	for i, doc := range docs {
		vec, norm := idx.Embed(tokenLists[i])
		idx.Entries[i] = Entry{Document: doc, Vector: vec, Norm: norm}
	}
	return idx, nil
}

// Embed converts a token list into a sparse tf-idf vector over the index
// vocabulary and its Euclidean norm. Tokens outside the vocabulary are
// ignored; a fully out-of-vocabulary list yields an empty vector with
// norm zero.
func (idx *Index) Embed(tokens []string) (map[int]float64, float64) {
	counts := make(map[int]int)
	for _, tok := range tokens {
		if id, ok := idx.Vocabulary[tok]; ok {
			counts[id]++
		}
	}

	vec := make(map[int]float64, len(counts))
	var sum float64
	for id, count := range counts {
		w := float64(count) * idx.IDF[id]
		if w == 0 {
			continue
		}
		vec[id] = w
		sum += w * w
	}
	return vec, math.Sqrt(sum)
}

// CorpusHash fingerprints the corpus the index was built from. The fs
// store compares it against the live corpus to detect a stale index.
func CorpusHash(docs []*cdpdoc.Document) uint64 {
	h := xxhash.New()
	for _, doc := range docs {
		_, _ = h.WriteString(doc.ID)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(doc.ContentHash)
		_, _ = h.WriteString("\x00")
	}
	return h.Sum64()
}
