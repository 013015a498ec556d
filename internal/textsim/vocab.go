package textsim

// Vocabulary is the shared feature space for one attribution run.
// Token indices are assigned in first-seen order and stay stable for
// the lifetime of the vocabulary; DocFreq[i] counts the documents that
// contain the token with index i at least once.
//
// A vocabulary is built once over the union of both line corpora and
// never mutated afterwards, so vectors produced from it are directly
// comparable. It is never persisted across runs.
type Vocabulary struct {
	TokenIndex map[string]int
	DocFreq    []int
	DocCount   int
}

// BuildVocabulary scans the documents and returns a populated
// vocabulary. Repeated tokens within one document count once toward
// document frequency. An empty corpus yields a vocabulary of size 0.
func BuildVocabulary(docs []string) *Vocabulary {
	v := &Vocabulary{TokenIndex: make(map[string]int)}
	for _, doc := range docs {
		v.DocCount++
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			idx, ok := v.TokenIndex[tok]
			if !ok {
				idx = len(v.DocFreq)
				v.TokenIndex[tok] = idx
				v.DocFreq = append(v.DocFreq, 0)
			}
			v.DocFreq[idx]++
		}
	}
	return v
}

// Size returns the number of distinct tokens in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.DocFreq)
}
