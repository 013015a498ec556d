package textsim

import "math"

// Vectorize converts text into a TF-IDF weighted vector over the
// vocabulary. The result has one entry per vocabulary token, zero for
// tokens absent from the text.
//
// An empty vocabulary yields nil; a text that tokenizes to nothing
// against a non-empty vocabulary yields a full-length zero vector (an
// empty line is not the same as "no feature space"). Tokens the
// vocabulary has never seen are ignored.
func (v *Vocabulary) Vectorize(text string) []float64 {
	if v.Size() == 0 {
		return nil
	}
	vec := make([]float64, v.Size())

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for tok, n := range counts {
		idx, ok := v.TokenIndex[tok]
		if !ok {
			continue
		}
		tf := float64(n) / total
		// Smoothed idf: the +1 offsets keep the ratio positive and
		// give a minimum weight of 1 even for ubiquitous tokens.
		idf := math.Log(float64(v.DocCount+1)/float64(v.DocFreq[idx]+1)) + 1
		vec[idx] = tf * idf
	}
	return vec
}
