package textsim

import (
	"math"
	"reflect"
	"testing"
)

func TestVectorize_Length(t *testing.T) {
	v := BuildVocabulary([]string{"foo bar", "baz"})
	vec := v.Vectorize("foo")
	if len(vec) != v.Size() {
		t.Errorf("len = %d, want %d", len(vec), v.Size())
	}
}

func TestVectorize_EmptyVocabulary(t *testing.T) {
	v := BuildVocabulary(nil)
	if vec := v.Vectorize("foo bar"); len(vec) != 0 {
		t.Errorf("empty vocabulary vector = %v, want empty", vec)
	}
}

func TestVectorize_EmptyTextFullLengthZeroVector(t *testing.T) {
	v := BuildVocabulary([]string{"foo bar baz"})
	vec := v.Vectorize("")
	if len(vec) != 3 {
		t.Fatalf("len = %d, want 3", len(vec))
	}
	for i, x := range vec {
		if x != 0 {
			t.Errorf("vec[%d] = %v, want 0", i, x)
		}
	}
}

func TestVectorize_Deterministic(t *testing.T) {
	v := BuildVocabulary([]string{"return err", "if err != nil"})
	a := v.Vectorize("if err != nil")
	b := v.Vectorize("if err != nil")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("vectors differ: %v vs %v", a, b)
	}
}

func TestVectorize_SmoothedWeights(t *testing.T) {
	// "foo" appears in both documents, "bar" in one.
	v := BuildVocabulary([]string{"foo bar", "foo"})
	vec := v.Vectorize("foo bar")

	// tf = 1/2 for each token; idf(foo) = ln(3/3)+1 = 1, idf(bar) = ln(3/2)+1.
	wantFoo := 0.5 * 1.0
	wantBar := 0.5 * (math.Log(3.0/2.0) + 1)

	if got := vec[v.TokenIndex["foo"]]; math.Abs(got-wantFoo) > 1e-12 {
		t.Errorf("weight(foo) = %v, want %v", got, wantFoo)
	}
	if got := vec[v.TokenIndex["bar"]]; math.Abs(got-wantBar) > 1e-12 {
		t.Errorf("weight(bar) = %v, want %v", got, wantBar)
	}
}

func TestVectorize_UnknownTokensIgnored(t *testing.T) {
	v := BuildVocabulary([]string{"foo"})
	vec := v.Vectorize("foo unseen tokens")
	if len(vec) != 1 {
		t.Fatalf("len = %d, want 1", len(vec))
	}
	if vec[0] <= 0 {
		t.Errorf("weight(foo) = %v, want > 0", vec[0])
	}
}
