package diffparse

import (
	"reflect"
	"testing"
)

const sampleDiff = `diff --git a/foo.go b/foo.go
index 1111111..2222222 100644
--- a/foo.go
+++ b/foo.go
@@ -1,3 +1,4 @@
 package foo
+func Added() {}
-func Removed() {}
+var x = 1
diff --git a/bar.js b/bar.js
--- a/bar.js
+++ b/bar.js
@@ -0,0 +1,1 @@
+const y = 2;
`

func TestAddedLines_PerFile(t *testing.T) {
	got := AddedLines(sampleDiff)

	wantFoo := []string{"func Added() {}", "var x = 1"}
	if !reflect.DeepEqual(got["foo.go"], wantFoo) {
		t.Errorf("foo.go = %v, want %v", got["foo.go"], wantFoo)
	}
	wantBar := []string{"const y = 2;"}
	if !reflect.DeepEqual(got["bar.js"], wantBar) {
		t.Errorf("bar.js = %v, want %v", got["bar.js"], wantBar)
	}
	if len(got) != 2 {
		t.Errorf("files = %d, want 2", len(got))
	}
}

func TestAddedLines_HeaderNotCollected(t *testing.T) {
	got := AddedLines("+++ b/foo.go\n+real line\n")
	if !reflect.DeepEqual(got["foo.go"], []string{"real line"}) {
		t.Errorf("foo.go = %v, want the single real line", got["foo.go"])
	}
}

func TestAddedLines_BeforeFirstHeader(t *testing.T) {
	got := AddedLines("+orphan line\n+++ b/foo.go\n+named line\n")
	if !reflect.DeepEqual(got[""], []string{"orphan line"}) {
		t.Errorf("orphan key = %v, want [orphan line]", got[""])
	}
	if !reflect.DeepEqual(got["foo.go"], []string{"named line"}) {
		t.Errorf("foo.go = %v, want [named line]", got["foo.go"])
	}
}

func TestAddedLines_DeletionsIgnored(t *testing.T) {
	got := AddedLines("+++ b/foo.go\n-gone\n context\n")
	if len(got) != 0 {
		t.Errorf("deletion-only diff = %v, want empty", got)
	}
}

func TestAddedLines_Empty(t *testing.T) {
	if got := AddedLines(""); len(got) != 0 {
		t.Errorf("empty diff = %v, want empty map", got)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(map[string][]string{"a.go": {"one", "two"}})
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("flatten = %v, want [one two]", got)
	}
	if got := Flatten(nil); len(got) != 0 {
		t.Errorf("flatten(nil) = %v, want none", got)
	}
}
