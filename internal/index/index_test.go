package index

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddAccumulatesCounts(t *testing.T) {
	idx := New(10)
	idx.Add("dog", 1)
	idx.Add("dog", 1)
	idx.Add("cat", 1)
	idx.Add("cat", 2)

	if got := idx.Get("dog")[1]; got != 2 {
		t.Errorf("dog[1] = %d, want 2", got)
	}
	if got := idx.Get("cat")[1]; got != 1 {
		t.Errorf("cat[1] = %d, want 1", got)
	}
	if got := idx.Get("cat")[2]; got != 1 {
		t.Errorf("cat[2] = %d, want 1", got)
	}
}

func TestAddIgnoresInvalidInputs(t *testing.T) {
	idx := New(0)
	idx.Add("", 1)
	idx.Add("word", 0)
	idx.Add("word", -1)

	if idx.Words() != 0 {
		t.Errorf("Words() = %d, want 0 after invalid Add calls", idx.Words())
	}
}

func TestSetIgnoresNegativeCount(t *testing.T) {
	idx := New(0)
	idx.Set("word", 1, -5)
	if idx.Get("word") != nil {
		t.Errorf("Set with negative count should be a no-op, got %v", idx.Get("word"))
	}
}

func TestGetMissingWordReturnsNil(t *testing.T) {
	idx := New(0)
	if postings := idx.Get("missing"); postings != nil {
		t.Errorf("Get(missing word) = %v, want nil", postings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	idx := New(0)
	idx.Add("dog", 1)
	idx.Add("dog", 1)
	idx.Add("cat", 1)
	idx.Add("cat", 2)
	idx.Add("bird", 2)

	dir := t.TempDir()
	path := filepath.Join(dir, "index.dat")
	idx.Save(path)

	loaded, ok := Load(path)
	if !ok {
		t.Fatalf("Load(%s) failed", path)
	}

	for _, tc := range []struct {
		word  string
		docID int
		want  int
	}{
		{"dog", 1, 2},
		{"cat", 1, 1},
		{"cat", 2, 1},
		{"bird", 2, 1},
	} {
		if got := loaded.Get(tc.word)[tc.docID]; got != tc.want {
			t.Errorf("loaded %s[%d] = %d, want %d", tc.word, tc.docID, got, tc.want)
		}
	}
}

func TestSaveIsNoOpOnBadPath(t *testing.T) {
	idx := New(0)
	idx.Add("dog", 1)
	idx.Save(filepath.Join("no", "such", "directory", "index.dat"))
	// No panic, no error return: the save contract swallows I/O failure.
}

func TestLoadMissingFileReturnsFalse(t *testing.T) {
	if _, ok := Load(filepath.Join(t.TempDir(), "missing.dat")); ok {
		t.Error("Load of missing file should return ok=false")
	}
}

func TestLoadToleratesTrailingSpace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.dat")
	if err := os.WriteFile(path, []byte("dog 1 2 \ncat 1 1 2 1 \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, ok := Load(path)
	if !ok {
		t.Fatal("Load failed")
	}
	if got := idx.Get("dog")[1]; got != 2 {
		t.Errorf("dog[1] = %d, want 2", got)
	}
	if got := idx.Get("cat")[2]; got != 1 {
		t.Errorf("cat[2] = %d, want 1", got)
	}
}
