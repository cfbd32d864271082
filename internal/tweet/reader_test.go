package tweet

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

const sampleCorpus = `[
	{"id": 1, "text": "Tina Fey is hosting", "user": {"id": 1, "screen_name": "a"}},
	{"id": 2, "text": "Argo wins!", "user": {"id": 2, "screen_name": "b"}},
	{"id": 3, "text": "argo WINS!", "user": {"id": 3, "screen_name": "c"}},
	{"id": 4, "text": "", "user": {"id": 4, "screen_name": "d"}}
]`

func writeCorpus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReaderSkipsEmptyText(t *testing.T) {
	r := NewReader(writeCorpus(t, "gg2013.json", sampleCorpus), false)
	tweets, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(tweets) != 3 {
		t.Fatalf("got %d tweets, want 3", len(tweets))
	}
	if tweets[0].ID != 1 || tweets[1].ID != 2 {
		t.Errorf("unexpected order: %v %v", tweets[0].ID, tweets[1].ID)
	}
}

func TestReaderDedupe(t *testing.T) {
	r := NewReader(writeCorpus(t, "gg2013.json", sampleCorpus), true)
	tweets, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	// "Argo wins!" and "argo WINS!" hash to the same lowercased text.
	if len(tweets) != 2 {
		t.Fatalf("got %d tweets, want 2", len(tweets))
	}
	if r.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", r.Dropped)
	}
}

func TestReaderZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gg2013.json.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	entry, err := zw.Create("gg2013.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entry.Write([]byte(sampleCorpus)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tweets, err := NewReader(path, false).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(tweets) != 3 {
		t.Errorf("got %d tweets, want 3", len(tweets))
	}
}

func TestReaderNotAnArray(t *testing.T) {
	r := NewReader(writeCorpus(t, "bad.json", `{"not": "an array"}`), false)
	if _, err := r.ReadAll(); err == nil {
		t.Fatal("expected error for non-array corpus")
	}
}

func TestReaderMissingFile(t *testing.T) {
	r := NewReader(filepath.Join(t.TempDir(), "nope.json"), false)
	if _, err := r.ReadAll(); err == nil {
		t.Fatal("expected error for missing corpus")
	}
}

func TestReaderStopsOnCallbackError(t *testing.T) {
	r := NewReader(writeCorpus(t, "gg2013.json", sampleCorpus), false)
	calls := 0
	err := r.Each(func(Tweet) error {
		calls++
		return os.ErrClosed
	})
	if err == nil {
		t.Fatal("expected callback error to propagate")
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}
