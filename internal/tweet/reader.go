package tweet

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/tidwall/gjson"

	"redcarpet/internal/logging"
)

// Reader streams tweets out of a corpus file. The corpus is either a plain
// JSON array (gg2013.json) or a zip archive whose first entry is that array
// (gg2013.json.zip).
type Reader struct {
	path   string
	dedupe bool
	seen   map[uint64]struct{}

	// Dropped counts tweets rejected by deduplication in the last read.
	Dropped int
}

// NewReader creates a Reader for the given corpus file. When dedupe is on,
// tweets whose lowercased text hashes to an already-seen value are dropped.
func NewReader(path string, dedupe bool) *Reader {
	return &Reader{path: path, dedupe: dedupe, seen: make(map[uint64]struct{})}
}

// Each decodes the corpus and calls fn for every tweet in order. The corpus
// fits comfortably in memory (a single ceremony's firehose slice), so the
// whole file is read at once and gjson iterates without re-parsing.
func (r *Reader) Each(fn func(Tweet) error) error {
	timer := logging.StartTimer(logging.CategoryCorpus, "Reader.Each")
	defer timer.Stop()

	data, err := r.load()
	if err != nil {
		return err
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return fmt.Errorf("corpus %s: expected a JSON array", r.path)
	}

	r.Dropped = 0
	var iterErr error
	parsed.ForEach(func(_, item gjson.Result) bool {
		tw := FromJSON(item)
		if tw.Text == "" {
			return true
		}
		if r.dedupe {
			sum := xxhash.Sum64String(strings.ToLower(tw.Text))
			if _, dup := r.seen[sum]; dup {
				r.Dropped++
				return true
			}
			r.seen[sum] = struct{}{}
		}
		if err := fn(tw); err != nil {
			iterErr = err
			return false
		}
		return true
	})
	if iterErr != nil {
		return iterErr
	}

	logging.Corpus("read %s, %d duplicates dropped", r.path, r.Dropped)
	return nil
}

// ReadAll decodes the corpus into a slice.
func (r *Reader) ReadAll() ([]Tweet, error) {
	var tweets []Tweet
	err := r.Each(func(t Tweet) error {
		tweets = append(tweets, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *Reader) load() ([]byte, error) {
	if strings.HasSuffix(r.path, ".zip") {
		return readZip(r.path)
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return data, nil
}

func readZip(path string) ([]byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus archive: %w", err)
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		return nil, fmt.Errorf("corpus archive %s is empty", path)
	}

	f, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open archive entry: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive entry: %w", err)
	}
	return data, nil
}
