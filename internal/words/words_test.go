package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{name: "keeps five letter words", raw: []string{"crane", "slate"}, want: []string{"crane", "slate"}},
		{name: "lowercases before filtering", raw: []string{"Paris", "CRANE"}, want: []string{"crane", "paris"}},
		{name: "drops wrong length", raw: []string{"cat", "planes", "plane"}, want: []string{"plane"}},
		{name: "drops non letters", raw: []string{"can't", "cafés", "a-b-c", "trace"}, want: []string{"trace"}},
		{name: "trims and dedups", raw: []string{"  slate ", "slate", "Slate"}, want: []string{"slate"}},
		{name: "sorted", raw: []string{"trace", "crane", "plane"}, want: []string{"crane", "plane", "trace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewEmpty(t *testing.T) {
	_, err := New([]string{"cat", "dog", "elephant"})
	if !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("New with no usable words: err = %v, want ErrEmptyDictionary", err)
	}
}

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader("crane\nSlate\n\ntrace\nplanes\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3", d.Len())
	}
	if !d.Contains("SLATE") || !d.Contains("crane") {
		t.Fatalf("Contains missed a loaded word: %q", d.Words())
	}
	if d.Contains("planes") {
		t.Fatalf("Contains reported a six letter word")
	}
}

func TestWordsIsACopy(t *testing.T) {
	d, err := New([]string{"crane", "slate"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ws := d.Words()
	ws[0] = "zzzzz"
	if d.Contains("zzzzz") || d.Words()[0] != "crane" {
		t.Fatalf("mutating Words() leaked into the dictionary")
	}
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load(context.Background(), Source{})
	if err != nil {
		t.Fatalf("Load embedded failed: %v", err)
	}
	for _, w := range []string{"crane", "slate", "trace", "plane"} {
		if !d.Contains(w) {
			t.Errorf("embedded dictionary is missing %q", w)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("crane\nslate\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	d, err := Load(context.Background(), Source{FilePath: path})
	if err != nil {
		t.Fatalf("Load file failed: %v", err)
	}
	if got := d.Words(); !slices.Equal(got, []string{"crane", "slate"}) {
		t.Fatalf("Words = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), Source{FilePath: filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Fatalf("Load of a missing file succeeded")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")

	src, err := New([]string{"crane", "slate", "trace", "plane"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	n, err := SeedDB(ctx, db, src)
	if err != nil {
		t.Fatalf("SeedDB failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("SeedDB inserted %d rows, want 4", n)
	}
	n, err = SeedDB(ctx, db, src)
	if err != nil {
		t.Fatalf("second SeedDB failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("second SeedDB inserted %d rows, want 0", n)
	}
	db.Close()

	d, err := Load(ctx, Source{DBPath: path})
	if err != nil {
		t.Fatalf("Load db failed: %v", err)
	}
	if !slices.Equal(d.Words(), src.Words()) {
		t.Fatalf("Words = %q, want %q", d.Words(), src.Words())
	}
}

func TestLoadEmptyDB(t *testing.T) {
	_, err := Load(context.Background(), Source{DBPath: filepath.Join(t.TempDir(), "empty.db")})
	if !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("Load of an empty db: err = %v, want ErrEmptyDictionary", err)
	}
}
