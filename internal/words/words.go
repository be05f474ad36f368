// internal/words/words.go
//
// Dictionary collaborator for the solver.
//
// Responsibilities:
//   - Normalise raw word lists (lowercase, trim, keep only 5-letter a–z words).
//   - Load a Dictionary from a file, an io.Reader, a SQLite database, or the
//     embedded default list.
//   - Provide membership checks for guess validation.
//
// Source selection (Load):
//   1. WORDS_DB set   → read table `words` from that SQLite file.
//   2. WORDS_FILE set → read one word per line from that file.
//   3. neither        → embedded assets/words.txt.
//
// A Dictionary is immutable once built and safe to share between sessions.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Length is the only word length the dictionary keeps.
const Length = 5

// ErrEmptyDictionary is returned when a source yields no usable words.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Dictionary is an immutable, sorted set of 5-letter lowercase words.
type Dictionary struct {
	list []string
	set  map[string]struct{}
}

// Source describes where Load reads words from. Empty fields are skipped.
type Source struct {
	DBPath   string // SQLite file with a `words` table
	FilePath string // newline-delimited word list
}

// SourceFromEnv builds a Source from WORDS_DB and WORDS_FILE.
func SourceFromEnv() Source {
	return Source{
		DBPath:   os.Getenv("WORDS_DB"),
		FilePath: os.Getenv("WORDS_FILE"),
	}
}

// Load builds a Dictionary from src, falling back to the embedded list.
func Load(ctx context.Context, src Source) (*Dictionary, error) {
	switch {
	case src.DBPath != "":
		db, err := OpenDB(src.DBPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return LoadDB(ctx, db)

	case src.FilePath != "":
		return ReadFile(src.FilePath)

	default:
		raw, err := assets.DictionaryList()
		if err != nil {
			return nil, fmt.Errorf("words: read embedded list: %w", err)
		}
		return New(raw)
	}
}

// ReadFile uses Read to load a dictionary from the named file.
func ReadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read loads a newline-delimited word list from r.
func Read(r io.Reader) (*Dictionary, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: scan: %w", err)
	}
	return New(raw)
}

// New normalises raw and builds a Dictionary.
// Returns ErrEmptyDictionary if no 5-letter alphabetic word survives.
func New(raw []string) (*Dictionary, error) {
	list := Normalize(raw)
	if len(list) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Dictionary{list: list, set: toSet(list)}, nil
}

// Normalize lowercases and trims each entry, keeps only 5-letter a–z words,
// drops duplicates and returns the result sorted.
func Normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != Length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Words returns a copy of the sorted word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.list...)
}

// Len reports the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// Contains reports whether w (case-insensitive) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
