package settings

import (
	"errors"
	"strconv"
)

var (
	// ErrNilSettings is returned by mutating calls on a nil *Settings
	ErrNilSettings = errors.New("settings is nil")

	// ErrTooLong is returned by Set when the key or value is longer
	// than the limits configured in Options
	ErrTooLong = errors.New("key or value too long")
)

// Pair is a single key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Options configures limits for a store. The zero value means no
// limits.
type Options struct {
	// MaxKeyLen is the maximum key length in bytes. 0 means unlimited.
	MaxKeyLen int

	// MaxValueLen is the maximum value length in bytes. 0 means unlimited.
	MaxValueLen int

	// MaxLineLen caps the length of a single line during Load. Longer
	// lines are truncated at MaxLineLen bytes and the rest of the
	// physical line is discarded. 0 means lines can be of any length.
	MaxLineLen int
}

// Settings is an ordered collection of unique key/value pairs.
type Settings struct {
	opts  Options
	pairs []Pair
}

// New creates an empty store with no limits.
func New() *Settings {
	return &Settings{}
}

// NewWithOptions creates an empty store with the given limits.
func NewWithOptions(opts Options) *Settings {
	return &Settings{opts: opts}
}

// returns index of the pair with the given key, -1 if not present.
// keys are compared byte-for-byte
func (s *Settings) find(key string) int {
	for i := range s.pairs {
		if s.pairs[i].Key == key {
			return i
		}
	}
	return -1
}

func exceeds(n, limit int) bool {
	return limit > 0 && n > limit
}

// Set adds key with the given value. If key already exists its value
// is replaced and the pair keeps its position in the sequence.
// Returns ErrTooLong if key or value is longer than the limits in
// Options; the store is not modified in that case.
func (s *Settings) Set(key, value string) error {
	if s == nil {
		return ErrNilSettings
	}
	if exceeds(len(key), s.opts.MaxKeyLen) || exceeds(len(value), s.opts.MaxValueLen) {
		return ErrTooLong
	}
	if i := s.find(key); i >= 0 {
		s.pairs[i].Value = value
		return nil
	}
	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
	return nil
}

// Get returns the value for key, or def if key is not present.
func (s *Settings) Get(key string, def string) string {
	if s == nil {
		return def
	}
	if i := s.find(key); i >= 0 {
		return s.pairs[i].Value
	}
	return def
}

// SetInt stores v as its decimal text representation.
func (s *Settings) SetInt(key string, v int) error {
	return s.Set(key, strconv.Itoa(v))
}

// GetInt returns the value for key parsed the way C atoi parses:
// leading whitespace is skipped, parsing stops at the first non-digit
// and text with no leading number is 0. Returns def if key is not
// present.
func (s *Settings) GetInt(key string, def int) int {
	if s == nil {
		return def
	}
	if i := s.find(key); i >= 0 {
		return atoiPermissive(s.pairs[i].Value)
	}
	return def
}

// SetFloat stores v in fixed-point decimal form with 6 digits after
// the dot, e.g. "123.100000".
func (s *Settings) SetFloat(key string, v float64) error {
	return s.Set(key, strconv.FormatFloat(v, 'f', 6, 64))
}

// GetFloat returns the value for key parsed the way C atof parses:
// the longest valid numeric prefix is used and invalid text is 0.
// Returns def if key is not present.
func (s *Settings) GetFloat(key string, def float64) float64 {
	if s == nil {
		return def
	}
	if i := s.find(key); i >= 0 {
		return atofPermissive(s.pairs[i].Value)
	}
	return def
}

// Remove deletes key and its value. Remaining pairs keep their
// relative order. Returns false if key was not present.
func (s *Settings) Remove(key string) bool {
	if s == nil {
		return false
	}
	i := s.find(key)
	if i < 0 {
		return false
	}
	s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
	return true
}

// Len returns the number of pairs.
func (s *Settings) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

// Pairs returns a copy of all pairs in insertion order.
func (s *Settings) Pairs() []Pair {
	if s == nil {
		return nil
	}
	return append([]Pair{}, s.pairs...)
}

// Reset removes all pairs. Limits set in Options are kept.
func (s *Settings) Reset() {
	if s == nil {
		return
	}
	s.pairs = nil
}
