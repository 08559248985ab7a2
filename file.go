package settings

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/kjk/common/atomicfile"
)

// Load reads key/value pairs from the text file at path and adds
// them to s. Returns an error if the file can't be opened, in which
// case nothing is added. See LoadFrom for how lines are parsed.
func (s *Settings) Load(path string) error {
	if s == nil {
		return ErrNilSettings
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.LoadFrom(f)
}

// LoadFrom reads key/value pairs from r, one per line, in the form:
//
//	key = value
//
// The key ends at the first '=' on the line; the value is everything
// after it, including any further '=' characters. Whitespace around
// key and value is removed. A key that already exists keeps its
// position and gets the new value, so a later line overrides an
// earlier one.
//
// Parsing is best effort: lines without '=' are skipped, and so are
// lines whose key or value can't be stored because it exceeds the
// limits in Options. Neither is an error.
func (s *Settings) LoadFrom(r io.Reader) error {
	if s == nil {
		return ErrNilSettings
	}
	br := bufio.NewReader(r)
	for {
		line, err := readLine(br, s.opts.MaxLineLen)
		if key, value, ok := splitKeyValue(line); ok {
			// per-line failures are swallowed
			_ = s.Set(key, value)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readLine returns the next line from br without the trailing
// newline (a '\r' before it is removed too, for CRLF files). If
// maxLen > 0 the line is truncated at maxLen bytes and the rest of
// the physical line is discarded. The last line is returned together
// with io.EOF.
func readLine(br *bufio.Reader, maxLen int) (string, error) {
	var line []byte
	truncated := false
	for {
		frag, err := br.ReadSlice('\n')
		if !truncated {
			line = append(line, frag...)
			if maxLen > 0 && len(line) > maxLen {
				line = line[:maxLen]
				truncated = true
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return string(trimEOL(line)), err
	}
}

// removes trailing "\n" or "\r\n"
func trimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}

// Save writes all pairs to a text file at path in insertion order,
// one pair per line:
//
//	key = value
//
// with exactly one space on each side of '='. The file is written
// atomically: data goes to a temporary file in the same directory
// which is renamed over path on success, so a failed Save leaves any
// previous file at path untouched.
func (s *Settings) Save(path string) error {
	if s == nil {
		return ErrNilSettings
	}
	w, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	// calling Close() twice is a no-op
	defer w.Close()

	if err = s.SaveTo(w); err != nil {
		return err
	}
	return w.Close()
}

// SaveTo writes all pairs to w in the same format as Save.
func (s *Settings) SaveTo(w io.Writer) error {
	if s == nil {
		return ErrNilSettings
	}
	var buf bytes.Buffer
	for _, p := range s.pairs {
		buf.Reset()
		buf.WriteString(p.Key)
		buf.WriteString(" = ")
		buf.WriteString(p.Value)
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
