// Package settings implements an in-memory key/value settings store
// with plain text file persistence.
//
// Keys are unique (compared byte-for-byte) and pairs keep their
// insertion order: setting an existing key replaces its value but not
// its position. Lookup is a linear scan, which is deliberate: a
// settings store holds tens of entries, not thousands.
//
// # File Format
//
// One pair per line, separated by the first '=' on the line:
//
//	window width = 1024
//	window height = 768
//	title = my = app
//
// On load, whitespace around key and value is removed and lines
// without '=' are skipped. There is no quoting, no escaping and no
// comment syntax. On save, each line is written as "key = value" with
// exactly one space on each side of '='.
//
// # Basic Usage
//
//	s := settings.New()
//	err := s.Load("app.conf")
//	if err != nil {
//	    // file missing or unreadable; s is still usable, just empty
//	}
//	w := s.GetInt("window width", 1024)
//	s.SetInt("window width", w*2)
//	err = s.Save("app.conf")
//
// # Limits
//
// By default keys, values and lines can be of any length. Use
// NewWithOptions to set maximum key/value lengths (Set fails with
// ErrTooLong) and a maximum line length for Load (longer lines are
// truncated).
//
// # Thread Safety
//
// A Settings store is not safe for concurrent use. Callers that share
// a store between goroutines must serialize access with their own
// lock.
package settings
