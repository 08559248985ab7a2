package settings

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"
)

// DumpJSON returns the pairs as a pretty-printed JSON object in
// insertion order. This is a debugging aid, the persistence format
// is the plain text one used by Load and Save.
func (s *Settings) DumpJSON() []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s.Pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		// Marshal of a string can't fail
		k, _ := json.Marshal(p.Key)
		v, _ := json.Marshal(p.Value)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return pretty.Pretty(buf.Bytes())
}
