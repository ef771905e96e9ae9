package argon2

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// textEncoding converts textual secrets to bytes.  The zero value is UTF-8.
type textEncoding struct {
	name  string
	ascii bool
	enc   encoding.Encoding // nil for the UTF-8 and ASCII fast paths
}

// resolveEncoding maps an encoding label to a textEncoding.  Labels are
// matched case-insensitively against the IANA registry first and the WHATWG
// list second, so "ISO-8859-1", "latin1" and "windows-1252" all work.
func resolveEncoding(label string) (textEncoding, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	switch name {
	case "utf-8", "utf8":
		return textEncoding{name: "utf-8"}, nil
	case "ascii", "us-ascii":
		return textEncoding{name: "ascii", ascii: true}, nil
	case "":
		return textEncoding{}, errors.New("empty encoding label")
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(name)
		if err != nil {
			return textEncoding{}, fmt.Errorf("unknown encoding %q", label)
		}
	}
	if canonical, err := ianaindex.IANA.Name(enc); err == nil {
		name = canonical
	}
	return textEncoding{name: name, enc: enc}, nil
}

// encode converts s.  Text that is not valid UTF-8, or that holds runes the
// encoding cannot represent, is rejected instead of being replaced.
func (e textEncoding) encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrEncoding)
	}
	switch {
	case e.ascii:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return nil, fmt.Errorf("%w: ascii cannot represent the byte at offset %d", ErrEncoding, i)
			}
		}
		return []byte(s), nil
	case e.enc == nil:
		return []byte(s), nil
	}

	b, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncoding, e.name, err)
	}
	return b, nil
}

// asciiHash converts an encoded hash given as text.  Encoded hashes are
// always ASCII, so anything else is not a hash.
func asciiHash(hash string) ([]byte, error) {
	for i := 0; i < len(hash); i++ {
		if hash[i] >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w: non-ASCII byte at offset %d", ErrInvalidHash, i)
		}
	}
	return []byte(hash), nil
}
