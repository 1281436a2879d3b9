package epub

import (
	"archive/zip"
	"net/url"
	"unicode/utf8"
)

// A nameResolver transforms a requested entry name into a candidate index
// key. It reports false when the transformation does not apply, in which
// case the next strategy is tried.
type nameResolver func(name string) (string, bool)

// Resolution strategies in the order they are attempted. Producers store
// entry names either as literal Unicode paths or with percent-escaped
// sequences, so a verbatim lookup is followed by a percent-decoded one.
var nameResolvers = []nameResolver{
	identityName,
	percentDecodedName,
}

func identityName(name string) (string, bool) {
	return name, true
}

// percentDecodedName interprets %XX escapes as UTF-8 bytes. It does not
// apply when the name has no escapes, when an escape is malformed, or when
// the decoded bytes are not valid UTF-8.
func percentDecodedName(name string) (string, bool) {
	decoded, err := url.PathUnescape(name)
	if err != nil || decoded == name || !utf8.ValidString(decoded) {
		return "", false
	}
	return decoded, true
}

// resolve maps a logical name to its index entry, trying each resolution
// strategy in order and stopping at the first index hit.
func (a *Archive) resolve(name string) (*zip.File, bool) {
	for i, r := range nameResolvers {
		candidate, ok := r(name)
		if !ok {
			continue
		}
		if f, ok := a.byName[candidate]; ok {
			if i > 0 {
				a.log().Debug("entry resolved via fallback", "name", name, "stored", candidate)
			}
			return f, true
		}
	}
	return nil, false
}
