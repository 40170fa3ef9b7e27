package remap

import (
	"encoding/base64"
	"strings"
)

// pngDataURIPrefix is the prefix of every data URI this package produces.
const pngDataURIPrefix = "data:image/png;base64,"

// DataURI returns data as a PNG data URI.
func DataURI(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(pngDataURIPrefix) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString(pngDataURIPrefix)
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

// ParseDataURI returns the bytes carried by a base64 data URI or a bare
// base64 string. Padding is optional and surrounding whitespace is ignored.
// The media type is not checked here; see Remap for PNG validation.
func ParseDataURI(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") {
			return nil, ErrUnsupportedDataURI
		}
		s = payload
	}

	s = strings.TrimRight(s, "=")
	data, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrNotBase64
	}
	return data, nil
}
