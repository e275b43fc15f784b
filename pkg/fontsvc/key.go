package fontsvc

import "golang.org/x/text/encoding/unicode"

// The built-in loaders all share one reference-key form: the text that
// identifies the file (a path, a URI) as UTF-16LE bytes ending in a NUL
// code unit. Custom loaders are free to use anything else; only the
// loader that produced a key ever interprets it.

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeKey converts text into the built-in reference-key form.
func EncodeKey(text string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		// The encoder substitutes unrepresentable bytes rather than
		// failing; a real error leaves us with nothing but the terminator.
		b = nil
	}
	return append(b, 0, 0)
}

// DecodeKey interprets key as NUL-terminated UTF-16LE text. Bytes past
// the first NUL code unit are ignored. Keys in some other private format
// decode to mojibake; that is the caller's documented risk.
func DecodeKey(key []byte) string {
	for i := 0; i+1 < len(key); i += 2 {
		if key[i] == 0 && key[i+1] == 0 {
			key = key[:i]
			break
		}
	}
	b, err := utf16le.NewDecoder().Bytes(key)
	if err != nil {
		return ""
	}
	return string(b)
}
