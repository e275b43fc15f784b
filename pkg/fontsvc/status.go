// Package fontsvc models the font-services layer that font file handles
// are drawn from: a result-code convention, a capability query keyed by
// well-known identities, and pluggable loaders that resolve the opaque
// reference keys of the files they opened.
package fontsvc

import "fmt"

// Status is the result code every font-services operation reports.
// Zero is success. StatusNoCapability is special: as an answer to
// QueryCapability it is an expected branch, not a failure of the query.
type Status uint32

const (
	StatusOK Status = 0

	// StatusNoCapability is returned by Loader.QueryCapability when the
	// loader does not support the requested capability.
	StatusNoCapability Status = 0x80004002

	// StatusClosedHandle reports an operation on a released reference.
	StatusClosedHandle Status = 0x80070006

	// StatusInvalidKey reports a reference key the loader does not
	// recognize as one of its own.
	StatusInvalidKey Status = 0x80070057

	// StatusIOFailure reports that the loader could not read the bytes
	// behind a reference key.
	StatusIOFailure Status = 0x8007001e

	// StatusBufferTooSmall reports a path buffer with less capacity than
	// the loader said the resolved path needs.
	StatusBufferTooSmall Status = 0x8007007a
)

// Failed reports whether s is a failure code. StatusNoCapability counts
// as a failure here; QueryCapability callers check for it explicitly
// before using this predicate.
func (s Status) Failed() bool {
	return s != StatusOK
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoCapability:
		return "no such capability"
	case StatusClosedHandle:
		return "reference already released"
	case StatusInvalidKey:
		return "unrecognized reference key"
	case StatusIOFailure:
		return "could not read font data"
	case StatusBufferTooSmall:
		return "path buffer too small"
	}
	return fmt.Sprintf("status 0x%08x", uint32(s))
}
