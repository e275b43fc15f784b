// Package fontfile wraps one font-services file reference in an owning
// handle that can classify the file and resolve a human-readable
// location for it.
package fontfile

import (
	"fmt"
	"unicode/utf16"

	"github.com/logandonley/font-inspector/pkg/fontsvc"
)

// maxPathChars bounds the path length a local-file loader may report.
// Anything larger means the services layer returned nonsense, which is a
// bug, not a recoverable condition.
const maxPathChars = 1 << 15

// FontFile owns one font-services file reference from construction until
// Close. A FontFile is not safe for concurrent use: Close racing an
// in-flight call on another goroutine is use-after-release. Serialize
// access, or give each goroutine its own handle.
type FontFile struct {
	// ref is either valid and owned, or nil after Close. No other state
	// exists, so every method starts with a nil check.
	ref fontsvc.FileRef
}

// New wraps ref in an owning handle. Ownership transfers: the handle
// becomes solely responsible for releasing ref, exactly once. The
// reference is not validated here; validation happens on first use.
func New(ref fontsvc.FileRef) *FontFile {
	return &FontFile{ref: ref}
}

// Open wraps the font file at path using the process-wide local file
// loader.
func Open(path string) *FontFile {
	return New(fontsvc.OpenLocalFile(path))
}

// Close releases the owned reference. Closing twice is a no-op; the
// second call finds nothing to release.
func (f *FontFile) Close() error {
	if f.ref != nil {
		f.ref.Release()
		f.ref = nil
	}
	return nil
}

// Ref returns the owned reference so it can be handed onward to the
// font-services layer.
//
// WARNING: the reference stays owned by this handle. The caller must
// keep the handle open for as long as the reference is in use, or the
// reference can be released out from under it.
func (f *FontFile) Ref() fontsvc.FileRef {
	return f.ref
}

// Analysis is what Analyze learned about the font file.
type Analysis struct {
	// Supported reports whether the services layer recognizes the file
	// format. An unsupported file is a normal outcome, not an error.
	Supported bool

	// Container and Face classify the file's wrapping format and the
	// outline format of its first face. Meaningful only when Supported.
	Container fontsvc.ContainerType
	Face      fontsvc.FaceType

	// Faces is the number of faces in the file.
	Faces uint32
}

// Analyze classifies the font file. The status comes back as a value
// rather than an error because callers scanning arbitrary files treat
// unsupported formats as an ordinary branch. On a failing status the
// returned Analysis is zero.
func (f *FontFile) Analyze() (Analysis, fontsvc.Status) {
	if f.ref == nil {
		return Analysis{}, fontsvc.StatusClosedHandle
	}
	supported, container, face, faces, st := f.ref.Analyze()
	if st.Failed() {
		return Analysis{}, st
	}
	return Analysis{
		Supported: supported,
		Container: container,
		Face:      face,
		Faces:     faces,
	}, st
}

// URIPath resolves a human-readable location for the font file.
//
// The handle asks the file's loader for the local-file capability. A
// loader that has it resolves the file's reference key to an actual
// file system path. A loader without it gets the fallback: the
// reference key reinterpreted as NUL-terminated UTF-16 text, returned
// as-is. The built-in loaders all encode their keys that way; a custom
// loader with a different key format will produce garbage here. That
// assumption is inherited from the loaders this was written against,
// not guaranteed by the loader contract.
func (f *FontFile) URIPath() (string, error) {
	if f.ref == nil {
		return "", ErrClosed
	}

	loader, st := f.ref.Loader()
	if st.Failed() {
		return "", &StatusError{Op: OpGetLoader, Status: st}
	}

	capability, st := loader.QueryCapability(fontsvc.LocalFileCapability())
	if st == fontsvc.StatusNoCapability {
		key, st := f.ref.ReferenceKey()
		if st.Failed() {
			return "", &StatusError{Op: OpReferenceKey, Status: st}
		}
		return fontsvc.DecodeKey(key), nil
	}
	if st.Failed() {
		return "", &StatusError{Op: OpQueryCapability, Status: st}
	}

	local, ok := capability.(fontsvc.LocalFileLoader)
	if !ok {
		if capability != nil {
			capability.Release()
		}
		panic("fontfile: local-file capability does not implement LocalFileLoader")
	}
	defer releaseLoaderCapability(&local)

	key, st := f.ref.ReferenceKey()
	if st.Failed() {
		return "", &StatusError{Op: OpReferenceKey, Status: st}
	}

	length, st := local.PathLengthFromKey(key)
	if st.Failed() {
		return "", &StatusError{Op: OpPathLength, Status: st}
	}
	if length > maxPathChars {
		panic(fmt.Sprintf("fontfile: loader reported an implausible path length %d", length))
	}

	buf := make([]uint16, length+1)
	if st := local.PathFromKey(key, buf); st.Failed() {
		return "", &StatusError{Op: OpPath, Status: st}
	}
	return string(utf16.Decode(buf[:length])), nil
}

// releaseLoaderCapability releases a queried local-file capability and
// clears the reference. Calling it again, or with nothing acquired, does
// nothing, so every exit path can funnel through the same deferred call.
func releaseLoaderCapability(c *fontsvc.LocalFileLoader) {
	if c != nil && *c != nil {
		(*c).Release()
		*c = nil
	}
}
