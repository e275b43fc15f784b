package fontsvc

import (
	"sync"

	"github.com/google/uuid"
)

// ContainerType classifies a font file's wrapping format.
type ContainerType uint8

const (
	ContainerUnknown ContainerType = iota
	ContainerTrueType
	ContainerCFF
	ContainerCollection
	ContainerWOFF
	ContainerWOFF2
)

func (c ContainerType) String() string {
	switch c {
	case ContainerTrueType:
		return "TrueType"
	case ContainerCFF:
		return "CFF"
	case ContainerCollection:
		return "Collection"
	case ContainerWOFF:
		return "WOFF"
	case ContainerWOFF2:
		return "WOFF2"
	}
	return "Unknown"
}

// FaceType classifies the outline format of a single face.
type FaceType uint8

const (
	FaceUnknown FaceType = iota
	FaceTrueType
	FaceCFF
)

func (f FaceType) String() string {
	switch f {
	case FaceTrueType:
		return "TrueType"
	case FaceCFF:
		return "CFF"
	}
	return "Unknown"
}

// CapabilityID is the 128-bit identity naming an optional loader
// capability. Identities are values, never released.
type CapabilityID [16]byte

// localFileCapability is fixed and shared with every producer of the
// local-file capability.
const localFileCapability = "b2d9f3ec-c9fe-4a11-a2ec-d86208f7c0a2"

// LocalFileCapability returns the well-known identity of the local-file
// loader capability. The value is computed once, on first use, and is
// immutable for the rest of the process.
var LocalFileCapability = sync.OnceValue(func() CapabilityID {
	return CapabilityID(uuid.MustParse(localFileCapability))
})

// FileRef is the services layer's reference to one opened font file.
// Whoever holds a FileRef owns it and must Release it exactly once.
//
// A FileRef has no internal synchronization; concurrent use of one ref,
// including Release racing another call, is undefined.
type FileRef interface {
	// Analyze classifies the file: its container format, the outline
	// format of its first face, and the number of faces it carries.
	// An unrecognized format is a successful analysis with supported
	// false; a failing status means the file could not be examined at
	// all, and the other results are meaningless.
	Analyze() (supported bool, container ContainerType, face FaceType, faces uint32, st Status)

	// Loader returns the loader that opened this file. The loader is
	// owned by the services layer; callers do not release it.
	Loader() (Loader, Status)

	// ReferenceKey returns the loader-private key identifying this file.
	// The bytes mean nothing outside the owning loader.
	ReferenceKey() ([]byte, Status)

	// Release frees the reference. Every later call on the ref fails
	// with StatusClosedHandle.
	Release()
}

// Loader resolves reference keys for the font files it opened.
type Loader interface {
	// QueryCapability asks whether the loader also implements the
	// capability named by id. StatusNoCapability means it does not;
	// that is an answer, not an error. On StatusOK the caller owns one
	// reference to the returned capability and must Release it exactly
	// once.
	QueryCapability(id CapabilityID) (Capability, Status)
}

// Capability is an optional loader interface obtained through
// QueryCapability. The holder releases it when done.
type Capability interface {
	Release()
}

// LocalFileLoader is the capability of loaders whose font files live on
// the local file system, identified by LocalFileCapability.
type LocalFileLoader interface {
	Capability

	// PathLengthFromKey returns the length, in UTF-16 code units and
	// excluding the terminator, of the path the key resolves to.
	PathLengthFromKey(key []byte) (uint32, Status)

	// PathFromKey writes the resolved path into buf, terminated by a
	// NUL code unit. buf must have room for the length reported by
	// PathLengthFromKey plus one.
	PathFromKey(key []byte, buf []uint16) Status
}
