package fontsvc

import (
	"os"
	"unicode/utf16"
)

// localFileLoader backs font files that live on the local file system.
// One instance serves the whole process. It holds no per-file state, so
// it is never torn down and releasing the queried capability is free.
type localFileLoader struct{}

var localLoader = &localFileLoader{}

// OpenLocalFile returns a reference to the font file at path, owned by
// the process-wide local file loader. The file is not read or validated
// here; that happens on first use of the reference.
func OpenLocalFile(path string) FileRef {
	return &fileRef{loader: localLoader, key: EncodeKey(path)}
}

func (l *localFileLoader) QueryCapability(id CapabilityID) (Capability, Status) {
	if id == LocalFileCapability() {
		return l, StatusOK
	}
	return nil, StatusNoCapability
}

// Release implements Capability. The loader lives for the process; there
// is no reference count to drop.
func (l *localFileLoader) Release() {}

func (l *localFileLoader) PathLengthFromKey(key []byte) (uint32, Status) {
	path := DecodeKey(key)
	if path == "" {
		return 0, StatusInvalidKey
	}
	return uint32(len(utf16.Encode([]rune(path)))), StatusOK
}

func (l *localFileLoader) PathFromKey(key []byte, buf []uint16) Status {
	path := DecodeKey(key)
	if path == "" {
		return StatusInvalidKey
	}
	units := utf16.Encode([]rune(path))
	if len(buf) < len(units)+1 {
		return StatusBufferTooSmall
	}
	n := copy(buf, units)
	buf[n] = 0
	return StatusOK
}

func (l *localFileLoader) load(key []byte) ([]byte, Status) {
	path := DecodeKey(key)
	if path == "" {
		return nil, StatusInvalidKey
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, StatusIOFailure
	}
	return data, StatusOK
}

// unload is a no-op: the loader keeps no per-key state.
func (l *localFileLoader) unload(key []byte) {}
