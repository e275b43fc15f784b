package fontsvc

import "sync"

// MemoryLoader serves font files straight from memory: downloads,
// embedded fonts, test fixtures. It does not support the local-file
// capability because its reference keys name registrations, not paths;
// path resolution over its files falls back to the key text itself.
//
// MemoryLoader is safe for concurrent use.
type MemoryLoader struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{files: make(map[string][]byte)}
}

// Open registers data under uri and returns a reference to it. The data
// is copied, so the caller may reuse the slice. The registration lives
// until the reference is released; releasing it drops the bytes from the
// loader. Registering the same uri twice replaces the earlier data;
// outstanding references pick up the replacement on their next read.
func (l *MemoryLoader) Open(uri string, data []byte) FileRef {
	cp := make([]byte, len(data))
	copy(cp, data)

	l.mu.Lock()
	l.files[uri] = cp
	l.mu.Unlock()

	return &fileRef{loader: l, key: EncodeKey(uri)}
}

func (l *MemoryLoader) QueryCapability(id CapabilityID) (Capability, Status) {
	return nil, StatusNoCapability
}

func (l *MemoryLoader) load(key []byte) ([]byte, Status) {
	uri := DecodeKey(key)

	l.mu.RLock()
	data, ok := l.files[uri]
	l.mu.RUnlock()

	if !ok {
		return nil, StatusInvalidKey
	}
	return data, StatusOK
}

func (l *MemoryLoader) unload(key []byte) {
	uri := DecodeKey(key)

	l.mu.Lock()
	delete(l.files, uri)
	l.mu.Unlock()
}

// Count reports the number of live registrations. Useful for spotting
// references that were never released.
func (l *MemoryLoader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.files)
}
