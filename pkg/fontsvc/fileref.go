package fontsvc

// refLoader is what the built-in references need from their loader: the
// public Loader surface, access to the bytes behind a key, and a hook to
// drop any per-key state when the reference is released.
type refLoader interface {
	Loader
	load(key []byte) ([]byte, Status)
	unload(key []byte)
}

// fileRef is the reference implementation shared by the built-in
// loaders. It records which loader opened the file and that loader's key
// for it; the font bytes are fetched through the loader on demand.
type fileRef struct {
	loader refLoader // nil once released
	key    []byte
}

func (r *fileRef) Analyze() (bool, ContainerType, FaceType, uint32, Status) {
	if r.loader == nil {
		return false, ContainerUnknown, FaceUnknown, 0, StatusClosedHandle
	}
	data, st := r.loader.load(r.key)
	if st.Failed() {
		return false, ContainerUnknown, FaceUnknown, 0, st
	}
	return AnalyzeData(data)
}

func (r *fileRef) Loader() (Loader, Status) {
	if r.loader == nil {
		return nil, StatusClosedHandle
	}
	return r.loader, StatusOK
}

func (r *fileRef) ReferenceKey() ([]byte, Status) {
	if r.loader == nil {
		return nil, StatusClosedHandle
	}
	return r.key, StatusOK
}

func (r *fileRef) Release() {
	if r.loader == nil {
		return
	}
	r.loader.unload(r.key)
	r.loader = nil
	r.key = nil
}
