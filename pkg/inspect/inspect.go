// Package inspect builds reports about font files: where they live, what
// container they use, how many faces they carry, and which family they
// belong to.
package inspect

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"

	"github.com/logandonley/font-inspector/pkg/fontfile"
	"github.com/logandonley/font-inspector/pkg/fontsvc"
)

// Report describes one inspected font file.
type Report struct {
	// URI identifies where the font came from: a file system path for
	// local files, the download URL or registration key for everything
	// else.
	URI string

	// Supported reports whether the file is a recognized, parseable
	// font. The classification fields below are meaningful only when
	// it is set.
	Supported bool

	Container string
	Face      string
	Faces     uint32

	// Family is the family name of the first face, when available.
	Family string
}

// memory holds fonts inspected without a backing file (downloads,
// caller-provided bytes). Registrations last only for the duration of a
// call: closing the font file evicts its bytes from the loader.
var memory = fontsvc.NewMemoryLoader()

// Inspect reports on the font file at path.
func Inspect(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading font file: %w", err)
	}

	f := fontfile.Open(path)
	defer f.Close()
	return report(f, data)
}

// InspectBytes reports on font data held in memory, registered under the
// given uri. The uri becomes the report's URI via the loader fallback:
// the in-memory loader has no local-file capability, so path resolution
// returns its reference key as text.
func InspectBytes(uri string, data []byte) (Report, error) {
	f := fontfile.New(memory.Open(uri, data))
	defer f.Close()
	return report(f, data)
}

func report(f *fontfile.FontFile, data []byte) (Report, error) {
	uri, err := f.URIPath()
	if err != nil {
		return Report{}, fmt.Errorf("resolving font location: %w", err)
	}

	a, st := f.Analyze()
	if st.Failed() {
		return Report{}, fmt.Errorf("analyzing %s: %s", uri, st)
	}

	r := Report{
		URI:       uri,
		Supported: a.Supported,
		Container: a.Container.String(),
		Face:      a.Face.String(),
		Faces:     a.Faces,
	}
	if a.Supported {
		r.Family = familyName(data)
	}
	return r, nil
}

// familyName extracts the family name of the first face, or "" when the
// font cannot be parsed for metadata. ParseCollection treats standalone
// fonts as one-font collections, so both cases go through it.
func familyName(data []byte) string {
	coll, err := sfnt.ParseCollection(data)
	if err != nil || coll.NumFonts() == 0 {
		return ""
	}
	first, err := coll.Font(0)
	if err != nil {
		return ""
	}
	name, err := first.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
