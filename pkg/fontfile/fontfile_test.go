package fontfile_test

import (
	"sync"
	"unicode/utf16"

	"github.com/logandonley/font-inspector/pkg/fontfile"
	"github.com/logandonley/font-inspector/pkg/fontsvc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Mock services layer for driving the handle through every branch of
// the resolution protocol.

type mockRef struct {
	loader       fontsvc.Loader
	loaderStatus fontsvc.Status
	key          []byte
	keyStatus    fontsvc.Status

	supported     bool
	container     fontsvc.ContainerType
	face          fontsvc.FaceType
	faces         uint32
	analyzeStatus fontsvc.Status

	released int
}

func (r *mockRef) Analyze() (bool, fontsvc.ContainerType, fontsvc.FaceType, uint32, fontsvc.Status) {
	return r.supported, r.container, r.face, r.faces, r.analyzeStatus
}

func (r *mockRef) Loader() (fontsvc.Loader, fontsvc.Status) {
	return r.loader, r.loaderStatus
}

func (r *mockRef) ReferenceKey() ([]byte, fontsvc.Status) {
	return r.key, r.keyStatus
}

func (r *mockRef) Release() {
	r.released++
}

// mockLocalLoader supports the local-file capability unless noCapability
// is set, and can fail any step of the path protocol on demand.
type mockLocalLoader struct {
	noCapability bool
	queryStatus  fontsvc.Status

	path         string
	pathLength   uint32
	lengthStatus fontsvc.Status
	pathStatus   fontsvc.Status

	lengthCalls int
	pathCalls   int
	released    int
}

func (l *mockLocalLoader) QueryCapability(id fontsvc.CapabilityID) (fontsvc.Capability, fontsvc.Status) {
	if l.queryStatus.Failed() {
		return nil, l.queryStatus
	}
	if l.noCapability || id != fontsvc.LocalFileCapability() {
		return nil, fontsvc.StatusNoCapability
	}
	return l, fontsvc.StatusOK
}

func (l *mockLocalLoader) Release() {
	l.released++
}

func (l *mockLocalLoader) PathLengthFromKey(key []byte) (uint32, fontsvc.Status) {
	l.lengthCalls++
	if l.lengthStatus.Failed() {
		return 0, l.lengthStatus
	}
	return l.pathLength, fontsvc.StatusOK
}

func (l *mockLocalLoader) PathFromKey(key []byte, buf []uint16) fontsvc.Status {
	l.pathCalls++
	if l.pathStatus.Failed() {
		return l.pathStatus
	}
	units := utf16.Encode([]rune(l.path))
	if len(buf) < len(units)+1 {
		return fontsvc.StatusBufferTooSmall
	}
	n := copy(buf, units)
	buf[n] = 0
	return fontsvc.StatusOK
}

var _ = Describe("FontFile", func() {
	var (
		local *mockLocalLoader
		ref   *mockRef
		f     *fontfile.FontFile
	)

	const fontPath = "/usr/local/share/fonts/FiraCode/FiraCode-Regular.ttf"

	BeforeEach(func() {
		local = &mockLocalLoader{
			path:       fontPath,
			pathLength: uint32(len(utf16.Encode([]rune(fontPath)))),
		}
		ref = &mockRef{
			loader:    local,
			key:       fontsvc.EncodeKey(fontPath),
			supported: true,
			container: fontsvc.ContainerTrueType,
			face:      fontsvc.FaceTrueType,
			faces:     1,
		}
		f = fontfile.New(ref)
	})

	Describe("Closing", func() {
		It("should release the owned reference exactly once", func() {
			Expect(f.Close()).To(Succeed())
			Expect(ref.released).To(Equal(1))
		})

		It("should make a second Close a no-op", func() {
			Expect(f.Close()).To(Succeed())
			Expect(f.Close()).To(Succeed())
			Expect(ref.released).To(Equal(1))
		})

		It("should fail Analyze on a closed handle without touching the reference", func() {
			Expect(f.Close()).To(Succeed())
			_, st := f.Analyze()
			Expect(st).To(Equal(fontsvc.StatusClosedHandle))
		})

		It("should fail URIPath on a closed handle", func() {
			Expect(f.Close()).To(Succeed())
			_, err := f.URIPath()
			Expect(err).To(MatchError(fontfile.ErrClosed))
		})

		It("should expose a nil raw reference after Close", func() {
			Expect(f.Ref()).NotTo(BeNil())
			Expect(f.Close()).To(Succeed())
			Expect(f.Ref()).To(BeNil())
		})
	})

	Describe("Analyze", func() {
		It("should classify a supported font", func() {
			a, st := f.Analyze()
			Expect(st.Failed()).To(BeFalse())
			Expect(a.Supported).To(BeTrue())
			Expect(a.Container).To(Equal(fontsvc.ContainerTrueType))
			Expect(a.Face).To(Equal(fontsvc.FaceTrueType))
			Expect(a.Faces).To(BeNumerically(">=", 1))
		})

		It("should report an unsupported format as a successful analysis", func() {
			ref.supported = false
			ref.container = fontsvc.ContainerUnknown
			ref.face = fontsvc.FaceUnknown
			ref.faces = 0

			a, st := f.Analyze()
			Expect(st.Failed()).To(BeFalse())
			Expect(a.Supported).To(BeFalse())
		})

		It("should leave the classification zero on a failing status", func() {
			ref.analyzeStatus = fontsvc.StatusIOFailure

			a, st := f.Analyze()
			Expect(st).To(Equal(fontsvc.StatusIOFailure))
			Expect(a).To(Equal(fontfile.Analysis{}))
		})
	})

	Describe("URIPath with a local-file loader", func() {
		It("should resolve the actual file path", func() {
			uri, err := f.URIPath()
			Expect(err).NotTo(HaveOccurred())
			Expect(uri).To(Equal(fontPath))
		})

		It("should return a path exactly as long as the loader reported", func() {
			uri, err := f.URIPath()
			Expect(err).NotTo(HaveOccurred())
			Expect(len(utf16.Encode([]rune(uri)))).To(Equal(int(local.pathLength)))
		})

		It("should release the queried capability exactly once", func() {
			_, err := f.URIPath()
			Expect(err).NotTo(HaveOccurred())
			Expect(local.released).To(Equal(1))
		})

		It("should release the capability once per resolution", func() {
			for i := 0; i < 3; i++ {
				_, err := f.URIPath()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(local.released).To(Equal(3))
		})

		It("should panic when the loader reports an implausible path length", func() {
			local.pathLength = 1 << 20
			Expect(func() { _, _ = f.URIPath() }).To(Panic())
			Expect(local.released).To(Equal(1))
		})
	})

	Describe("URIPath without the local-file capability", func() {
		BeforeEach(func() {
			local.noCapability = true
		})

		It("should return the reference key as text", func() {
			uri, err := f.URIPath()
			Expect(err).NotTo(HaveOccurred())
			Expect(uri).To(Equal(fontPath))
		})

		It("should never call the local-file operations", func() {
			_, err := f.URIPath()
			Expect(err).NotTo(HaveOccurred())
			Expect(local.lengthCalls).To(BeZero())
			Expect(local.pathCalls).To(BeZero())
			Expect(local.released).To(BeZero())
		})

		It("should surface a reference key failure", func() {
			ref.keyStatus = fontsvc.StatusClosedHandle

			_, err := f.URIPath()
			var statusErr *fontfile.StatusError
			Expect(err).To(BeAssignableToTypeOf(statusErr))
			Expect(err.(*fontfile.StatusError).Op).To(Equal(fontfile.OpReferenceKey))
		})
	})

	Describe("URIPath failure propagation", func() {
		expectStatusError := func(err error, op fontfile.Op, st fontsvc.Status) {
			GinkgoHelper()
			var statusErr *fontfile.StatusError
			Expect(err).To(BeAssignableToTypeOf(statusErr))
			Expect(err.(*fontfile.StatusError).Op).To(Equal(op))
			Expect(err.(*fontfile.StatusError).Status).To(Equal(st))
		}

		It("should identify a loader retrieval failure", func() {
			ref.loaderStatus = fontsvc.StatusClosedHandle

			_, err := f.URIPath()
			expectStatusError(err, fontfile.OpGetLoader, fontsvc.StatusClosedHandle)
			Expect(local.released).To(BeZero())
		})

		It("should identify a capability query failure", func() {
			local.queryStatus = fontsvc.StatusIOFailure

			_, err := f.URIPath()
			expectStatusError(err, fontfile.OpQueryCapability, fontsvc.StatusIOFailure)
			Expect(local.released).To(BeZero())
		})

		It("should identify a reference key failure and still release the capability", func() {
			ref.keyStatus = fontsvc.StatusInvalidKey

			_, err := f.URIPath()
			expectStatusError(err, fontfile.OpReferenceKey, fontsvc.StatusInvalidKey)
			Expect(local.released).To(Equal(1))
		})

		It("should identify a path length failure and still release the capability", func() {
			local.lengthStatus = fontsvc.StatusInvalidKey

			_, err := f.URIPath()
			expectStatusError(err, fontfile.OpPathLength, fontsvc.StatusInvalidKey)
			Expect(local.released).To(Equal(1))
		})

		It("should identify a path retrieval failure and still release the capability", func() {
			local.pathStatus = fontsvc.StatusIOFailure

			_, err := f.URIPath()
			expectStatusError(err, fontfile.OpPath, fontsvc.StatusIOFailure)
			Expect(local.released).To(Equal(1))
		})
	})

	Describe("Concurrent use of independent handles", func() {
		It("should keep results independent", func() {
			other := &mockRef{
				loader:    &mockLocalLoader{noCapability: true},
				key:       fontsvc.EncodeKey("mem:other"),
				supported: true,
				container: fontsvc.ContainerCollection,
				face:      fontsvc.FaceCFF,
				faces:     4,
			}
			g := fontfile.New(other)
			defer g.Close()

			var wg sync.WaitGroup
			results := make([]fontfile.Analysis, 2)
			wg.Add(2)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					results[0], _ = f.Analyze()
				}
			}()
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					results[1], _ = g.Analyze()
				}
			}()
			wg.Wait()

			Expect(results[0].Container).To(Equal(fontsvc.ContainerTrueType))
			Expect(results[0].Faces).To(Equal(uint32(1)))
			Expect(results[1].Container).To(Equal(fontsvc.ContainerCollection))
			Expect(results[1].Faces).To(Equal(uint32(4)))
		})
	})
})
