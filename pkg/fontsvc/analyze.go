package fontsvc

import (
	"bytes"
	"encoding/binary"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// sfnt version tags, big-endian.
const (
	tagTrueType  = 0x00010000
	tagAppleTrue = 0x74727565 // 'true'
	tagOTTO      = 0x4f54544f // 'OTTO'
	tagTTC       = 0x74746366 // 'ttcf'
	tagWOFF      = 0x774f4646 // 'wOFF'
	tagWOFF2     = 0x774f4632 // 'wOF2'
)

// AnalyzeData classifies font bytes: container format, outline format of
// the first face, and face count. supported is false both for formats we
// do not recognize and for recognized containers that fail to parse; in
// either case the analysis itself succeeded, so the status is StatusOK.
func AnalyzeData(data []byte) (supported bool, container ContainerType, face FaceType, faces uint32, st Status) {
	if len(data) < 4 {
		return false, ContainerUnknown, FaceUnknown, 0, StatusOK
	}

	switch binary.BigEndian.Uint32(data) {
	case tagTrueType, tagAppleTrue:
		container = ContainerTrueType
	case tagOTTO:
		container = ContainerCFF
	case tagTTC:
		container = ContainerCollection
	case tagWOFF:
		// Compressed containers are recognized but not readable here.
		return false, ContainerWOFF, FaceUnknown, 0, StatusOK
	case tagWOFF2:
		return false, ContainerWOFF2, FaceUnknown, 0, StatusOK
	default:
		return false, ContainerUnknown, FaceUnknown, 0, StatusOK
	}

	if container == ContainerCollection {
		members, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil || len(members) == 0 {
			return false, container, FaceUnknown, 0, StatusOK
		}
		return true, container, firstFaceType(data), uint32(len(members)), StatusOK
	}

	if _, err := sfnt.Parse(data); err != nil {
		return false, container, FaceUnknown, 0, StatusOK
	}
	face = FaceTrueType
	if container == ContainerCFF {
		face = FaceCFF
	}
	return true, container, face, 1, StatusOK
}

// firstFaceType reads the version tag of the first font in a collection.
// Collection layout: 'ttcf', version, numFonts, then one offset per font
// into the shared file.
func firstFaceType(data []byte) FaceType {
	if len(data) < 16 {
		return FaceUnknown
	}
	off := binary.BigEndian.Uint32(data[12:])
	if uint64(off)+4 > uint64(len(data)) {
		return FaceUnknown
	}
	switch binary.BigEndian.Uint32(data[off:]) {
	case tagOTTO:
		return FaceCFF
	case tagTrueType, tagAppleTrue:
		return FaceTrueType
	}
	return FaceUnknown
}
