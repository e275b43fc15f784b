package fontfile

import (
	"errors"
	"fmt"

	"github.com/logandonley/font-inspector/pkg/fontsvc"
)

// ErrClosed is returned when a handle is used after Close.
var ErrClosed = errors.New("fontfile: handle is closed")

// Op names the font-services operation that failed.
type Op string

const (
	OpGetLoader       Op = "get loader"
	OpQueryCapability Op = "query local-file capability"
	OpReferenceKey    Op = "get reference key"
	OpPathLength      Op = "get path length from key"
	OpPath            Op = "get path from key"
)

// StatusError reports a failing font-services status together with the
// operation that produced it.
type StatusError struct {
	Op     Op
	Status fontsvc.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fontfile: %s: %s", e.Op, e.Status)
}
