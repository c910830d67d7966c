package serial

import (
	"sync"

	"github.com/mkoskin/gaugectl/internal/gauge"
)

// BufferSink captures written frames for inspection in tests.
// Exported for use by other packages' tests.
type BufferSink struct {
	mu     sync.Mutex
	frames [][gauge.FrameSize]byte
	closed bool

	// FailAfter makes the sink error once this many frames have been
	// written; zero means never fail.
	FailAfter int
	// Err is returned on a forced failure; nil uses a default error.
	Err error
}

// NewBufferSink creates an in-memory sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) WriteFrame(frame [gauge.FrameSize]byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.FailAfter > 0 && len(b.frames) >= b.FailAfter {
		if b.Err != nil {
			return b.Err
		}
		return errSinkBroken
	}
	b.frames = append(b.frames, frame)
	return nil
}

func (b *BufferSink) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Frames returns a copy of every frame written so far.
func (b *BufferSink) Frames() [][gauge.FrameSize]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][gauge.FrameSize]byte, len(b.frames))
	copy(out, b.frames)
	return out
}

// Closed reports whether Close was called.
func (b *BufferSink) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// errSinkBroken is the default forced-failure error.
var errSinkBroken = &sinkError{"sink broken"}

type sinkError struct{ msg string }

func (e *sinkError) Error() string { return e.msg }
