package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives every emitted log record. Used to ship records to
// an external sink in addition to the primary zap core.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirror atomic.Value // MirrorFunc

// SetMirror installs fn as the global log mirror. Passing nil removes
// the current mirror.
func SetMirror(fn MirrorFunc) {
	mirror.Store(mirrorHolder{fn: fn})
}

type mirrorHolder struct {
	fn MirrorFunc
}

func currentMirror() MirrorFunc {
	holder, ok := mirror.Load().(mirrorHolder)
	if !ok {
		return nil
	}
	return holder.fn
}
