package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"io/fs"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"blitznote.com/src/tmpfile/mkstemp"
)

// kind tells how to recognize and release one representation's native resource.
type kind[N comparable] struct {
	invalid N
	close   func(prim mkstemp.Primitive, n N) error
}

// resourceState is shared by all values that refer to the same temporary file.
//
// It is either empty, or holds a path and a native resource.
// Once the last reference has been dropped, or on reset, the resource
// is closed and, unless detached or fatal, the path removed.
type resourceState[N comparable] struct {
	mu   sync.Mutex
	refs int

	path   string
	native N

	// Don't remove the path on the next release.
	// Is cleared by every release.
	detached bool

	// The path has been computed, but never been confirmed created by us.
	// It must never be removed.
	fatalPath bool

	logCreateClose bool

	kind   *kind[N]
	prim   mkstemp.Primitive
	logger *zap.Logger
}

func newState[N comparable](k *kind[N]) *resourceState[N] {
	return &resourceState[N]{
		refs:   1,
		native: k.invalid,
		kind:   k,
		prim:   mkstemp.OS,
		logger: zap.NewNop(),
	}
}

func (s *resourceState[N]) isValidLocked() bool {
	return s.native != s.kind.invalid && s.path != ""
}

func (s *resourceState[N]) isValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isValidLocked()
}

func (s *resourceState[N]) detach() {
	s.mu.Lock()
	s.detached = true
	s.mu.Unlock()
}

func (s *resourceState[N]) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

// releaseLocked closes the native resource first, then takes care of the path.
// Errors are logged at debug level, but never returned: cleanup cannot fail.
func (s *resourceState[N]) releaseLocked() {
	if s.native != s.kind.invalid {
		if err := s.kind.close(s.prim, s.native); err != nil {
			s.logger.Debug("closing temporary file failed", zap.String("path", s.path), zap.Error(err))
		}
		s.native = s.kind.invalid
	}

	if !s.fatalPath && s.path != "" {
		if s.logCreateClose {
			if s.detached {
				s.logger.Info(msgDetached, zap.String("path", s.path))
			} else {
				s.logger.Info(msgDeleting, zap.String("path", s.path))
			}
		}
		if !s.detached {
			if err := s.prim.Remove(s.path); err != nil {
				s.logger.Debug("removing temporary file failed", zap.String("path", s.path), zap.Error(err))
			}
		}
	}

	s.forgetLocked()
}

// forgetLocked empties s without touching its resource or path,
// which are gone or have been handed over.
func (s *resourceState[N]) forgetLocked() {
	s.native = s.kind.invalid
	s.path = ""
	s.detached = false
	s.fatalPath = false
}

// construct fills an empty state. If s is valid already this is a no-op.
//
// derive wraps the freshly created handle in the native form of N.
func (s *resourceState[N]) construct(o *Options, flag int, derive func(h mkstemp.Handle, path string) N) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isValidLocked() {
		return nil
	}
	if err := o.checkTemplate(); err != nil {
		return errors.Wrapf(err, "prefix %q, suffix %q", o.Prefix, o.Suffix)
	}

	// Whatever has been left over from an earlier failure.
	s.releaseLocked()

	s.logCreateClose = o.LogCreateClose
	s.logger = o.logger()
	s.prim = o.primitive()

	res, err := o.creator().Create(o.template(), flag)
	if err != nil {
		// Keep the path for diagnostics, but never remove it.
		s.path = res.Path
		s.fatalPath = true
		return errors.Wrap(err, "creating temporary file")
	}

	s.path = res.Path
	s.native = derive(res.Handle, res.Path)
	if s.logCreateClose {
		s.logger.Info(msgCreated, zap.String("path", s.path))
	}
	return nil
}

// retain adds a reference, unless the state has been released for good.
func (s *resourceState[N]) retain() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs == 0 {
		return false
	}
	s.refs++
	return true
}

// drop releases the state with the last reference.
func (s *resourceState[N]) drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		s.releaseLocked()
	}
}

// ref is one value's stake in a resourceState.
// It is kept apart from the value so that a cleanup can hold it
// without keeping the value alive.
type ref[N comparable] struct {
	state   *resourceState[N]
	dropped atomic.Bool
}

func (r *ref[N]) drop() {
	if r.dropped.CompareAndSwap(false, true) {
		r.state.drop()
	}
}

// handle implements what all representations have in common.
type handle[N comparable] struct {
	ref     *ref[N]
	cleanup runtime.Cleanup
}

// track ties s to owner, which embeds h.
// Should owner become unreachable without having been closed,
// its reference will be dropped by the garbage collector.
func track[T any, N comparable](owner *T, h *handle[N], s *resourceState[N]) *T {
	h.ref = &ref[N]{state: s}
	h.cleanup = runtime.AddCleanup(owner, func(r *ref[N]) { r.drop() }, h.ref)
	return owner
}

func (h *handle[N]) state() *resourceState[N] {
	return h.ref.state
}

// construct creates the file for h, which must not have been closed.
func (h *handle[N]) construct(o *Options, flag int, derive func(fh mkstemp.Handle, path string) N) error {
	o.Mode.validate()
	if h.ref.dropped.Load() {
		return errors.Wrap(fs.ErrClosed, "constructing temporary file")
	}
	return h.ref.state.construct(o, flag, derive)
}

// share returns the state a clone of h refers to.
// A closed value has nothing left to share, and its clones start out empty.
func (h *handle[N]) share() *resourceState[N] {
	s := h.ref.state
	if !h.ref.dropped.Load() && s.retain() {
		return s
	}
	return newState(s.kind)
}

// IsValid reports whether the file exists and its resource is open.
// A value that has been closed is never valid.
func (h *handle[N]) IsValid() bool {
	return !h.ref.dropped.Load() && h.ref.state.isValid()
}

// Path returns the path of the file. After a failed construction
// this is the path creation failed for, which does not belong to this value.
func (h *handle[N]) Path() string {
	s := h.ref.state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// IsDetached reports whether the file will be left on disk.
func (h *handle[N]) IsDetached() bool {
	s := h.ref.state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detached
}

// IsFatal reports whether Path is not to be removed by this package,
// because its creation, or a conversion, has failed.
func (h *handle[N]) IsFatal() bool {
	s := h.ref.state
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fatalPath
}

// Detach keeps the file on disk after its resource has been released.
// This affects every value sharing the file, until the next release.
// Has no effect once h has been closed.
func (h *handle[N]) Detach() {
	if h.ref.dropped.Load() {
		return
	}
	h.ref.state.detach()
}

// Reset releases the file now, for every value sharing it,
// and leaves them empty. Has no effect once h has been closed.
func (h *handle[N]) Reset() {
	if h.ref.dropped.Load() {
		return
	}
	h.ref.state.reset()
}

// Close drops this value's reference to the file.
// The file is released with the last reference.
//
// Closing a value more than once has no effect.
func (h *handle[N]) Close() error {
	h.cleanup.Stop()
	h.ref.drop()
	return nil
}

func (h *handle[N]) native() N {
	s := h.ref.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.ref.dropped.Load() {
		return s.kind.invalid
	}
	return s.native
}
